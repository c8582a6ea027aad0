package documents

import (
	"bytes"
	"context"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 15.0
	lineHeight   = 6.0
	labelWidth   = 45.0
	historyColW  = 45.0
	historyDateW = 55.0
)

// InvoicePDFRenderer renders the fixed invoice layout: header with invoice
// number and date, client block, service details, project message, amount,
// optional admin notes and the status history table.
type InvoicePDFRenderer struct{}

var _ interfaces.IInvoiceRenderer = (*InvoicePDFRenderer)(nil)

func NewInvoicePDFRenderer() *InvoicePDFRenderer {
	return &InvoicePDFRenderer{}
}

func (r *InvoicePDFRenderer) Render(_ context.Context, i entities.Inquiry) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	writeField(pdf, "Invoice Number", i.InvoiceNumber)
	writeField(pdf, "Date", i.CreatedAt.Format("January 2, 2006"))
	writeField(pdf, "Status", string(i.Status))
	writeField(pdf, "Payment Status", string(i.PaymentStatus))
	pdf.Ln(4)

	if i.ClientName != "" || i.ClientEmail != "" {
		sectionTitle(pdf, "Billed To")
		if i.ClientName != "" {
			writeField(pdf, "Client", i.ClientName)
		}
		if i.ClientEmail != "" {
			writeField(pdf, "Email", i.ClientEmail)
		}
		pdf.Ln(4)
	}

	sectionTitle(pdf, "Service Details")
	writeField(pdf, "Service", i.ServiceName)
	if i.PackageName != "" {
		writeField(pdf, "Package", i.PackageName)
	}
	if i.PackagePrice != "" {
		writeField(pdf, "Package Price", i.PackagePrice)
	}
	pdf.Ln(4)

	sectionTitle(pdf, "Project Message")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, lineHeight, i.Message, "", "L", false)
	pdf.Ln(4)

	sectionTitle(pdf, "Amount")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, i.TotalAmount)
	pdf.Ln(12)

	if i.AdminNotes != "" {
		sectionTitle(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, i.AdminNotes, "", "L", false)
		pdf.Ln(4)
	}

	sectionTitle(pdf, "Status History")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(historyColW, lineHeight, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(historyColW, lineHeight, "Changed By", "1", 0, "L", false, 0, "")
	pdf.CellFormat(historyDateW, lineHeight, "Changed At", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, e := range i.StatusHistory {
		pdf.CellFormat(historyColW, lineHeight, string(e.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(historyColW, lineHeight, e.ChangedBy, "1", 0, "L", false, 0, "")
		pdf.CellFormat(historyDateW, lineHeight, e.ChangedAt.Format(time.RFC3339), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(labelWidth, lineHeight, label)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, lineHeight, value)
	pdf.Ln(lineHeight + 1)
}
