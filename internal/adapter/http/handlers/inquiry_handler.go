package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "estatedesk/internal/adapter/http/dto/request"
	response "estatedesk/internal/adapter/http/dto/response"
	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase"
	"estatedesk/internal/usecase/interfaces"
	"estatedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)
)

// InquiryHandler handles HTTP requests for service inquiries: client-side
// creation and dashboard reads, admin-side lifecycle updates and deletion,
// and the invoice document download.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
	export  usecase.IInvoiceExportUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase, export usecase.IInvoiceExportUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc, export: export}
}

// CreateInquiry handles a logged-in client submitting a service inquiry.
// The persisted record comes back with its generated invoice number and the
// initial status history entry.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var payload request.CreateInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.CreateInquiry(c.Request.Context(), usecase.CreateInquiryInput{
		ClientID:    payload.ClientID,
		ClientName:  payload.ClientName,
		ClientEmail: payload.ClientEmail,
		ServiceID:   payload.ServiceID,
		PackageName: payload.PackageName,
		Message:     payload.Message,
		TotalAmount: payload.TotalAmount,
		ChangedBy:   payload.ChangedBy,
	})
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInquiry(inquiry))
}

// GetInquiry returns a single inquiry, status history included.
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inquiry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

// ListInquiries serves the client dashboard (?client_id=) and the admin
// board (?status=), newest first, bounded by ?limit=. ?invoice_number=
// resolves a single inquiry by its invoice number.
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	clientID := c.Query("client_id")
	status := c.Query("status")

	if invoiceNumber := c.Query("invoice_number"); invoiceNumber != "" {
		inquiry, err := h.usecase.GetByInvoiceNumber(c.Request.Context(), invoiceNumber)
		if err != nil {
			appErr := mapInquiryError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromInquiries([]entities.Inquiry{inquiry}))
		return
	}

	var limit int32
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = int32(n)
	}

	var (
		items []entities.Inquiry
		err   error
	)
	switch {
	case clientID != "":
		items, err = h.usecase.ListByClient(c.Request.Context(), clientID, limit)
	case status != "":
		items, err = h.usecase.ListByStatus(c.Request.Context(), status, limit)
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "client_id or status is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiries(items))
}

// UpdateInquiry applies an admin mutation: status and/or payment status,
// amount and notes. A status change appends to the history; repeating the
// current status does not.
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	var payload request.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.UpdateInquiry(c.Request.Context(), c.Param("id"), usecase.UpdateInquiryInput{
		ClientID:      payload.ClientID,
		Status:        payload.Status,
		PaymentStatus: payload.PaymentStatus,
		TotalAmount:   payload.TotalAmount,
		AdminNotes:    payload.AdminNotes,
		Notes:         payload.Notes,
		Note:          payload.Note,
		ChangedBy:     payload.ChangedBy,
	})
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

// DeleteInquiry removes the whole record. Admin-only surface; clients never
// reach this route.
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[inquiry][handler] deleted inquiry_id=%s", id)
	c.Status(http.StatusNoContent)
}

// DownloadInvoice streams the fixed-layout invoice PDF for an inquiry.
func (h *InquiryHandler) DownloadInvoice(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.export.RenderPDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrMissingMessage),
		errors.Is(err, usecase.ErrMissingTotalAmount),
		errors.Is(err, usecase.ErrMissingChangedBy),
		errors.Is(err, usecase.ErrEmptyUpdate),
		errors.Is(err, usecase.ErrUnknownPackage),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientReassignment):
		return pkg.NewDomainErrorSimple("CLIENT_REASSIGNMENT", "An inquiry cannot be moved to another client", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrInvalidPaymentTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateInvoice),
		errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "The record changed concurrently; retry the request", http.StatusConflict)
	case errors.Is(err, usecase.ErrInconsistentInvoice):
		return pkg.NewDomainError("INCONSISTENT_INVOICE", "Invoice data is not renderable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
