package interfaces

import (
	"context"

	"estatedesk/internal/domain/entities"
)

// IInvoiceRenderer turns an inquiry snapshot into a fixed-layout invoice
// document (PDF bytes). The snapshot handed in is guaranteed internally
// consistent by the use case: non-empty invoice number and a status history
// with at least the creation entry.
type IInvoiceRenderer interface {
	Render(ctx context.Context, i entities.Inquiry) ([]byte, error)
}
