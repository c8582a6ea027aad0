package interfaces

import (
	"context"

	"estatedesk/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Service, error)
}
