package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingServiceName = errors.New("missing service name")
	ErrInvalidPackage     = errors.New("invalid service package")
)

// CreateServiceInput is the admin command for adding a catalog entry.
type CreateServiceInput struct {
	Name        string
	Description string
	Packages    []entities.ServicePackage
}

// IServiceUseCase exposes the service catalog operations.

type IServiceUseCase interface {
	CreateService(ctx context.Context, in CreateServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
	now  func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ServiceUseCase) CreateService(ctx context.Context, in CreateServiceInput) (entities.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Service{}, ErrMissingServiceName
	}
	for _, p := range in.Packages {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Price) == "" {
			return entities.Service{}, ErrInvalidPackage
		}
	}

	now := u.now()
	s := entities.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Packages:    in.Packages,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Service, error) {
	return u.repo.List(ctx, activeOnly)
}
