package response

import (
	"time"

	"estatedesk/internal/domain/entities"
)

type ServicePackageResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ServiceResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Packages    []ServicePackageResponse `json:"packages,omitempty"`
	Active      bool                     `json:"active"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	packages := make([]ServicePackageResponse, 0, len(s.Packages))
	for _, p := range s.Packages {
		packages = append(packages, ServicePackageResponse{Name: p.Name, Price: p.Price})
	}
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Packages:    packages,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(items []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromService(s))
	}
	return out
}
