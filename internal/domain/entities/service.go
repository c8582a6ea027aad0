package entities

import "time"

// ServicePackage is a named tier of a catalog service. Price stays a display
// string, consistent with Inquiry.TotalAmount.
type ServicePackage struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Service is a catalog entry clients raise inquiries against. Its name and
// the chosen package are denormalized onto the inquiry at creation time so
// invoices keep rendering correctly if the catalog changes later.
//
// Storage model (DynamoDB):
//   - PK: id
type Service struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Packages    []ServicePackage `json:"packages,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PackageByName returns the package with the given name, if present.
func (s Service) PackageByName(name string) (ServicePackage, bool) {
	for _, p := range s.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return ServicePackage{}, false
}
