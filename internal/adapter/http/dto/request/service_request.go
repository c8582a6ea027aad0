package request

// ServicePackageRequest is one package tier in a catalog entry.
type ServicePackageRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// CreateServiceRequest is the admin payload for adding a catalog service.
type CreateServiceRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Packages    []ServicePackageRequest `json:"packages"`
}
