package handlers

import (
	"errors"
	"net/http"

	request "estatedesk/internal/adapter/http/dto/request"
	response "estatedesk/internal/adapter/http/dto/response"
	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase"
	"estatedesk/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for the service catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService adds a catalog entry (admin).
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	packages := make([]entities.ServicePackage, 0, len(payload.Packages))
	for _, p := range payload.Packages {
		packages = append(packages, entities.ServicePackage{Name: p.Name, Price: p.Price})
	}

	svc, err := h.usecase.CreateService(c.Request.Context(), usecase.CreateServiceInput{
		Name:        payload.Name,
		Description: payload.Description,
		Packages:    packages,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

// GetService returns a single catalog entry.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// ListServices returns catalog entries; ?active=true narrows to active ones.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(items))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingServiceName),
		errors.Is(err, usecase.ErrInvalidPackage),
		errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
