package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "estatedesk/internal/adapter/http/dto/request"
	response "estatedesk/internal/adapter/http/dto/response"
	"estatedesk/internal/usecase"
	"estatedesk/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for inquiry payments.

type PaymentHandler struct {
	usecase usecase.IInquiryPaymentUseCase
}

func NewPaymentHandler(uc usecase.IInquiryPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment charges the gateway for an inquiry and records the outcome.
// An approved charge flips the inquiry payment status to paid.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	inquiryID := c.Param("inquiry_id")
	log.Printf("[payment][handler] create start inquiry_id=%s", inquiryID)

	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payload.ProviderPayload) == 0 {
		payload.ProviderPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), inquiryID, payload.ProviderPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed inquiry_id=%s err=%v", inquiryID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success inquiry_id=%s payment_id=%s status=%s", inquiryID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// RefundPayment reverses an approved payment and flips the inquiry payment
// status to refunded.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	inquiryID := c.Param("inquiry_id")

	var payload request.PaymentRefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	refunded, err := h.usecase.Refund(c.Request.Context(), inquiryID, payload.PaymentID)
	if err != nil {
		log.Printf("[payment][handler] refund failed inquiry_id=%s payment_id=%s err=%v", inquiryID, payload.PaymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(refunded))
}

// ListPayments returns all recorded payment attempts for an inquiry.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.ListByInquiryID(c.Request.Context(), c.Param("inquiry_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(items))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInquiryID),
		errors.Is(err, usecase.ErrInvalidProviderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInquiryNotPayable),
		errors.Is(err, usecase.ErrInquiryAlreadyPaid),
		errors.Is(err, usecase.ErrPaymentNotRefundable):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAUTHORIZED", "Payment gateway rejected the credentials", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("GATEWAY_BAD_REQUEST", "Payment gateway rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
