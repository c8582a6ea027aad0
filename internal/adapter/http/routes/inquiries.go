package routes

import (
	"estatedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries = "/inquiries"
	PathPayments  = "/payments"
	PathServices  = "/services"
)

func addInquiryRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler, paymentHandler *handlers.PaymentHandler, serviceHandler *handlers.ServiceHandler) {
	inquiries := rg.Group(PathInquiries)
	{
		inquiries.POST("", inquiryHandler.CreateInquiry)
		inquiries.GET("", inquiryHandler.ListInquiries)
		inquiries.GET("/:id", inquiryHandler.GetInquiry)
		inquiries.GET("/:id/invoice.pdf", inquiryHandler.DownloadInvoice)
		inquiries.PATCH("/:id", inquiryHandler.UpdateInquiry)
		inquiries.DELETE("/:id", inquiryHandler.DeleteInquiry)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:inquiry_id", paymentHandler.CreatePayment)
		payments.POST("/:inquiry_id/refund", paymentHandler.RefundPayment)
		payments.GET("/:inquiry_id", paymentHandler.ListPayments)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
	}
}
