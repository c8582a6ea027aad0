package routes

import (
	"log"
	"os"
	"strconv"

	_ "estatedesk/docs" // This will be auto-generated
	"estatedesk/internal/adapter/http/handlers"
	repository2 "estatedesk/internal/adapter/persistence/repository"
	"estatedesk/internal/infrastructure/database"
	"estatedesk/internal/infrastructure/documents"
	"estatedesk/internal/infrastructure/payments"
	"estatedesk/internal/usecase"
	"estatedesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	inquiryRepo := repository2.NewInquiryDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	paymentRepo := repository2.NewInquiryPaymentDynamoRepository(ddb)

	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, counterRepo, serviceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	exportUseCase := usecase.NewInvoiceExportUseCase(inquiryRepo, documents.NewInvoicePDFRenderer())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewInquiryPaymentUseCase(paymentRepo, inquiryRepo, paymentGateway)

	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase, exportUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInquiryRoutes(v1, inquiryHandler, paymentHandler, serviceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
