package routes

import (
	"log"
	"os"
	"strconv"
	_ "viaggio_tours/docs" // This will be auto-generated
	"viaggio_tours/internal/adapter/http/handlers"
	repository2 "viaggio_tours/internal/adapter/persistence/repository"
	"viaggio_tours/internal/infrastructure/database"
	"viaggio_tours/internal/infrastructure/payments"
	"viaggio_tours/internal/usecase"
	"viaggio_tours/internal/usecase/interfaces"

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

	periodRepo := repository2.NewPricingPeriodDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	periodUseCase := usecase.NewPricingPeriodUseCase(periodRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, periodRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	periodHandler := handlers.NewPricingPeriodHandler(periodUseCase)
	depositPaymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, periodHandler, depositPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
