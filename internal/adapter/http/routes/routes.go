package routes

import (
	"log"
	"os"
	"strconv"

	_ "condopay/docs" // This will be auto-generated
	"condopay/internal/adapter/http/handlers"
	repository2 "condopay/internal/adapter/persistence/repository"
	"condopay/internal/infrastructure/database"
	"condopay/internal/infrastructure/payments"
	"condopay/internal/usecase"
	"condopay/internal/usecase/interfaces"
	"condopay/internal/worker"

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

	scheduler := getRoutes()
	scheduler.Start()
	defer scheduler.Stop()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *worker.Scheduler {
	ddb := database.ConnectDynamoDB()

	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	receivableRepo := repository2.NewReceivableDynamoRepository(ddb)
	entryRepo := repository2.NewStatementEntryDynamoRepository(ddb)
	deliveryRepo := repository2.NewWebhookDeliveryDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	webhookUseCase := usecase.NewPaymentWebhookUseCase(transactionRepo, receivableRepo, deliveryRepo, paymentGateway, 0)
	retryUseCase := usecase.NewWebhookRetryUseCase(deliveryRepo, webhookUseCase, 0, 0)
	pollUseCase := usecase.NewPendingPollUseCase(transactionRepo, webhookUseCase, 0)
	reconcileUseCase := usecase.NewReconciliationUseCase(entryRepo, transactionRepo, 0, 0)
	importUseCase := usecase.NewStatementImportUseCase(entryRepo, reconcileUseCase)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)

	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	statementHandler := handlers.NewStatementHandler(importUseCase, reconcileUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	deliveryHandler := handlers.NewWebhookDeliveryHandler(retryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, webhookHandler, statementHandler, transactionHandler, deliveryHandler)

	return worker.NewScheduler(retryUseCase, pollUseCase, 0, 0)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
