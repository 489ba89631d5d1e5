package routes

import (
	"condopay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks          = "/webhooks"
	PathStatements        = "/statements"
	PathTransactions      = "/transactions"
	PathWebhookDeliveries = "/webhook-deliveries"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	webhookHandler *handlers.WebhookHandler,
	statementHandler *handlers.StatementHandler,
	transactionHandler *handlers.TransactionHandler,
	deliveryHandler *handlers.WebhookDeliveryHandler,
) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}

	statements := rg.Group(PathStatements)
	{
		statements.POST("/import", statementHandler.Import)
		statements.GET("", statementHandler.List)
		statements.POST("/:id/reconcile", statementHandler.Reconcile)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("", transactionHandler.Register)
		transactions.GET("/:id", transactionHandler.GetByID)
	}

	deliveries := rg.Group(PathWebhookDeliveries)
	{
		deliveries.GET("", deliveryHandler.List)
		deliveries.POST("/:id/cancel", deliveryHandler.Cancel)
	}
}
