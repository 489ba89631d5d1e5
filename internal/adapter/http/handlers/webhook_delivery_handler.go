package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"condopay/internal/adapter/http/dto/response"
	"condopay/internal/domain/entities"
	"condopay/internal/usecase"
	"condopay/pkg"
)

type WebhookDeliveryHandler struct {
	usecase usecase.IWebhookRetryUseCase
}

func NewWebhookDeliveryHandler(uc usecase.IWebhookRetryUseCase) *WebhookDeliveryHandler {
	return &WebhookDeliveryHandler{usecase: uc}
}

// List processes GET /v1/webhook-deliveries.
//
// @Summary      List webhook deliveries by status
// @Tags         webhook-deliveries
// @Produce      json
// @Param        status query string true "Delivery status"
// @Success      200 {array} response.WebhookDeliveryResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /webhook-deliveries [get]
func (h *WebhookDeliveryHandler) List(c *gin.Context) {
	status := entities.DeliveryStatus(c.Query("status"))
	if status == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_STATUS", "Query parameter status is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	deliveries, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookDeliveries(deliveries))
}

// Cancel processes POST /v1/webhook-deliveries/:id/cancel.
//
// @Summary      Cancel a pending webhook delivery
// @Tags         webhook-deliveries
// @Produce      json
// @Param        id path string true "Delivery id"
// @Success      200 {object} response.WebhookDeliveryResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /webhook-deliveries/{id}/cancel [post]
func (h *WebhookDeliveryHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	delivery, err := h.usecase.Cancel(c.Request.Context(), id)
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[delivery][handler] delivery cancelled id=%s", delivery.ID)

	c.JSON(http.StatusOK, response.FromWebhookDelivery(delivery))
}

func mapDeliveryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDeliveryNotFound):
		return pkg.NewDomainError("DELIVERY_NOT_FOUND", "Webhook delivery not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrDeliveryNotPending):
		return pkg.NewDomainError("DELIVERY_NOT_PENDING", "Only pending deliveries can be cancelled", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDeliveryID):
		return pkg.NewDomainError("INVALID_DELIVERY_ID", "A delivery id is required", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("DELIVERY_OPERATION_FAILED", "Could not complete delivery operation", err, http.StatusInternalServerError)
	}
}
