package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase"
	"condopay/pkg"
)

// WebhookHandler receives gateway payment notifications.
//
// The gateway delivers at-least-once and expects 200 for anything it managed
// to deliver; only an unparseable body gets a 500, which tells the gateway to
// resubmit. Processing failures are acknowledged with 200 and handed to the
// retry scheduler, so the request path stays fast.

type WebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
}

func NewWebhookHandler(uc usecase.IPaymentWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// snapshotHeaders keeps the headers worth auditing on the retry record.
var snapshotHeaders = []string{"X-Signature", "X-Request-Id", "Content-Type", "User-Agent"}

// HandleMercadoPago processes POST /v1/webhooks/mercadopago.
//
// @Summary      Receive a Mercado Pago payment notification
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MALFORMED_PAYLOAD", "Could not read request body", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := usecase.ParseWebhookEvent(raw)
	if err != nil {
		log.Printf("[webhook][handler] body parse failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MALFORMED_PAYLOAD", "Request body is not a valid webhook event", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] event received type=%s action=%s data_id=%s", event.Type, event.Action, event.DataID)

	start := time.Now().UTC()
	result := h.usecase.ProcessEvent(c.Request.Context(), event, entities.EventSourceWebhook)

	switch result.Outcome {
	case usecase.OutcomeIgnored:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	case usecase.OutcomeApplied:
		c.JSON(http.StatusOK, gin.H{"status": "processed", "transaction_id": result.TransactionID})
	case usecase.OutcomeFailed:
		if result.Retryable {
			h.captureForRetry(c, raw, start, result)
			return
		}
		log.Printf("[webhook][handler] non-retryable failure data_id=%s err=%v", event.DataID, result.Err)
		c.JSON(http.StatusOK, gin.H{"status": "failed"})
	}
}

func (h *WebhookHandler) captureForRetry(c *gin.Context, raw json.RawMessage, start time.Time, result usecase.ProcessResult) {
	attempt := entities.DeliveryAttempt{
		At:       start,
		Success:  false,
		Duration: time.Since(start),
	}
	if result.Err != nil {
		attempt.Error = result.Err.Error()
	}

	headers := map[string]string{}
	for _, name := range snapshotHeaders {
		if v := c.GetHeader(name); v != "" {
			headers[name] = v
		}
	}

	delivery, err := h.usecase.CaptureForRetry(c.Request.Context(), raw, headers, attempt)
	if err != nil {
		// The retry record itself could not be persisted. Answering non-200
		// makes the gateway resubmit, which is the only recovery path left.
		log.Printf("[webhook][handler] retry capture failed err=%v", err)
		appErr := pkg.NewDomainError("RETRY_CAPTURE_FAILED", "Could not persist delivery for retry", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deferred", "delivery_id": delivery.ID})
}
