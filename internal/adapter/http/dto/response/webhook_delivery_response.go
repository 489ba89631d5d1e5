package response

import (
	"time"

	"condopay/internal/domain/entities"
)

type DeliveryAttemptResponse struct {
	At         time.Time `json:"at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code,omitempty"`
}

type WebhookDeliveryResponse struct {
	ID            string                    `json:"id"`
	Provider      string                    `json:"provider"`
	Attempts      int                       `json:"attempts"`
	MaxAttempts   int                       `json:"max_attempts"`
	Status        string                    `json:"status"`
	NextAttemptAt *time.Time                `json:"next_attempt_at,omitempty"`
	AttemptLog    []DeliveryAttemptResponse `json:"attempt_log,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func FromWebhookDelivery(d entities.WebhookDelivery) WebhookDeliveryResponse {
	attempts := make([]DeliveryAttemptResponse, 0, len(d.AttemptLog))
	for _, a := range d.AttemptLog {
		attempts = append(attempts, DeliveryAttemptResponse{
			At:         a.At,
			Success:    a.Success,
			Error:      a.Error,
			DurationMS: a.Duration.Milliseconds(),
			StatusCode: a.StatusCode,
		})
	}
	return WebhookDeliveryResponse{
		ID:            d.ID,
		Provider:      d.Provider,
		Attempts:      d.Attempts,
		MaxAttempts:   d.MaxAttempts,
		Status:        string(d.Status),
		NextAttemptAt: d.NextAttemptAt,
		AttemptLog:    attempts,
		CreatedAt:     d.CreatedAt,
	}
}

func FromWebhookDeliveries(deliveries []entities.WebhookDelivery) []WebhookDeliveryResponse {
	out := make([]WebhookDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, FromWebhookDelivery(d))
	}
	return out
}
