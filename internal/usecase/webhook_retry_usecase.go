package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"
)

var (
	ErrDeliveryNotFound  = errors.New("webhook delivery not found")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
)

// IWebhookRetryUseCase drives the persisted retry table: background
// re-attempts plus the operator surface (review queue, admin cancel).

type IWebhookRetryUseCase interface {
	ProcessDue(ctx context.Context, now time.Time, limit int) (int, error)
	ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.WebhookDelivery, error)
	Cancel(ctx context.Context, id string) (entities.WebhookDelivery, error)
}

type WebhookRetryUseCase struct {
	deliveryRepo interfaces.IWebhookDeliveryRepository
	webhookUC    IPaymentWebhookUseCase

	baseDelay time.Duration
	maxDelay  time.Duration
}

var _ IWebhookRetryUseCase = (*WebhookRetryUseCase)(nil)

func NewWebhookRetryUseCase(deliveryRepo interfaces.IWebhookDeliveryRepository, webhookUC IPaymentWebhookUseCase, baseDelay, maxDelay time.Duration) *WebhookRetryUseCase {
	if baseDelay <= 0 {
		baseDelay = entities.DefaultRetryBaseDelay
	}
	if maxDelay <= 0 {
		maxDelay = entities.DefaultRetryMaxDelay
	}
	return &WebhookRetryUseCase{
		deliveryRepo: deliveryRepo,
		webhookUC:    webhookUC,
		baseDelay:    baseDelay,
		maxDelay:     maxDelay,
	}
}

// ProcessDue claims and re-attempts every delivery whose backoff has elapsed.
// Returns the number of deliveries attempted. Individual failures stay on
// their own record; they never abort the batch.
func (u *WebhookRetryUseCase) ProcessDue(ctx context.Context, now time.Time, limit int) (int, error) {
	due, err := u.deliveryRepo.ListDue(ctx, now, limit)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}
	log.Printf("[retry][usecase] processing due deliveries count=%d", len(due))

	attempted := 0
	for _, d := range due {
		claimed, err := u.deliveryRepo.MarkProcessing(ctx, d.ID)
		if err != nil {
			if errors.Is(err, entities.ErrDeliveryNotPending) {
				// Another worker or an admin cancel claimed it first.
				continue
			}
			log.Printf("[retry][usecase] claim failed delivery_id=%s err=%v", d.ID, err)
			continue
		}
		if claimed.ID == "" {
			continue
		}

		u.attempt(ctx, claimed)
		attempted++
	}
	return attempted, nil
}

func (u *WebhookRetryUseCase) attempt(ctx context.Context, d entities.WebhookDelivery) {
	start := time.Now().UTC()

	result := u.resolve(ctx, d)

	attempt := entities.DeliveryAttempt{
		At:       start,
		Success:  result.Outcome != OutcomeFailed,
		Duration: time.Since(start),
	}
	if result.Err != nil {
		attempt.Error = result.Err.Error()
	}

	d.RegisterAttempt(attempt, u.baseDelay, u.maxDelay)

	// A structurally broken payload will never succeed; park it for an
	// operator instead of burning the remaining attempts.
	if result.Outcome == OutcomeFailed && !result.Retryable {
		d.Status = entities.DeliveryStatusFalhaPermanente
		d.NextAttemptAt = nil
	}

	if _, err := u.deliveryRepo.Save(ctx, d); err != nil {
		log.Printf("[retry][usecase] save failed delivery_id=%s err=%v", d.ID, err)
		return
	}

	switch d.Status {
	case entities.DeliveryStatusSucesso:
		log.Printf("[retry][usecase] delivery resolved delivery_id=%s attempts=%d", d.ID, d.Attempts)
	case entities.DeliveryStatusFalhaPermanente:
		log.Printf("[retry][usecase] delivery exhausted delivery_id=%s attempts=%d err=%s", d.ID, d.Attempts, attempt.Error)
	default:
		log.Printf("[retry][usecase] delivery rescheduled delivery_id=%s attempts=%d next_attempt=%v", d.ID, d.Attempts, d.NextAttemptAt)
	}
}

func (u *WebhookRetryUseCase) resolve(ctx context.Context, d entities.WebhookDelivery) ProcessResult {
	event, err := ParseWebhookEvent(d.Payload)
	if err != nil {
		return failed(err, false)
	}
	return u.webhookUC.ProcessEvent(ctx, event, entities.EventSourceRetry)
}

func (u *WebhookRetryUseCase) ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.WebhookDelivery, error) {
	return u.deliveryRepo.ListByStatus(ctx, status)
}

// Cancel is the administrative pendente -> cancelado transition; it only
// prevents future attempts, never interrupts one in flight.
func (u *WebhookRetryUseCase) Cancel(ctx context.Context, id string) (entities.WebhookDelivery, error) {
	if id == "" {
		return entities.WebhookDelivery{}, ErrInvalidDeliveryID
	}
	cancelled, err := u.deliveryRepo.Cancel(ctx, id)
	if err != nil {
		return entities.WebhookDelivery{}, err
	}
	if cancelled.ID == "" {
		return entities.WebhookDelivery{}, ErrDeliveryNotFound
	}
	log.Printf("[retry][usecase] delivery cancelled delivery_id=%s", id)
	return cancelled, nil
}
