package interfaces

import (
	"context"
	"time"

	"condopay/internal/domain/entities"
)

// IWebhookDeliveryRepository abstracts DynamoDB persistence for the retry
// table. All retry eligibility lives here, never in process memory, so a
// restart loses nothing.

type IWebhookDeliveryRepository interface {
	Create(ctx context.Context, d entities.WebhookDelivery) (entities.WebhookDelivery, error)
	GetByID(ctx context.Context, id string) (entities.WebhookDelivery, error)

	// ListDue returns pendente deliveries with next_attempt_at <= now.
	ListDue(ctx context.Context, now time.Time, limit int) ([]entities.WebhookDelivery, error)
	ListByStatus(ctx context.Context, status entities.DeliveryStatus) ([]entities.WebhookDelivery, error)

	// MarkProcessing claims a delivery for one worker via a conditional
	// pendente -> processando transition; entities.ErrDeliveryNotPending
	// signals that another worker (or an admin cancel) got there first.
	MarkProcessing(ctx context.Context, id string) (entities.WebhookDelivery, error)

	// Save persists the attempt outcome written by RegisterAttempt.
	Save(ctx context.Context, d entities.WebhookDelivery) (entities.WebhookDelivery, error)

	// Cancel is the administrative pendente -> cancelado transition.
	Cancel(ctx context.Context, id string) (entities.WebhookDelivery, error)
}
