package interfaces

import (
	"context"
	"time"

	"condopay/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// AppendEventAndSetStatus is the single write path for status changes: it
// appends the gateway event to the log and moves the status in one
// conditional update keyed on the expected prior status, so the webhook,
// retry and polling paths can race without clobbering each other.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (entities.Transaction, error)

	// AppendEventAndSetStatus returns entities.ErrStatusConflict when the
	// stored status no longer matches expectedStatus.
	AppendEventAndSetStatus(ctx context.Context, id string, event entities.GatewayEvent, expectedStatus, newStatus entities.PaymentStatus, confirmedAt *time.Time) (entities.Transaction, error)

	// ListPendingByMethods feeds the polling fallback: pendente transactions
	// with one of the given methods created after the cutoff.
	ListPendingByMethods(ctx context.Context, methods []entities.PaymentMethod, createdAfter time.Time) ([]entities.Transaction, error)

	// ListByAccountCreatedAfter feeds the reconciliation candidate query.
	ListByAccountCreatedAfter(ctx context.Context, accountID string, createdAfter time.Time) ([]entities.Transaction, error)
}
