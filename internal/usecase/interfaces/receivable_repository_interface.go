package interfaces

import (
	"context"
	"time"

	"condopay/internal/domain/entities"
)

// IReceivableRepository abstracts the receivable records owned by the
// condominium CRUD layer. This subsystem only reads them and settles them.
//
// SetPaid must be idempotent: calling it any number of times with the same
// arguments leaves the receivable in the same state as calling it once, and
// it never regresses a pago receivable back to pendente/atrasado.

type IReceivableRepository interface {
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	SetPaid(ctx context.Context, id string, paymentDate time.Time, method entities.PaymentMethod, transactionID string) (entities.Receivable, error)
}
