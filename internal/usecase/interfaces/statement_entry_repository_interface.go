package interfaces

import (
	"context"

	"condopay/internal/domain/entities"
)

// IStatementEntryRepository abstracts DynamoDB persistence for StatementEntry.
//
// Create enforces the (account_id, external_doc_id) uniqueness invariant and
// returns entities.ErrDuplicateStatementEntry on re-import of the same line.

type IStatementEntryRepository interface {
	Create(ctx context.Context, e entities.StatementEntry) (entities.StatementEntry, error)
	GetByID(ctx context.Context, id string) (entities.StatementEntry, error)
	ListByAccount(ctx context.Context, accountID string, reconStatus entities.ReconciliationStatus) ([]entities.StatementEntry, error)

	// SetReconciliation records the engine outcome: either a confirmed link
	// (conciliado + transaction id) or just the best score seen so far.
	SetReconciliation(ctx context.Context, accountID, externalDocID string, status entities.ReconciliationStatus, transactionID string, confidence int) (entities.StatementEntry, error)
}
