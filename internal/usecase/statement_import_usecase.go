package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"condopay/internal/domain/entities"
	"condopay/internal/infrastructure/statement"
	"condopay/internal/usecase/interfaces"
)

var (
	ErrInvalidAccountID   = errors.New("invalid account_id")
	ErrEmptyStatementFile = errors.New("empty statement file")
)

// ImportResult summarizes one import batch. Per-row problems land in Errors;
// they never abort the batch.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// IStatementImportUseCase ingests bank statement files.

type IStatementImportUseCase interface {
	ImportStatement(ctx context.Context, accountID string, data []byte, format statement.Format) (ImportResult, error)
	ListEntries(ctx context.Context, accountID string, reconStatus entities.ReconciliationStatus) ([]entities.StatementEntry, error)
}

type StatementImportUseCase struct {
	entryRepo interfaces.IStatementEntryRepository
	reconUC   IReconciliationUseCase
}

var _ IStatementImportUseCase = (*StatementImportUseCase)(nil)

func NewStatementImportUseCase(entryRepo interfaces.IStatementEntryRepository, reconUC IReconciliationUseCase) *StatementImportUseCase {
	return &StatementImportUseCase{entryRepo: entryRepo, reconUC: reconUC}
}

// ImportStatement parses the file, skips lines already imported for the
// account, categorizes and persists the rest, and best-effort reconciles each
// new entry. Safe to re-run on the same file: the second pass skips
// everything.
func (u *StatementImportUseCase) ImportStatement(ctx context.Context, accountID string, data []byte, format statement.Format) (ImportResult, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ImportResult{}, ErrInvalidAccountID
	}
	if len(data) == 0 {
		return ImportResult{}, ErrEmptyStatementFile
	}

	log.Printf("[statement][usecase] import start account_id=%s format=%s size=%d", accountID, format, len(data))
	parsed, err := statement.Parse(data, format)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, rowErr := range parsed.RowErrors {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", rowErr.Line, rowErr.Err))
	}

	now := time.Now().UTC()
	for _, draft := range parsed.Drafts {
		entry := entities.StatementEntry{
			ID:            uuid.NewString(),
			AccountID:     accountID,
			ExternalDocID: draft.ExternalDocID,
			Date:          draft.Date,
			Amount:        draft.Amount,
			Direction:     draft.Direction,
			Description:   draft.Description,
			Category:      entities.CategorizeDescription(draft.Description),
			ReconStatus:   entities.ReconciliationStatusPendente,
			ImportedAt:    now,
		}

		created, err := u.entryRepo.Create(ctx, entry)
		if err != nil {
			if errors.Is(err, entities.ErrDuplicateStatementEntry) {
				result.Skipped++
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("doc %s: %v", draft.ExternalDocID, err))
			log.Printf("[statement][usecase] persist failed account_id=%s doc=%s err=%v", accountID, draft.ExternalDocID, err)
			continue
		}
		result.Imported++

		// Reconciliation is best effort at import time; a failure here leaves
		// the entry pendente for the review queue.
		if u.reconUC != nil {
			if _, err := u.reconUC.ReconcileEntry(ctx, created); err != nil {
				log.Printf("[statement][usecase] reconcile failed entry_id=%s err=%v", created.ID, err)
			}
		}
	}

	log.Printf("[statement][usecase] import done account_id=%s imported=%d skipped=%d failed=%d", accountID, result.Imported, result.Skipped, result.Failed)
	return result, nil
}

func (u *StatementImportUseCase) ListEntries(ctx context.Context, accountID string, reconStatus entities.ReconciliationStatus) ([]entities.StatementEntry, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}
	return u.entryRepo.ListByAccount(ctx, accountID, reconStatus)
}
