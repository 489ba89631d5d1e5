package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"
)

// ErrStatementEntryNotFound is shared with the repository layer, which
// returns it when a conditional update hits a vanished entry.
var ErrStatementEntryNotFound = entities.ErrStatementEntryNotFound

// Score weights. The sum of a perfect match is 100.
const (
	scoreExactAmount   = 40
	scoreDateWithin1d  = 20
	scoreDateWithin3d  = 15
	scoreDateWithin7d  = 10
	scoreIdentifierRef = 30
	scoreSameAccount   = 10
)

const DefaultAutoMatchThreshold = 70

// DefaultCandidateLookback bounds the candidate transaction query around the
// statement entry date.
const DefaultCandidateLookback = 30 * 24 * time.Hour

// amountTolerance is the largest difference still considered an exact amount
// match (below one cent).
var amountTolerance = decimal.New(1, -2)

// IReconciliationUseCase links imported statement entries to transactions.
// It never creates or deletes receivables; low-confidence entries simply
// stay pendente with their best score for operator review.

type IReconciliationUseCase interface {
	ReconcileEntry(ctx context.Context, entry entities.StatementEntry) (entities.StatementEntry, error)
	ReconcileByID(ctx context.Context, entryID string) (entities.StatementEntry, error)
}

type ReconciliationUseCase struct {
	entryRepo interfaces.IStatementEntryRepository
	txRepo    interfaces.ITransactionRepository

	threshold int
	lookback  time.Duration
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(entryRepo interfaces.IStatementEntryRepository, txRepo interfaces.ITransactionRepository, threshold int, lookback time.Duration) *ReconciliationUseCase {
	if threshold <= 0 {
		threshold = DefaultAutoMatchThreshold
	}
	if lookback <= 0 {
		lookback = DefaultCandidateLookback
	}
	return &ReconciliationUseCase{entryRepo: entryRepo, txRepo: txRepo, threshold: threshold, lookback: lookback}
}

// ScoreMatch computes the confidence [0,100] that entry and tx describe the
// same real-world payment.
func ScoreMatch(entry entities.StatementEntry, tx entities.Transaction) int {
	score := 0

	if entry.Amount.Sub(tx.Amount).Abs().LessThan(amountTolerance) {
		score += scoreExactAmount
	}

	switch days := dateDistanceDays(entry.Date, tx.CreatedAt); {
	case days <= 1:
		score += scoreDateWithin1d
	case days <= 3:
		score += scoreDateWithin3d
	case days <= 7:
		score += scoreDateWithin7d
	}

	if tx.IdentifierRef != "" && strings.Contains(strings.ToLower(entry.Description), strings.ToLower(tx.IdentifierRef)) {
		score += scoreIdentifierRef
	}

	if entry.AccountID != "" && entry.AccountID == tx.AccountID {
		score += scoreSameAccount
	}

	return score
}

// dateDistanceDays compares calendar dates, ignoring time of day.
func dateDistanceDays(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := int(au.Sub(bu).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

// ReconcileEntry scores the entry against candidate transactions of the same
// account inside the lookback window, picks the best (ties broken by nearest
// date) and links it when the score clears the threshold.
func (u *ReconciliationUseCase) ReconcileEntry(ctx context.Context, entry entities.StatementEntry) (entities.StatementEntry, error) {
	if entry.ReconStatus == entities.ReconciliationStatusConciliado {
		return entry, nil
	}

	candidates, err := u.txRepo.ListByAccountCreatedAfter(ctx, entry.AccountID, entry.Date.Add(-u.lookback))
	if err != nil {
		return entities.StatementEntry{}, err
	}

	linked := map[string]bool{}
	if len(candidates) > 0 {
		if linked, err = u.linkedTransactionIDs(ctx, entry.AccountID); err != nil {
			return entities.StatementEntry{}, err
		}
	}

	best, bestScore := pickBest(entry, candidates, linked)
	if bestScore <= 0 {
		log.Printf("[recon][usecase] no candidate entry_id=%s account_id=%s", entry.ID, entry.AccountID)
		return entry, nil
	}

	if bestScore >= u.threshold {
		log.Printf("[recon][usecase] auto-match entry_id=%s tx_id=%s score=%d", entry.ID, best.ID, bestScore)
		return u.entryRepo.SetReconciliation(ctx, entry.AccountID, entry.ExternalDocID, entities.ReconciliationStatusConciliado, best.ID, bestScore)
	}

	log.Printf("[recon][usecase] below threshold entry_id=%s best_tx_id=%s score=%d threshold=%d", entry.ID, best.ID, bestScore, u.threshold)
	return u.entryRepo.SetReconciliation(ctx, entry.AccountID, entry.ExternalDocID, entities.ReconciliationStatusPendente, "", bestScore)
}

func (u *ReconciliationUseCase) ReconcileByID(ctx context.Context, entryID string) (entities.StatementEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.StatementEntry{}, ErrStatementEntryNotFound
	}
	entry, err := u.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return entities.StatementEntry{}, err
	}
	if entry.ID == "" {
		return entities.StatementEntry{}, ErrStatementEntryNotFound
	}
	return u.ReconcileEntry(ctx, entry)
}

// linkedTransactionIDs collects transactions already held by a conciliado
// entry of the account. Each transaction reconciles at most one statement
// line, so those ids are out of the candidate set.
func (u *ReconciliationUseCase) linkedTransactionIDs(ctx context.Context, accountID string) (map[string]bool, error) {
	reconciled, err := u.entryRepo.ListByAccount(ctx, accountID, entities.ReconciliationStatusConciliado)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(reconciled))
	for _, e := range reconciled {
		if e.TransactionID != "" {
			ids[e.TransactionID] = true
		}
	}
	return ids, nil
}

func pickBest(entry entities.StatementEntry, candidates []entities.Transaction, linked map[string]bool) (entities.Transaction, int) {
	var best entities.Transaction
	bestScore := 0
	bestDistance := 0

	for _, tx := range candidates {
		if linked[tx.ID] {
			continue
		}
		score := ScoreMatch(entry, tx)
		if score == 0 {
			continue
		}
		distance := dateDistanceDays(entry.Date, tx.CreatedAt)
		if score > bestScore || (score == bestScore && distance < bestDistance) {
			best = tx
			bestScore = score
			bestDistance = distance
		}
	}
	return best, bestScore
}
