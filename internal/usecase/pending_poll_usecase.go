package usecase

import (
	"context"
	"log"
	"time"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"
)

// Pix and boleto confirmations arrive asynchronously; card payments resolve
// inline at creation, so polling them buys nothing.
var polledMethods = []entities.PaymentMethod{
	entities.PaymentMethodPix,
	entities.PaymentMethodBoleto,
}

// IPendingPollUseCase is the lost-webhook fallback: it re-resolves pending
// transactions through the exact same pipeline the webhook path uses.

type IPendingPollUseCase interface {
	PollPending(ctx context.Context, now time.Time) (int, error)
}

type PendingPollUseCase struct {
	txRepo    interfaces.ITransactionRepository
	webhookUC IPaymentWebhookUseCase

	// recencyWindow bounds how old a pending transaction may be and still be
	// polled; the gateway expires older payment sessions anyway.
	recencyWindow time.Duration
}

var _ IPendingPollUseCase = (*PendingPollUseCase)(nil)

const DefaultPollRecencyWindow = 30 * time.Minute

func NewPendingPollUseCase(txRepo interfaces.ITransactionRepository, webhookUC IPaymentWebhookUseCase, recencyWindow time.Duration) *PendingPollUseCase {
	if recencyWindow <= 0 {
		recencyWindow = DefaultPollRecencyWindow
	}
	return &PendingPollUseCase{txRepo: txRepo, webhookUC: webhookUC, recencyWindow: recencyWindow}
}

// PollPending re-runs gateway resolution for recent pending pix/boleto
// transactions. Convergence with the webhook path is free: both funnel into
// ProcessEvent, whose update is conditional per transaction.
func (u *PendingPollUseCase) PollPending(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-u.recencyWindow)
	pending, err := u.txRepo.ListPendingByMethods(ctx, polledMethods, cutoff)
	if err != nil {
		log.Printf("[polling][usecase] pending query failed err=%v", err)
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	log.Printf("[polling][usecase] checking pending transactions count=%d window=%s", len(pending), u.recencyWindow)

	checked := 0
	for _, tx := range pending {
		event := WebhookEvent{Type: "payment", Action: "payment.poll", DataID: tx.GatewayPaymentID}
		result := u.webhookUC.ProcessEvent(ctx, event, entities.EventSourcePolling)
		if result.Outcome == OutcomeFailed {
			// Transient; the next tick retries the same transaction.
			log.Printf("[polling][usecase] resolve failed tx_id=%s err=%v", tx.ID, result.Err)
			continue
		}
		checked++
	}
	return checked, nil
}
