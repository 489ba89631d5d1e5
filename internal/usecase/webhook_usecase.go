package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"
)

var (
	ErrUnknownTransaction   = errors.New("transaction not found for gateway payment id")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrReceivableNotLinked  = errors.New("transaction has no linked receivable")
)

// WebhookEvent is the provider notification trigger: {type, action, data.id}.
// Nothing else from the body is trusted; amount and status come from a fresh
// gateway fetch.
type WebhookEvent struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	DataID string `json:"data_id"`
}

// ParseWebhookEvent decodes the provider body shape {type, action, data:{id}}.
// Used by the HTTP handler on receipt and by the retry worker when replaying
// a stored payload.
func ParseWebhookEvent(raw json.RawMessage) (WebhookEvent, error) {
	var body struct {
		Type   string `json:"type"`
		Action string `json:"action"`
		Data   struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return WebhookEvent{}, err
	}
	return WebhookEvent{Type: body.Type, Action: body.Action, DataID: body.Data.ID}, nil
}

type ProcessOutcome string

const (
	// OutcomeIgnored acknowledges an event that needs no work: a non-payment
	// type or a payment id we have no transaction for.
	OutcomeIgnored ProcessOutcome = "ignored"
	// OutcomeApplied means the gateway status was resolved and persisted
	// (possibly as a no-op re-application of the same status).
	OutcomeApplied ProcessOutcome = "applied"
	OutcomeFailed  ProcessOutcome = "failed"
)

// ProcessResult is the explicit outcome consumed uniformly by the HTTP
// handler, the retry worker and the polling fallback.
type ProcessResult struct {
	Outcome       ProcessOutcome
	Retryable     bool
	TransactionID string
	Status        entities.PaymentStatus
	Err           error
}

func ignored() ProcessResult { return ProcessResult{Outcome: OutcomeIgnored} }

func failed(err error, retryable bool) ProcessResult {
	return ProcessResult{Outcome: OutcomeFailed, Retryable: retryable, Err: err}
}

// IPaymentWebhookUseCase resolves gateway payment events into local
// transaction/receivable state.

type IPaymentWebhookUseCase interface {
	ProcessEvent(ctx context.Context, event WebhookEvent, source string) ProcessResult
	CaptureForRetry(ctx context.Context, payload json.RawMessage, headers map[string]string, firstAttempt entities.DeliveryAttempt) (entities.WebhookDelivery, error)
}

type PaymentWebhookUseCase struct {
	txRepo         interfaces.ITransactionRepository
	receivableRepo interfaces.IReceivableRepository
	deliveryRepo   interfaces.IWebhookDeliveryRepository
	gateway        interfaces.IPaymentGateway

	maxAttempts int
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(
	txRepo interfaces.ITransactionRepository,
	receivableRepo interfaces.IReceivableRepository,
	deliveryRepo interfaces.IWebhookDeliveryRepository,
	gateway interfaces.IPaymentGateway,
	maxAttempts int,
) *PaymentWebhookUseCase {
	if maxAttempts <= 0 {
		maxAttempts = entities.DefaultMaxAttempts
	}
	return &PaymentWebhookUseCase{
		txRepo:         txRepo,
		receivableRepo: receivableRepo,
		deliveryRepo:   deliveryRepo,
		gateway:        gateway,
		maxAttempts:    maxAttempts,
	}
}

// ProcessEvent runs the full resolution pipeline: re-fetch from the gateway,
// map the status, append to the transaction event log and, on approval,
// settle the linked receivable. The whole pipeline is idempotent: running it
// twice for the same event converges on the same state.
func (u *PaymentWebhookUseCase) ProcessEvent(ctx context.Context, event WebhookEvent, source string) ProcessResult {
	if strings.TrimSpace(event.Type) != "payment" {
		log.Printf("[webhook][usecase] ignoring non-payment event type=%q action=%q", event.Type, event.Action)
		return ignored()
	}

	paymentID := strings.TrimSpace(event.DataID)
	if paymentID == "" {
		log.Printf("[webhook][usecase] payment event without data.id action=%q", event.Action)
		return ignored()
	}

	tx, err := u.txRepo.GetByGatewayPaymentID(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] transaction lookup failed payment_id=%s err=%v", paymentID, err)
		return failed(err, true)
	}
	if tx.ID == "" {
		// An event for a transaction we never created is not an error; other
		// systems may share the gateway account.
		log.Printf("[webhook][usecase] unknown transaction payment_id=%s source=%s", paymentID, source)
		return ignored()
	}

	if u.gateway == nil {
		log.Printf("[webhook][usecase] gateway not configured payment_id=%s source=%s", paymentID, source)
		return failed(ErrGatewayNotConfigured, true)
	}

	gw, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] gateway fetch failed payment_id=%s err=%v", paymentID, err)
		return failed(errors.Join(ErrGatewayUnavailable, err), true)
	}

	mapped := entities.MapGatewayStatus(gw.Status)
	now := time.Now().UTC()

	gwEvent := entities.GatewayEvent{
		At:            now,
		GatewayStatus: gw.Status,
		StatusDetail:  gw.StatusDetail,
		MappedStatus:  mapped,
		Source:        source,
		RawPayload:    gw.Raw,
	}

	var confirmedAt *time.Time
	if mapped == entities.PaymentStatusAprovado && tx.ConfirmedAt == nil {
		confirmedAt = &now
	}

	updated, err := u.txRepo.AppendEventAndSetStatus(ctx, tx.ID, gwEvent, tx.Status, mapped, confirmedAt)
	if err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			// A concurrent webhook/polling writer already moved the status.
			// Last consistent gateway status wins; nothing left to do here.
			log.Printf("[webhook][usecase] status conflict, concurrent update won tx_id=%s payment_id=%s", tx.ID, paymentID)
			return ProcessResult{Outcome: OutcomeApplied, TransactionID: tx.ID, Status: mapped}
		}
		log.Printf("[webhook][usecase] status update failed tx_id=%s err=%v", tx.ID, err)
		return failed(err, true)
	}
	log.Printf("[webhook][usecase] status applied tx_id=%s payment_id=%s status=%s source=%s", updated.ID, paymentID, updated.Status, source)

	if mapped == entities.PaymentStatusAprovado {
		// The receivable payment date is the stored confirmation time, not the
		// delivery time. Re-delivered events must not move payment_date.
		paymentDate := now
		if updated.ConfirmedAt != nil {
			paymentDate = *updated.ConfirmedAt
		}
		if err := u.settleReceivable(ctx, updated, paymentDate); err != nil {
			return failed(err, true)
		}
	}

	return ProcessResult{Outcome: OutcomeApplied, TransactionID: updated.ID, Status: updated.Status}
}

// settleReceivable marks the linked receivable pago. SetPaid is conditional
// on the repository side, so re-running it for the same transaction is safe.
func (u *PaymentWebhookUseCase) settleReceivable(ctx context.Context, tx entities.Transaction, paymentDate time.Time) error {
	if tx.ReceivableID == "" {
		log.Printf("[webhook][usecase] approved transaction without receivable tx_id=%s", tx.ID)
		return nil
	}
	if _, err := u.receivableRepo.SetPaid(ctx, tx.ReceivableID, paymentDate, tx.Method, tx.ID); err != nil {
		log.Printf("[webhook][usecase] receivable settle failed tx_id=%s receivable_id=%s err=%v", tx.ID, tx.ReceivableID, err)
		return err
	}
	log.Printf("[webhook][usecase] receivable settled tx_id=%s receivable_id=%s", tx.ID, tx.ReceivableID)
	return nil
}

// CaptureForRetry persists a delivery record after a failed synchronous
// attempt so the scheduler takes over. The failed attempt already counts
// toward max_attempts and its backoff.
func (u *PaymentWebhookUseCase) CaptureForRetry(ctx context.Context, payload json.RawMessage, headers map[string]string, firstAttempt entities.DeliveryAttempt) (entities.WebhookDelivery, error) {
	d := entities.WebhookDelivery{
		ID:          uuid.NewString(),
		Provider:    "mercadopago",
		Payload:     payload,
		Headers:     headers,
		MaxAttempts: u.maxAttempts,
		Status:      entities.DeliveryStatusPendente,
		CreatedAt:   firstAttempt.At,
	}
	d.RegisterAttempt(firstAttempt, entities.DefaultRetryBaseDelay, entities.DefaultRetryMaxDelay)

	created, err := u.deliveryRepo.Create(ctx, d)
	if err != nil {
		log.Printf("[webhook][usecase] retry capture failed delivery_id=%s err=%v", d.ID, err)
		return entities.WebhookDelivery{}, err
	}
	log.Printf("[webhook][usecase] captured for retry delivery_id=%s attempts=%d next_attempt=%v", created.ID, created.Attempts, created.NextAttemptAt)
	return created, nil
}
