package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")
	ErrInvalidGatewayPaymentRef = errors.New("invalid gateway payment id")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrTransactionAlreadyExists = errors.New("transaction already exists for gateway payment id")
)

// RegisterTransactionInput is what the condominium CRUD layer hands over when
// a payment is initiated against a receivable.
type RegisterTransactionInput struct {
	GatewayPaymentID string
	Method           entities.PaymentMethod
	Amount           decimal.Decimal
	ReceivableID     string
	AccountID        string
	IdentifierRef    string
}

// ITransactionUseCase registers and reads payment transactions.

type ITransactionUseCase interface {
	Register(ctx context.Context, in RegisterTransactionInput) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) Register(ctx context.Context, in RegisterTransactionInput) (entities.Transaction, error) {
	in.GatewayPaymentID = strings.TrimSpace(in.GatewayPaymentID)
	if in.GatewayPaymentID == "" {
		return entities.Transaction{}, ErrInvalidGatewayPaymentRef
	}
	switch in.Method {
	case entities.PaymentMethodPix, entities.PaymentMethodBoleto, entities.PaymentMethodCartao:
	default:
		return entities.Transaction{}, ErrInvalidPaymentMethod
	}
	if !in.Amount.IsPositive() {
		return entities.Transaction{}, ErrInvalidTransactionAmount
	}

	if existing, err := u.repo.GetByGatewayPaymentID(ctx, in.GatewayPaymentID); err != nil {
		return entities.Transaction{}, err
	} else if existing.ID != "" {
		return entities.Transaction{}, ErrTransactionAlreadyExists
	}

	t := entities.Transaction{
		ID:               uuid.NewString(),
		GatewayPaymentID: in.GatewayPaymentID,
		Method:           in.Method,
		Amount:           in.Amount,
		Status:           entities.PaymentStatusPendente,
		ReceivableID:     strings.TrimSpace(in.ReceivableID),
		AccountID:        strings.TrimSpace(in.AccountID),
		IdentifierRef:    strings.TrimSpace(in.IdentifierRef),
		CreatedAt:        time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Transaction{}, err
	}
	log.Printf("[transaction][usecase] registered tx_id=%s payment_id=%s method=%s amount=%s", created.ID, created.GatewayPaymentID, created.Method, created.Amount)
	return created, nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}
