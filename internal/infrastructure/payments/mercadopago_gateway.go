package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	"condopay/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidGatewayPaymentID = errors.New("invalid gateway payment id")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// GetPayment fetches the authoritative payment detail by provider id. The
// webhook body is never trusted for amount/status; this call is the single
// source of truth for both the webhook and polling paths.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, gatewayPaymentID string) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGetPayment(gatewayPaymentID)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(gatewayPaymentID))
	if err != nil {
		log.Printf("[payment][gateway] invalid payment id=%q err=%v", gatewayPaymentID, err)
		return interfaces.GatewayPayment{}, ErrInvalidGatewayPaymentID
	}

	log.Printf("[payment][gateway] get start payment_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%d err=%v", id, err)
		return interfaces.GatewayPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed payment_id=%d err=%v", id, err)
		return interfaces.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] get success payment_id=%d status=%s detail=%s", resp.ID, resp.Status, resp.StatusDetail)

	return interfaces.GatewayPayment{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		TransactionAmount: decimal.NewFromFloat(resp.TransactionAmount),
		PayerEmail:        payerEmailFromRaw(raw),
		Raw:               raw,
	}, nil
}

func (g *MercadoPagoGateway) mockGetPayment(gatewayPaymentID string) (interfaces.GatewayPayment, error) {
	status := getenvDefault("PAYMENT_GATEWAY_MOCK_STATUS", "approved")
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{
		"id":            gatewayPaymentID,
		"status":        status,
		"status_detail": "accredited",
		"date_created":  now,
		"payer":         map[string]any{"email": "test_user_br@testuser.com"},
	}
	if status == "approved" {
		resp["date_approved"] = now
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.GatewayPayment{}, err
	}

	log.Printf("[payment][gateway] mock get success payment_id=%s status=%s", gatewayPaymentID, status)
	return interfaces.GatewayPayment{
		ID:           gatewayPaymentID,
		Status:       status,
		StatusDetail: "accredited",
		PayerEmail:   "test_user_br@testuser.com",
		Raw:          raw,
	}, nil
}

func payerEmailFromRaw(raw json.RawMessage) string {
	var probe struct {
		Payer struct {
			Email string `json:"email"`
		} `json:"payer"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.Payer.Email
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
