package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"condopay/internal/domain/entities"
	mock_interfaces "condopay/internal/usecase/interfaces/mocks"
)

func TestPendingPollUseCase_PollPending(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("resolves each pending transaction through the webhook pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)

		pending := []entities.Transaction{
			{ID: "tx-1", GatewayPaymentID: "111", Method: entities.PaymentMethodPix},
			{ID: "tx-2", GatewayPaymentID: "222", Method: entities.PaymentMethodBoleto},
		}
		txRepo.EXPECT().ListPendingByMethods(gomock.Any(), polledMethods, now.Add(-DefaultPollRecencyWindow)).Return(pending, nil)

		var seen []string
		webhookUC := &fakeWebhookUC{processEvent: func(_ context.Context, event WebhookEvent, source string) ProcessResult {
			if event.Type != "payment" || event.Action != "payment.poll" {
				t.Fatalf("unexpected event: %+v", event)
			}
			if source != entities.EventSourcePolling {
				t.Fatalf("source = %s", source)
			}
			seen = append(seen, event.DataID)
			return ProcessResult{Outcome: OutcomeApplied}
		}}

		uc := NewPendingPollUseCase(txRepo, webhookUC, 0)
		checked, err := uc.PollPending(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if checked != 2 {
			t.Fatalf("checked = %d, want 2", checked)
		}
		if len(seen) != 2 || seen[0] != "111" || seen[1] != "222" {
			t.Fatalf("seen = %v", seen)
		}
	})

	t.Run("failed resolution does not abort the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)

		pending := []entities.Transaction{
			{ID: "tx-1", GatewayPaymentID: "111"},
			{ID: "tx-2", GatewayPaymentID: "222"},
		}
		txRepo.EXPECT().ListPendingByMethods(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)

		webhookUC := &fakeWebhookUC{processEvent: func(_ context.Context, event WebhookEvent, _ string) ProcessResult {
			if event.DataID == "111" {
				return failed(errors.New("gateway down"), true)
			}
			return ProcessResult{Outcome: OutcomeApplied}
		}}

		uc := NewPendingPollUseCase(txRepo, webhookUC, 0)
		checked, err := uc.PollPending(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if checked != 1 {
			t.Fatalf("checked = %d, want 1", checked)
		}
	})

	t.Run("query failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListPendingByMethods(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		uc := NewPendingPollUseCase(txRepo, &fakeWebhookUC{}, 0)
		if _, err := uc.PollPending(ctx, now); err == nil {
			t.Fatalf("expected error")
		}
	})
}
