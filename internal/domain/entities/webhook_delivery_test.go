package entities

import (
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	base := 1 * time.Minute
	max := 30 * time.Minute

	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{0, 1 * time.Minute},
		{1, 2 * time.Minute},
		{2, 4 * time.Minute},
		{3, 8 * time.Minute},
		{4, 16 * time.Minute},
		{5, 30 * time.Minute},
		{10, 30 * time.Minute},
		{-1, 1 * time.Minute},
	}
	for _, c := range cases {
		if got := BackoffDelay(c.attempts, base, max); got != c.want {
			t.Fatalf("BackoffDelay(%d) = %v, want %v", c.attempts, got, c.want)
		}
	}
}

func TestWebhookDelivery_RegisterAttempt(t *testing.T) {
	base := 1 * time.Minute
	max := 30 * time.Minute
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("failure schedules retry with doubling backoff", func(t *testing.T) {
		d := WebhookDelivery{ID: "d-1", MaxAttempts: DefaultMaxAttempts, Status: DeliveryStatusPendente, CreatedAt: start}

		wantDelays := []time.Duration{
			2 * time.Minute,
			4 * time.Minute,
			8 * time.Minute,
			16 * time.Minute,
		}
		at := start
		for i, want := range wantDelays {
			d.RegisterAttempt(DeliveryAttempt{At: at, Success: false, Error: "gateway down"}, base, max)
			if d.Status != DeliveryStatusPendente {
				t.Fatalf("attempt %d: status = %s, want pendente", i+1, d.Status)
			}
			if d.Attempts != i+1 {
				t.Fatalf("attempt %d: attempts = %d", i+1, d.Attempts)
			}
			if d.NextAttemptAt == nil {
				t.Fatalf("attempt %d: expected next attempt time", i+1)
			}
			if got := d.NextAttemptAt.Sub(at); got != want {
				t.Fatalf("attempt %d: delay = %v, want %v", i+1, got, want)
			}
			at = *d.NextAttemptAt
		}

		// Fifth failure exhausts the budget.
		d.RegisterAttempt(DeliveryAttempt{At: at, Success: false, Error: "gateway down"}, base, max)
		if d.Status != DeliveryStatusFalhaPermanente {
			t.Fatalf("status = %s, want falha_permanente", d.Status)
		}
		if d.NextAttemptAt != nil {
			t.Fatalf("expected nil next attempt after permanent failure")
		}
		if len(d.AttemptLog) != 5 {
			t.Fatalf("attempt log len = %d, want 5", len(d.AttemptLog))
		}
	})

	t.Run("success is terminal", func(t *testing.T) {
		d := WebhookDelivery{ID: "d-2", MaxAttempts: DefaultMaxAttempts, Status: DeliveryStatusPendente, CreatedAt: start}
		d.RegisterAttempt(DeliveryAttempt{At: start, Success: false}, base, max)
		d.RegisterAttempt(DeliveryAttempt{At: start.Add(2 * time.Minute), Success: true}, base, max)

		if d.Status != DeliveryStatusSucesso {
			t.Fatalf("status = %s, want sucesso", d.Status)
		}
		if d.NextAttemptAt != nil {
			t.Fatalf("expected nil next attempt after success")
		}
		if d.Attempts != 2 {
			t.Fatalf("attempts = %d, want 2", d.Attempts)
		}
	})
}

func TestWebhookDelivery_DueForRetry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	later := now.Add(5 * time.Minute)

	t.Run("pendente without schedule is due", func(t *testing.T) {
		d := WebhookDelivery{Status: DeliveryStatusPendente}
		if !d.DueForRetry(now) {
			t.Fatalf("expected due")
		}
	})

	t.Run("respects next attempt time", func(t *testing.T) {
		d := WebhookDelivery{Status: DeliveryStatusPendente, NextAttemptAt: &later}
		if d.DueForRetry(now) {
			t.Fatalf("expected not due before schedule")
		}
		if !d.DueForRetry(later) {
			t.Fatalf("expected due at schedule")
		}
	})

	t.Run("terminal statuses are never due", func(t *testing.T) {
		for _, status := range []DeliveryStatus{DeliveryStatusSucesso, DeliveryStatusFalhaPermanente, DeliveryStatusCancelado, DeliveryStatusProcessando} {
			d := WebhookDelivery{Status: status}
			if d.DueForRetry(now) {
				t.Fatalf("status %s: expected not due", status)
			}
		}
	})
}

func TestDeliveryStatus_IsTerminal(t *testing.T) {
	terminal := map[DeliveryStatus]bool{
		DeliveryStatusPendente:        false,
		DeliveryStatusProcessando:     false,
		DeliveryStatusSucesso:         true,
		DeliveryStatusFalhaPermanente: true,
		DeliveryStatusCancelado:       true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}
