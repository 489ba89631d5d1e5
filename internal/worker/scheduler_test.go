package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"condopay/internal/domain/entities"
)

type countingRetryUC struct {
	calls atomic.Int64
}

func (c *countingRetryUC) ProcessDue(context.Context, time.Time, int) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func (c *countingRetryUC) ListByStatus(context.Context, entities.DeliveryStatus) ([]entities.WebhookDelivery, error) {
	return nil, nil
}

func (c *countingRetryUC) Cancel(context.Context, string) (entities.WebhookDelivery, error) {
	return entities.WebhookDelivery{}, nil
}

type countingPollUC struct {
	calls atomic.Int64
}

func (c *countingPollUC) PollPending(context.Context, time.Time) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestScheduler_StartStop(t *testing.T) {
	retryUC := &countingRetryUC{}
	pollUC := &countingPollUC{}

	s := NewScheduler(retryUC, pollUC, 10*time.Millisecond, 10*time.Millisecond)
	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	retryCalls := retryUC.calls.Load()
	pollCalls := pollUC.calls.Load()
	if retryCalls == 0 {
		t.Fatalf("retry loop never ticked")
	}
	if pollCalls == 0 {
		t.Fatalf("poll loop never ticked")
	}

	// No more ticks after Stop.
	time.Sleep(30 * time.Millisecond)
	if retryUC.calls.Load() != retryCalls || pollUC.calls.Load() != pollCalls {
		t.Fatalf("loops kept running after Stop")
	}
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	retryUC := &countingRetryUC{}
	pollUC := &countingPollUC{}

	s := NewScheduler(retryUC, pollUC, time.Hour, time.Hour)
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}

func TestScheduler_Defaults(t *testing.T) {
	s := NewScheduler(nil, nil, 0, 0)
	if s.retryInterval != DefaultRetryInterval {
		t.Fatalf("retry interval = %v", s.retryInterval)
	}
	if s.pollInterval != DefaultPollInterval {
		t.Fatalf("poll interval = %v", s.pollInterval)
	}
	if s.retryBatch != defaultRetryBatch {
		t.Fatalf("retry batch = %d", s.retryBatch)
	}
}
