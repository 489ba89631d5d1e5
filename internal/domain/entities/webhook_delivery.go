package entities

import (
	"encoding/json"
	"time"
)

// DeliveryStatus is the retry state machine of an inbound webhook:
//
//	pendente -> processando -> {sucesso | pendente (retry) | falha_permanente}
//	pendente -> cancelado (administrative)
//
// sucesso, falha_permanente and cancelado are terminal.

type DeliveryStatus string

const (
	DeliveryStatusPendente        DeliveryStatus = "pendente"
	DeliveryStatusProcessando     DeliveryStatus = "processando"
	DeliveryStatusSucesso         DeliveryStatus = "sucesso"
	DeliveryStatusFalhaPermanente DeliveryStatus = "falha_permanente"
	DeliveryStatusCancelado       DeliveryStatus = "cancelado"
)

func (s DeliveryStatus) IsTerminal() bool {
	switch s {
	case DeliveryStatusSucesso, DeliveryStatusFalhaPermanente, DeliveryStatusCancelado:
		return true
	}
	return false
}

// Retry tuning defaults. Overridable via env on the worker side.
const (
	DefaultMaxAttempts    = 5
	DefaultRetryBaseDelay = 1 * time.Minute
	DefaultRetryMaxDelay  = 30 * time.Minute
)

// DeliveryAttempt is one processing attempt recorded on the delivery log.
type DeliveryAttempt struct {
	At         time.Time     `json:"at"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	StatusCode int           `json:"status_code,omitempty"`
}

// WebhookDelivery is one inbound gateway notification awaiting processing or
// retry. It is persisted on first receipt so that retry eligibility survives
// a process restart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status, sorted by next_attempt_at

type WebhookDelivery struct {
	ID       string            `json:"id"`
	Provider string            `json:"provider"`
	Payload  json.RawMessage   `json:"payload"`
	Headers  map[string]string `json:"headers,omitempty"`

	Attempts    int            `json:"attempts"`
	MaxAttempts int            `json:"max_attempts"`
	Status      DeliveryStatus `json:"status"`

	NextAttemptAt *time.Time        `json:"next_attempt_at,omitempty"`
	AttemptLog    []DeliveryAttempt `json:"attempt_log,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// BackoffDelay computes the wait before the next retry after `attempts`
// failed attempts: min(2^attempts * base, max).
func BackoffDelay(attempts int, base, max time.Duration) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	delay := base
	for i := 0; i < attempts; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	if delay > max {
		return max
	}
	return delay
}

// RegisterAttempt appends an attempt to the log and moves the state machine:
// success ends the record, failure either schedules a retry with exponential
// backoff or, once attempts are exhausted, parks it as falha_permanente for
// operator review.
func (d *WebhookDelivery) RegisterAttempt(attempt DeliveryAttempt, base, max time.Duration) {
	d.Attempts++
	d.AttemptLog = append(d.AttemptLog, attempt)

	if attempt.Success {
		d.Status = DeliveryStatusSucesso
		d.NextAttemptAt = nil
		return
	}

	if d.Attempts >= d.MaxAttempts {
		d.Status = DeliveryStatusFalhaPermanente
		d.NextAttemptAt = nil
		return
	}

	next := attempt.At.Add(BackoffDelay(d.Attempts, base, max))
	d.Status = DeliveryStatusPendente
	d.NextAttemptAt = &next
}

// DueForRetry reports whether the scheduler may pick the record up.
func (d *WebhookDelivery) DueForRetry(now time.Time) bool {
	if d.Status != DeliveryStatusPendente {
		return false
	}
	if d.NextAttemptAt == nil {
		return true
	}
	return !now.Before(*d.NextAttemptAt)
}
