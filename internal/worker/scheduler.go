package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"condopay/internal/usecase"
)

// Scheduler runs the two background loops of the payment core: the webhook
// retry worker and the pending-payment polling fallback. Both loops share the
// stop channel and may run concurrently with inbound HTTP requests; every
// write they issue goes through the same conditional-update path the webhook
// handler uses, so no extra locking is needed here.

type Scheduler struct {
	retryUC usecase.IWebhookRetryUseCase
	pollUC  usecase.IPendingPollUseCase

	retryInterval time.Duration
	pollInterval  time.Duration
	retryBatch    int

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

const (
	DefaultRetryInterval = 15 * time.Second
	DefaultPollInterval  = 10 * time.Second
	defaultRetryBatch    = 25
	attemptTimeout       = 30 * time.Second
)

func NewScheduler(retryUC usecase.IWebhookRetryUseCase, pollUC usecase.IPendingPollUseCase, retryInterval, pollInterval time.Duration) *Scheduler {
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Scheduler{
		retryUC:       retryUC,
		pollUC:        pollUC,
		retryInterval: retryInterval,
		pollInterval:  pollInterval,
		retryBatch:    defaultRetryBatch,
		stopCh:        make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.stopCh = make(chan struct{})
	s.running = true

	log.Printf("[worker][scheduler] starting retry_interval=%s poll_interval=%s", s.retryInterval, s.pollInterval)

	s.wg.Add(1)
	go s.retryLoop()

	s.wg.Add(1)
	go s.pollLoop()
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	log.Printf("[worker][scheduler] stopping")
	close(s.stopCh)
	s.running = false
	s.wg.Wait()
	log.Printf("[worker][scheduler] stopped")
}

func (s *Scheduler) retryLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.retryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
			attempted, err := s.retryUC.ProcessDue(ctx, time.Now().UTC(), s.retryBatch)
			cancel()
			if err != nil {
				log.Printf("[worker][retry] tick failed err=%v", err)
				continue
			}
			if attempted > 0 {
				log.Printf("[worker][retry] tick done attempted=%d", attempted)
			}
		}
	}
}

func (s *Scheduler) pollLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
			checked, err := s.pollUC.PollPending(ctx, time.Now().UTC())
			cancel()
			if err != nil {
				log.Printf("[worker][polling] tick failed err=%v", err)
				continue
			}
			if checked > 0 {
				log.Printf("[worker][polling] tick done checked=%d", checked)
			}
		}
	}
}
