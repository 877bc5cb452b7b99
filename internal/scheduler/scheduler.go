package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
)

// Scheduler polls the verification backlog so a stalled drain worker shows
// up in the logs before users notice.
type Scheduler struct {
	verifications service.VerificationService
	interval      time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
	cancelFunc    context.CancelFunc // cancels the in-flight poll
	mu            sync.Mutex         // protects cancelFunc
}

func New(verifications service.VerificationService, interval time.Duration) *Scheduler {
	return &Scheduler{
		verifications: verifications,
		interval:      interval,
		stopCh:        make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("queue monitor started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("queue monitor stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Poll immediately on start
	s.poll()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.poll()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	depth, err := s.verifications.Depth(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("queue depth poll cancelled")
			return
		}
		logger.Error("queue depth poll", "error", err)
		return
	}
	logger.Debug("queue depth", "depth", depth)
}
