//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/wdthirty/solana-launchpad-sub004/internal/repository"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
)

// EnqueueOutcome reports what a verification submission did. Skipped
// outcomes are normal control flow, not failures.
type EnqueueOutcome string

const (
	OutcomeEnqueued        EnqueueOutcome = "enqueued"
	OutcomeAlreadyVerified EnqueueOutcome = "already_verified"
	OutcomeAlreadyQueued   EnqueueOutcome = "already_queued"
)

// VerificationService schedules at-most-one pending verification job per
// mint. Entries are drained and removed by an out-of-process worker; this
// service only inserts and reports depth.
type VerificationService interface {
	Enqueue(ctx context.Context, mint string) (EnqueueOutcome, error)
	Depth(ctx context.Context) (int64, error)
}

type verificationService struct {
	tokens        repository.TokenRepository
	queue         repository.VerificationQueueRepository
	warnThreshold int64
	warnLog       rate.Sometimes
}

// NewVerificationService creates a verification queue over the given token
// registry and pending-set store. warnThreshold <= 0 falls back to 1000.
func NewVerificationService(tokens repository.TokenRepository, queue repository.VerificationQueueRepository, warnThreshold int64) VerificationService {
	if warnThreshold <= 0 {
		warnThreshold = 1000
	}
	return &verificationService{
		tokens:        tokens,
		queue:         queue,
		warnThreshold: warnThreshold,
		warnLog:       rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// Enqueue submits a mint for asynchronous verification. Already-verified
// mints are skipped with a single registry lookup and never touch the queue;
// losing the insert race to a concurrent submission yields
// OutcomeAlreadyQueued.
func (s *verificationService) Enqueue(ctx context.Context, mint string) (EnqueueOutcome, error) {
	mint = strings.TrimSpace(mint)
	if mint == "" {
		return "", ErrInvalid
	}

	token, err := s.tokens.GetByMint(ctx, mint)
	if err != nil {
		return "", fmt.Errorf("%w: lookup token: %v", ErrUnavailable, err)
	}
	if token == nil {
		return "", ErrNotFound
	}
	if token.Verified {
		return OutcomeAlreadyVerified, nil
	}

	inserted, err := s.queue.AddIfAbsent(ctx, mint, time.Now())
	if err != nil {
		return "", fmt.Errorf("%w: enqueue verification: %v", ErrUnavailable, err)
	}
	if !inserted {
		return OutcomeAlreadyQueued, nil
	}

	logger.Debug("verification enqueued", "mint", mint)
	return OutcomeEnqueued, nil
}

// Depth returns the pending backlog size. Crossing the warn threshold logs a
// rate-limited warning: a growing backlog means the drain worker is stalled,
// and the log should alert without flooding.
func (s *verificationService) Depth(ctx context.Context) (int64, error) {
	depth, err := s.queue.Size(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: queue depth: %v", ErrUnavailable, err)
	}

	if depth >= s.warnThreshold {
		s.warnLog.Do(func() {
			logger.Warn("verification backlog above threshold", "depth", depth, "threshold", s.warnThreshold)
		})
	}

	return depth, nil
}
