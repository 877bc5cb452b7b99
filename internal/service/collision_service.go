//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wdthirty/solana-launchpad-sub004/internal/repository"
)

// minNameLength is the shortest token name the guard accepts after trimming.
const minNameLength = 2

// LockKind classifies the collision decision for a proposed identity.
type LockKind int

const (
	// Unlocked means the identity may proceed to registration.
	Unlocked LockKind = iota
	// LockedGraduated means a graduated token holds the identity permanently.
	LockedGraduated
	// LockedRecent means a non-graduated token registered the identity within
	// the deterrence window; the lock lapses on its own.
	LockedRecent
)

func (k LockKind) String() string {
	switch k {
	case LockedGraduated:
		return "locked_graduated"
	case LockedRecent:
		return "locked_recent"
	default:
		return "unlocked"
	}
}

// LockState is the result of a collision evaluation. Remaining is only set
// for LockedRecent.
type LockState struct {
	Kind      LockKind
	Remaining time.Duration
}

// IdentityLockedError reports that a proposed identity is currently held.
type IdentityLockedError struct {
	State LockState
}

func (e *IdentityLockedError) Error() string {
	return "identity already taken"
}

func (e *IdentityLockedError) Is(target error) bool {
	return target == ErrConflict
}

// CollisionService decides whether a proposed (name, symbol) identity may be
// registered. It is purely advisory: the unique index enforced at insert
// time remains the correctness boundary for the check-then-act gap between
// two concurrent registrations.
type CollisionService interface {
	Evaluate(ctx context.Context, name, symbol string) (LockState, error)
}

type collisionService struct {
	tokens           repository.TokenRepository
	deterrenceWindow time.Duration
	now              func() time.Time
}

// NewCollisionService creates a collision guard with the given deterrence
// window; zero or negative falls back to 10 minutes.
func NewCollisionService(tokens repository.TokenRepository, deterrenceWindow time.Duration) CollisionService {
	if deterrenceWindow <= 0 {
		deterrenceWindow = 10 * time.Minute
	}
	return &collisionService{
		tokens:           tokens,
		deterrenceWindow: deterrenceWindow,
		now:              time.Now,
	}
}

// Evaluate performs a single case-insensitive registry lookup and classifies
// the result. An empty symbol matches on name alone, which older callers
// still rely on. Casing is folded before comparison so trivial case changes
// cannot bypass the guard.
func (s *collisionService) Evaluate(ctx context.Context, name, symbol string) (LockState, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minNameLength {
		return LockState{}, ErrInvalid
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	match, err := s.tokens.FindActiveByNameSymbol(ctx, name, symbol)
	if err != nil {
		return LockState{}, fmt.Errorf("%w: lookup identity: %v", ErrUnavailable, err)
	}
	if match == nil {
		return LockState{Kind: Unlocked}, nil
	}

	if match.Graduated {
		return LockState{Kind: LockedGraduated}, nil
	}

	age := s.now().Sub(match.CreatedAt)
	if age < s.deterrenceWindow {
		return LockState{Kind: LockedRecent, Remaining: s.deterrenceWindow - age}, nil
	}

	// The deterrence window lapsed; the stale registration no longer locks
	// the identity (the unique index still prevents an exact duplicate row).
	return LockState{Kind: Unlocked}, nil
}
