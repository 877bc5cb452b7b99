//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/repository"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/sanitizer"
)

const (
	maxNameLength   = 64
	maxSymbolLength = 10

	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateTokenInput carries a registration request.
type CreateTokenInput struct {
	Mint          string
	Name          string
	Symbol        string
	Description   *string
	ImageURL      *string
	CreatorWallet string
}

// TokenService handles token identity registration and listing.
type TokenService interface {
	Create(ctx context.Context, input CreateTokenInput) (model.Token, error)
	GetByMint(ctx context.Context, mint string) (model.Token, error)
	List(ctx context.Context, limit, offset int) ([]model.Token, error)
	Retire(ctx context.Context, mint, wallet string) error
}

type tokenService struct {
	tokens repository.TokenRepository
	guard  CollisionService
}

// NewTokenService creates a token service guarded by the given collision
// service.
func NewTokenService(tokens repository.TokenRepository, guard CollisionService) TokenService {
	return &tokenService{tokens: tokens, guard: guard}
}

// Create validates the input, consults the collision guard, and persists the
// registration. The guard is advisory; a concurrent registration that slips
// past it is caught by the unique index and reported as the same conflict.
func (s *tokenService) Create(ctx context.Context, input CreateTokenInput) (model.Token, error) {
	name := strings.TrimSpace(input.Name)
	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))
	mint := strings.TrimSpace(input.Mint)

	if utf8.RuneCountInString(name) < minNameLength || utf8.RuneCountInString(name) > maxNameLength {
		return model.Token{}, ErrInvalid
	}
	if symbol == "" || utf8.RuneCountInString(symbol) > maxSymbolLength {
		return model.Token{}, ErrInvalid
	}
	if !isValidMint(mint) {
		return model.Token{}, ErrInvalid
	}
	if !isValidWallet(input.CreatorWallet) {
		return model.Token{}, ErrInvalid
	}

	lock, err := s.guard.Evaluate(ctx, name, symbol)
	if err != nil {
		return model.Token{}, err
	}
	if lock.Kind != Unlocked {
		return model.Token{}, &IdentityLockedError{State: lock}
	}

	token := model.Token{
		Mint:          mint,
		Name:          name,
		Symbol:        symbol,
		Description:   cleanOptional(input.Description, sanitizer.StripTags),
		ImageURL:      cleanOptional(input.ImageURL, strings.TrimSpace),
		CreatorWallet: input.CreatorWallet,
	}

	created, err := s.tokens.Create(ctx, token)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the write-time race (mint or identity already taken);
			// a valid outcome, not a failure.
			return model.Token{}, ErrConflict
		}
		return model.Token{}, fmt.Errorf("create token: %w", err)
	}
	return created, nil
}

// GetByMint retrieves a token by mint address.
func (s *tokenService) GetByMint(ctx context.Context, mint string) (model.Token, error) {
	token, err := s.tokens.GetByMint(ctx, strings.TrimSpace(mint))
	if err != nil {
		return model.Token{}, fmt.Errorf("get token: %w", err)
	}
	if token == nil {
		return model.Token{}, ErrNotFound
	}
	return *token, nil
}

// List returns active tokens, newest first.
func (s *tokenService) List(ctx context.Context, limit, offset int) ([]model.Token, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.tokens.List(ctx, limit, offset)
}

// Retire delists a token. Only the creator wallet may retire its own token.
func (s *tokenService) Retire(ctx context.Context, mint, wallet string) error {
	token, err := s.tokens.GetByMint(ctx, strings.TrimSpace(mint))
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if token == nil || token.Retired {
		return ErrNotFound
	}
	if token.CreatorWallet != wallet {
		return ErrUnauthorized
	}

	if err := s.tokens.Retire(ctx, token.Mint); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("retire token: %w", err)
	}
	return nil
}

// isValidMint checks that the mint is a base58-encoded 32-byte address.
func isValidMint(mint string) bool {
	if mint == "" {
		return false
	}
	decoded, err := base58.Decode(mint)
	return err == nil && len(decoded) == 32
}

// isValidWallet checks that the wallet is a base58-encoded 32-byte public key.
func isValidWallet(wallet string) bool {
	return isValidMint(wallet)
}

func cleanOptional(value *string, clean func(string) string) *string {
	if value == nil {
		return nil
	}
	cleaned := clean(*value)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
