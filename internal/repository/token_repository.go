//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/snowflake"
)

// TokenRepository defines the interface for token identity storage. The
// UNIQUE index on (LOWER(name), LOWER(symbol)) over active rows is the
// authoritative uniqueness backstop; Create surfaces violations unmapped so
// the service layer can classify them.
type TokenRepository interface {
	Create(ctx context.Context, token model.Token) (model.Token, error)
	GetByMint(ctx context.Context, mint string) (*model.Token, error)
	FindActiveByNameSymbol(ctx context.Context, name, symbol string) (*model.Token, error)
	List(ctx context.Context, limit, offset int) ([]model.Token, error)
	SetGraduated(ctx context.Context, mint string, graduated bool) error
	MarkVerified(ctx context.Context, mint string) error
	Retire(ctx context.Context, mint string) error
}

type tokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *sql.DB) TokenRepository {
	return &tokenRepository{db: db}
}

const tokenColumns = `id, mint, name, symbol, description, image_url, creator_wallet, graduated, verified, retired, created_at, updated_at`

// Create inserts a new token registration.
func (r *tokenRepository) Create(ctx context.Context, token model.Token) (model.Token, error) {
	if token.ID == 0 {
		token.ID = snowflake.NextID()
	}
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, mint, name, symbol, description, image_url, creator_wallet, graduated, verified, retired, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, token.ID, token.Mint, token.Name, token.Symbol, nullableString(token.Description), nullableString(token.ImageURL),
		token.CreatorWallet, boolToInt(token.Graduated), boolToInt(token.Verified), boolToInt(token.Retired), nowStr, nowStr)
	if err != nil {
		return model.Token{}, err
	}

	token.CreatedAt = now
	token.UpdatedAt = now
	return token, nil
}

// GetByMint retrieves a token by its mint address.
func (r *tokenRepository) GetByMint(ctx context.Context, mint string) (*model.Token, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tokenColumns+` FROM tokens WHERE mint = ?
	`, mint)
	return scanToken(row)
}

// FindActiveByNameSymbol retrieves the active (non-retired) registration
// matching the given name, and symbol when one is provided. Matching is
// case-insensitive on both fields. An empty symbol switches to name-only
// matching for older callers.
func (r *tokenRepository) FindActiveByNameSymbol(ctx context.Context, name, symbol string) (*model.Token, error) {
	if symbol == "" {
		row := r.db.QueryRowContext(ctx, `
			SELECT `+tokenColumns+` FROM tokens
			WHERE retired = 0 AND LOWER(name) = LOWER(?)
			LIMIT 1
		`, name)
		return scanToken(row)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+tokenColumns+` FROM tokens
		WHERE retired = 0 AND LOWER(name) = LOWER(?) AND LOWER(symbol) = LOWER(?)
		LIMIT 1
	`, name, symbol)
	return scanToken(row)
}

// List retrieves tokens ordered by newest first.
func (r *tokenRepository) List(ctx context.Context, limit, offset int) ([]model.Token, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tokenColumns+` FROM tokens
		WHERE retired = 0
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []model.Token
	for rows.Next() {
		token, err := scanTokenRow(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, *token)
	}
	return tokens, rows.Err()
}

// SetGraduated updates the graduation flag for a token.
func (r *tokenRepository) SetGraduated(ctx context.Context, mint string, graduated bool) error {
	return r.updateFlag(ctx, `UPDATE tokens SET graduated = ?, updated_at = ? WHERE mint = ?`, boolToInt(graduated), mint)
}

// MarkVerified records that downstream verification confirmed the token.
func (r *tokenRepository) MarkVerified(ctx context.Context, mint string) error {
	return r.updateFlag(ctx, `UPDATE tokens SET verified = ?, updated_at = ? WHERE mint = ?`, 1, mint)
}

// Retire removes a token from active listings and collision matching.
func (r *tokenRepository) Retire(ctx context.Context, mint string) error {
	return r.updateFlag(ctx, `UPDATE tokens SET retired = ?, updated_at = ? WHERE mint = ?`, 1, mint)
}

func (r *tokenRepository) updateFlag(ctx context.Context, query string, flag int, mint string) error {
	now := formatTime(time.Now())
	result, err := r.db.ExecContext(ctx, query, flag, now, mint)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanToken(row *sql.Row) (*model.Token, error) {
	token, err := scanTokenRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func scanTokenRow(row rowScanner) (*model.Token, error) {
	var t model.Token
	var description, imageURL sql.NullString
	var graduated, verified, retired int
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Mint, &t.Name, &t.Symbol, &description, &imageURL, &t.CreatorWallet,
		&graduated, &verified, &retired, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		t.Description = &description.String
	}
	if imageURL.Valid {
		t.ImageURL = &imageURL.String
	}
	t.Graduated = graduated != 0
	t.Verified = verified != 0
	t.Retired = retired != 0
	t.CreatedAt, _ = parseTime(createdAt)
	t.UpdatedAt, _ = parseTime(updatedAt)
	return &t, nil
}
