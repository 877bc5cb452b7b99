package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wdthirty/solana-launchpad-sub004/internal/db"
	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/snowflake"
)

// snowflakeOnce ensures snowflake is initialized once across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once, so panic instead
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode allows concurrent access to the in-memory database;
	// a per-test name avoids cross-test collisions.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedToken inserts a test token and returns its ID. CreatedAt defaults to
// now when unset so deterrence-window tests can backdate registrations.
func SeedToken(t *testing.T, db *sql.DB, token model.Token) int64 {
	t.Helper()

	if token.ID == 0 {
		token.ID = snowflake.NextID()
	}
	if token.Mint == "" {
		token.Mint = fmt.Sprintf("mint-%d", token.ID)
	}
	if token.CreatorWallet == "" {
		token.CreatorWallet = "test-wallet"
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}
	if token.UpdatedAt.IsZero() {
		token.UpdatedAt = token.CreatedAt
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO tokens (id, mint, name, symbol, description, image_url, creator_wallet, graduated, verified, retired, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		token.ID, token.Mint, token.Name, token.Symbol, ptrVal(token.Description), ptrVal(token.ImageURL),
		token.CreatorWallet, boolToInt(token.Graduated), boolToInt(token.Verified), boolToInt(token.Retired),
		token.CreatedAt.UTC().Format(time.RFC3339Nano), token.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}

	return token.ID
}

// SeedComment inserts a test comment and returns its ID.
func SeedComment(t *testing.T, db *sql.DB, comment model.Comment) int64 {
	t.Helper()

	if comment.ID == 0 {
		comment.ID = snowflake.NextID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO comments (id, token_id, wallet, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.TokenID, comment.Wallet, comment.Content,
		comment.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}

	return comment.ID
}
