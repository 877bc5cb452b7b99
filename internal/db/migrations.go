package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS tokens (
  id INTEGER PRIMARY KEY,
  mint TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  symbol TEXT NOT NULL,
  description TEXT,
  image_url TEXT,
  creator_wallet TEXT NOT NULL,
  graduated INTEGER NOT NULL DEFAULT 0,
  verified INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_tokens_identity ON tokens(LOWER(name), LOWER(symbol));
CREATE INDEX IF NOT EXISTS idx_tokens_creator ON tokens(creator_wallet);

CREATE TABLE IF NOT EXISTS comments (
  id INTEGER PRIMARY KEY,
  token_id INTEGER NOT NULL,
  wallet TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (token_id) REFERENCES tokens(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_comments_token_id ON comments(token_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add retired column to tokens so delisted identities stop
	// blocking new registrations without losing history
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('tokens') WHERE name = 'retired'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check retired column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE tokens ADD COLUMN retired INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add retired column: %w", err)
		}
	}

	// A retired identity must not collide with a later re-registration, so
	// the uniqueness constraint only covers active rows.
	if _, err := db.Exec(`DROP INDEX IF EXISTS idx_tokens_identity`); err != nil {
		return fmt.Errorf("drop idx_tokens_identity: %w", err)
	}
	if _, err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tokens_identity_active
		ON tokens(LOWER(name), LOWER(symbol)) WHERE retired = 0
	`); err != nil {
		return fmt.Errorf("create idx_tokens_identity_active: %w", err)
	}

	// Migration 2: Index for the verification write-back path
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tokens_verified ON tokens(verified)`); err != nil {
		return fmt.Errorf("create idx_tokens_verified: %w", err)
	}

	return nil
}
