//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/snowflake"
)

// CommentRepository defines the interface for token discussion storage.
type CommentRepository interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	ListByToken(ctx context.Context, tokenID int64, limit, offset int) ([]model.Comment, error)
	Delete(ctx context.Context, id int64, wallet string) error
}

type commentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	if comment.ID == 0 {
		comment.ID = snowflake.NextID()
	}
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, token_id, wallet, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, comment.ID, comment.TokenID, comment.Wallet, comment.Content, formatTime(now))
	if err != nil {
		return model.Comment{}, err
	}

	comment.CreatedAt = now
	return comment, nil
}

func (r *commentRepository) ListByToken(ctx context.Context, tokenID int64, limit, offset int) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, token_id, wallet, content, created_at FROM comments
		WHERE token_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, tokenID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.TokenID, &c.Wallet, &c.Content, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = parseTime(createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Delete removes a comment, scoped to its author's wallet so one client
// cannot delete another's comments.
func (r *commentRepository) Delete(ctx context.Context, id int64, wallet string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ? AND wallet = ?`, id, wallet)
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
