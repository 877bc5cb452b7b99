//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/repository"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/sanitizer"
)

const maxCommentLength = 500

// CommentService handles token page discussion.
type CommentService interface {
	Add(ctx context.Context, mint, wallet, content string) (model.Comment, error)
	ListByMint(ctx context.Context, mint string, limit, offset int) ([]model.Comment, error)
	Delete(ctx context.Context, id int64, wallet string) error
}

type commentService struct {
	comments repository.CommentRepository
	tokens   repository.TokenRepository
}

// NewCommentService creates a comment service.
func NewCommentService(comments repository.CommentRepository, tokens repository.TokenRepository) CommentService {
	return &commentService{comments: comments, tokens: tokens}
}

// Add posts a comment on a token page. Content is reduced to plain text
// before persisting.
func (s *commentService) Add(ctx context.Context, mint, wallet, content string) (model.Comment, error) {
	content = sanitizer.SanitizeComment(content)
	if content == "" || utf8.RuneCountInString(content) > maxCommentLength {
		return model.Comment{}, ErrInvalid
	}
	if wallet == "" {
		return model.Comment{}, ErrInvalid
	}

	token, err := s.tokens.GetByMint(ctx, strings.TrimSpace(mint))
	if err != nil {
		return model.Comment{}, fmt.Errorf("get token: %w", err)
	}
	if token == nil {
		return model.Comment{}, ErrNotFound
	}

	created, err := s.comments.Create(ctx, model.Comment{
		TokenID: token.ID,
		Wallet:  wallet,
		Content: content,
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// ListByMint returns comments for a token page, newest first.
func (s *commentService) ListByMint(ctx context.Context, mint string, limit, offset int) ([]model.Comment, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	token, err := s.tokens.GetByMint(ctx, strings.TrimSpace(mint))
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}
	if token == nil {
		return nil, ErrNotFound
	}

	return s.comments.ListByToken(ctx, token.ID, limit, offset)
}

// Delete removes the caller's own comment.
func (s *commentService) Delete(ctx context.Context, id int64, wallet string) error {
	if err := s.comments.Delete(ctx, id, wallet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
