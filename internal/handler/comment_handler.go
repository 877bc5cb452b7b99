package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
)

type CommentHandler struct {
	comments service.CommentService
}

type createCommentRequest struct {
	Content string `json:"content"`
}

type commentResponse struct {
	ID        int64  `json:"id"`
	TokenID   int64  `json:"tokenId"`
	Wallet    string `json:"wallet"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tokens/:mint/comments", h.List)
}

func (h *CommentHandler) RegisterAuthedRoutes(g *echo.Group) {
	g.POST("/tokens/:mint/comments", h.Create)
	g.DELETE("/comments/:id", h.Delete)
}

func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	created, err := h.comments.Add(c.Request().Context(), c.Param("mint"), walletFromContext(c), req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toCommentResponse(created))
}

func (h *CommentHandler) List(c echo.Context) error {
	limit := queryInt(c, "limit")
	offset := queryInt(c, "offset")

	comments, err := h.comments.ListByMint(c.Request().Context(), c.Param("mint"), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.comments.Delete(c.Request().Context(), id, walletFromContext(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toCommentResponse(comment model.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		TokenID:   comment.TokenID,
		Wallet:    comment.Wallet,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
