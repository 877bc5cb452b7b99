package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// lockedResponse is the conflict body for identity collisions. RetryAfter is
// the whole seconds until a deterrence lock lapses; omitted for permanent
// (graduated) locks.
type lockedResponse struct {
	Error      string `json:"error"`
	Lock       string `json:"lock"`
	RetryAfter int64  `json:"retryAfterSeconds,omitempty"`
}

// writeServiceError maps service-level errors to HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	var locked *service.IdentityLockedError
	if errors.As(err, &locked) {
		return c.JSON(http.StatusConflict, lockedResponse{
			Error:      "identity already taken",
			Lock:       locked.State.Kind.String(),
			RetryAfter: int64(locked.State.Remaining.Seconds()),
		})
	}

	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "service unavailable"})
	default:
		logger.Error("unhandled service error", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error writes a plain error response with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
