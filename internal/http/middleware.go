package http

import (
	"net"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wdthirty/solana-launchpad-sub004/internal/handler"
	"github.com/wdthirty/solana-launchpad-sub004/internal/ratelimit"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
	"github.com/wdthirty/solana-launchpad-sub004/pkg/logger"
)

// AuthCookieName is the fallback session cookie for clients that cannot set
// an Authorization header.
const AuthCookieName = "launchpad_session"

// JWTAuthMiddleware requires a valid session token and stores the caller's
// wallet on the context.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}

			wallet, err := auth.ValidateToken(token)
			if err != nil {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}

			c.Set(handler.WalletContextKey, wallet)
			return next(c)
		}
	}
}

// RateLimitMiddleware gates requests per client key. A limiter failure
// admits the request: rejecting live traffic on a broken limiter is worse
// than briefly losing the gate.
func RateLimitMiddleware(checker ratelimit.Checker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := clientKey(c.Request())

			decision, err := checker.Check(key)
			if err != nil {
				logger.Warn("rate limit check failed, admitting request", "key", key, "error", err)
				return next(c)
			}
			if !decision.Allowed {
				c.Response().Header().Set("Retry-After", retryAfter(decision.ResetAt))
				return handler.Error(c, nethttp.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}

// clientKey identifies the caller for rate limiting. The first
// X-Forwarded-For entry wins when the service sits behind a proxy;
// otherwise the remote address. A request with neither still gets limited
// under a shared key rather than bypassing the gate.
func clientKey(r *nethttp.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func retryAfter(resetAt time.Time) string {
	seconds := int64(time.Until(resetAt).Seconds()) + 1
	if seconds < 1 {
		seconds = 1
	}
	return strconv.FormatInt(seconds, 10)
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
