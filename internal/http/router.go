package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wdthirty/solana-launchpad-sub004/internal/handler"
	"github.com/wdthirty/solana-launchpad-sub004/internal/ratelimit"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
)

// NewRouter wires handlers, the admission gate, and static serving into an
// echo instance. The rate limiter fronts the whole API surface; wallet auth
// only guards the mutating routes.
func NewRouter(
	tokenHandler *handler.TokenHandler,
	commentHandler *handler.CommentHandler,
	authHandler *handler.AuthHandler,
	auth service.AuthService,
	limiter ratelimit.Checker,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	api := e.Group("/api", RateLimitMiddleware(limiter))
	authHandler.RegisterRoutes(api)
	tokenHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)

	authed := api.Group("", JWTAuthMiddleware(auth))
	tokenHandler.RegisterAuthedRoutes(authed)
	commentHandler.RegisterAuthedRoutes(authed)

	registerStatic(e, staticDir)

	return e
}
