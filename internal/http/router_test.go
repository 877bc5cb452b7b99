package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wdthirty/solana-launchpad-sub004/internal/handler"
	gh "github.com/wdthirty/solana-launchpad-sub004/internal/http"
	"github.com/wdthirty/solana-launchpad-sub004/internal/ratelimit"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service/mock"
)

func TestNewRouter_RegistersRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := mock.NewMockTokenService(ctrl)
	verificationService := mock.NewMockVerificationService(ctrl)
	commentService := mock.NewMockCommentService(ctrl)
	authService := mock.NewMockAuthService(ctrl)

	tokenHandler := handler.NewTokenHandler(tokenService, verificationService)
	commentHandler := handler.NewCommentHandler(commentService)
	authHandler := handler.NewAuthHandler(authService)

	e := gh.NewRouter(
		tokenHandler,
		commentHandler,
		authHandler,
		authService,
		ratelimit.New(10, time.Minute),
		"",
	)

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodPost, "/api/auth/nonce"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/auth/login"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/tokens"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/tokens/:mint"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/tokens"))
	require.True(t, hasRoute(e, http.MethodDelete, "/api/tokens/:mint"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/tokens/:mint/verify"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/verification/depth"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/tokens/:mint/comments"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/tokens/:mint/comments"))
	require.True(t, hasRoute(e, http.MethodDelete, "/api/comments/:id"))
}

func TestNewRouter_MutatingRoutesRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := mock.NewMockTokenService(ctrl)
	verificationService := mock.NewMockVerificationService(ctrl)
	commentService := mock.NewMockCommentService(ctrl)
	authService := mock.NewMockAuthService(ctrl)

	tokenHandler := handler.NewTokenHandler(tokenService, verificationService)
	commentHandler := handler.NewCommentHandler(commentService)
	authHandler := handler.NewAuthHandler(authService)

	e := gh.NewRouter(
		tokenHandler,
		commentHandler,
		authHandler,
		authService,
		ratelimit.New(10, time.Minute),
		"",
	)

	rec := doRequest(e, http.MethodPost, "/api/tokens")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewRouter_RateLimitGatesAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenService := mock.NewMockTokenService(ctrl)
	verificationService := mock.NewMockVerificationService(ctrl)
	commentService := mock.NewMockCommentService(ctrl)
	authService := mock.NewMockAuthService(ctrl)

	tokenService.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	tokenHandler := handler.NewTokenHandler(tokenService, verificationService)
	commentHandler := handler.NewCommentHandler(commentService)
	authHandler := handler.NewAuthHandler(authService)

	e := gh.NewRouter(
		tokenHandler,
		commentHandler,
		authHandler,
		authService,
		ratelimit.New(1, time.Minute),
		"",
	)

	require.Equal(t, http.StatusOK, doRequest(e, http.MethodGet, "/api/tokens").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(e, http.MethodGet, "/api/tokens").Code)
}

func doRequest(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
