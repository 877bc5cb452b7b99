package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

type nonceRequest struct {
	Wallet string `json:"wallet"`
}

type nonceResponse struct {
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

type loginRequest struct {
	Wallet    string `json:"wallet"`
	Signature string `json:"signature"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/nonce", h.Nonce)
	g.POST("/auth/login", h.Login)
}

// Nonce issues a challenge for the wallet to sign.
func (h *AuthHandler) Nonce(c echo.Context) error {
	var req nonceRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	nonce, err := h.auth.Nonce(c.Request().Context(), req.Wallet)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, nonceResponse{
		Nonce:   nonce,
		Message: service.LoginMessage(nonce),
	})
}

// Login exchanges a signed challenge for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Wallet, req.Signature)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
