package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
)

// WalletContextKey is where auth middleware stores the caller's wallet.
const WalletContextKey = "wallet"

type TokenHandler struct {
	tokens        service.TokenService
	verifications service.VerificationService
}

type createTokenRequest struct {
	Mint        string  `json:"mint"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type tokenResponse struct {
	ID            int64   `json:"id"`
	Mint          string  `json:"mint"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Description   *string `json:"description,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	CreatorWallet string  `json:"creatorWallet"`
	Graduated     bool    `json:"graduated"`
	Verified      bool    `json:"verified"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type verifyResponse struct {
	Outcome string `json:"outcome"`
}

type queueDepthResponse struct {
	Depth int64 `json:"depth"`
}

func NewTokenHandler(tokens service.TokenService, verifications service.VerificationService) *TokenHandler {
	return &TokenHandler{tokens: tokens, verifications: verifications}
}

// RegisterRoutes registers the public token routes.
func (h *TokenHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tokens", h.List)
	g.GET("/tokens/:mint", h.Get)
	g.GET("/verification/depth", h.QueueDepth)
}

// RegisterAuthedRoutes registers routes that require a wallet session.
func (h *TokenHandler) RegisterAuthedRoutes(g *echo.Group) {
	g.POST("/tokens", h.Create)
	g.DELETE("/tokens/:mint", h.Retire)
	g.POST("/tokens/:mint/verify", h.Verify)
}

func (h *TokenHandler) Create(c echo.Context) error {
	var req createTokenRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	created, err := h.tokens.Create(c.Request().Context(), service.CreateTokenInput{
		Mint:          req.Mint,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CreatorWallet: walletFromContext(c),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTokenResponse(created))
}

func (h *TokenHandler) Get(c echo.Context) error {
	token, err := h.tokens.GetByMint(c.Request().Context(), c.Param("mint"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTokenResponse(token))
}

func (h *TokenHandler) List(c echo.Context) error {
	limit := queryInt(c, "limit")
	offset := queryInt(c, "offset")

	tokens, err := h.tokens.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]tokenResponse, 0, len(tokens))
	for _, token := range tokens {
		response = append(response, toTokenResponse(token))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *TokenHandler) Retire(c echo.Context) error {
	err := h.tokens.Retire(c.Request().Context(), c.Param("mint"), walletFromContext(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TokenHandler) Verify(c echo.Context) error {
	outcome, err := h.verifications.Enqueue(c.Request().Context(), c.Param("mint"))
	if err != nil {
		return writeServiceError(c, err)
	}
	status := http.StatusAccepted
	if outcome != service.OutcomeEnqueued {
		status = http.StatusOK
	}
	return c.JSON(status, verifyResponse{Outcome: string(outcome)})
}

func (h *TokenHandler) QueueDepth(c echo.Context) error {
	depth, err := h.verifications.Depth(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, queueDepthResponse{Depth: depth})
}

func toTokenResponse(token model.Token) tokenResponse {
	return tokenResponse{
		ID:            token.ID,
		Mint:          token.Mint,
		Name:          token.Name,
		Symbol:        token.Symbol,
		Description:   token.Description,
		ImageURL:      token.ImageURL,
		CreatorWallet: token.CreatorWallet,
		Graduated:     token.Graduated,
		Verified:      token.Verified,
		CreatedAt:     token.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     token.UpdatedAt.Format(time.RFC3339),
	}
}

func walletFromContext(c echo.Context) string {
	wallet, _ := c.Get(WalletContextKey).(string)
	return wallet
}

func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
