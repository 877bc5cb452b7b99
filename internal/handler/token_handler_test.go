package handler_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wdthirty/solana-launchpad-sub004/internal/handler"
	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service/mock"
)

func testAddr(b byte) string {
	return base58.Encode(bytes.Repeat([]byte{b}, 32))
}

func TestTokenHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	wallet := testAddr(2)
	now := time.Now()

	tokens.EXPECT().Create(gomock.Any(), service.CreateTokenInput{
		Mint:          testAddr(1),
		Name:          "Moon Cat",
		Symbol:        "MCAT",
		CreatorWallet: wallet,
	}).Return(model.Token{
		ID:            7,
		Mint:          testAddr(1),
		Name:          "Moon Cat",
		Symbol:        "MCAT",
		CreatorWallet: wallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/tokens", map[string]string{
		"mint":   testAddr(1),
		"name":   "Moon Cat",
		"symbol": "MCAT",
	})
	c, rec := newTestContext(e, req)
	c.Set(handler.WalletContextKey, wallet)

	require.NoError(t, h.Create(c))

	var resp handler.TokenResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, int64(7), resp.ID)
	require.Equal(t, "MCAT", resp.Symbol)
	require.Equal(t, wallet, resp.CreatorWallet)
}

func TestTokenHandler_Create_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPost, "/api/tokens", "{not json")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenHandler_Create_IdentityLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	tokens.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(model.Token{}, &service.IdentityLockedError{
			State: service.LockState{Kind: service.LockedRecent, Remaining: 2 * time.Minute},
		})

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/tokens", map[string]string{
		"mint": testAddr(1), "name": "Moon Cat", "symbol": "MCAT",
	})
	c, rec := newTestContext(e, req)
	c.Set(handler.WalletContextKey, testAddr(2))

	require.NoError(t, h.Create(c))

	var resp handler.LockedResponse
	assertJSONResponse(t, rec, http.StatusConflict, &resp)
	require.Equal(t, "locked_recent", resp.Lock)
	require.Equal(t, int64(120), resp.RetryAfter)
}

func TestTokenHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	tokens.EXPECT().GetByMint(gomock.Any(), testAddr(1)).
		Return(model.Token{ID: 7, Mint: testAddr(1), Name: "Moon Cat"}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/tokens/"+testAddr(1), nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"mint": testAddr(1)})

	require.NoError(t, h.Get(c))

	var resp handler.TokenResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "Moon Cat", resp.Name)
}

func TestTokenHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	tokens.EXPECT().GetByMint(gomock.Any(), testAddr(1)).
		Return(model.Token{}, service.ErrNotFound)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/tokens/"+testAddr(1), nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"mint": testAddr(1)})

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTokenHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	tokens.EXPECT().List(gomock.Any(), 2, 4).
		Return([]model.Token{{ID: 1}, {ID: 2}}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/tokens?limit=2&offset=4", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.List(c))

	var resp []handler.TokenResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
}

func TestTokenHandler_Retire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	wallet := testAddr(2)
	tokens.EXPECT().Retire(gomock.Any(), testAddr(1), wallet).Return(nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/tokens/"+testAddr(1), nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"mint": testAddr(1)})
	c.Set(handler.WalletContextKey, wallet)

	require.NoError(t, h.Retire(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTokenHandler_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	verifications.EXPECT().Enqueue(gomock.Any(), testAddr(1)).
		Return(service.OutcomeEnqueued, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/tokens/"+testAddr(1)+"/verify", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"mint": testAddr(1)})

	require.NoError(t, h.Verify(c))

	var resp handler.VerifyResponse
	assertJSONResponse(t, rec, http.StatusAccepted, &resp)
	require.Equal(t, string(service.OutcomeEnqueued), resp.Outcome)
}

func TestTokenHandler_Verify_AlreadyQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	verifications.EXPECT().Enqueue(gomock.Any(), testAddr(1)).
		Return(service.OutcomeAlreadyQueued, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/tokens/"+testAddr(1)+"/verify", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"mint": testAddr(1)})

	require.NoError(t, h.Verify(c))

	var resp handler.VerifyResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, string(service.OutcomeAlreadyQueued), resp.Outcome)
}

func TestTokenHandler_QueueDepth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	verifications.EXPECT().Depth(gomock.Any()).Return(int64(17), nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/verification/depth", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.QueueDepth(c))

	var resp handler.QueueDepthResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, int64(17), resp.Depth)
}

func TestTokenHandler_QueueDepth_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	verifications := mock.NewMockVerificationService(ctrl)
	h := handler.NewTokenHandler(tokens, verifications)

	verifications.EXPECT().Depth(gomock.Any()).Return(int64(0), service.ErrUnavailable)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/verification/depth", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.QueueDepth(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
