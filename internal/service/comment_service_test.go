package service_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wdthirty/solana-launchpad-sub004/internal/model"
	"github.com/wdthirty/solana-launchpad-sub004/internal/repository/mock"
	"github.com/wdthirty/solana-launchpad-sub004/internal/service"
)

func TestCommentService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	tokens.EXPECT().GetByMint(gomock.Any(), testAddr(1)).
		Return(&model.Token{ID: 7, Mint: testAddr(1)}, nil)
	comments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c model.Comment) (model.Comment, error) {
			require.Equal(t, int64(7), c.TokenID)
			require.Equal(t, "gm, great token", c.Content)
			c.ID = 42
			return c, nil
		})

	created, err := svc.Add(context.Background(), testAddr(1), testAddr(2), "<script>alert(1)</script>gm, great token")
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
}

func TestCommentService_Add_EmptyAfterSanitize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	_, err := svc.Add(context.Background(), testAddr(1), testAddr(2), "<b></b>   ")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestCommentService_Add_TooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	_, err := svc.Add(context.Background(), testAddr(1), testAddr(2), strings.Repeat("a", 501))
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestCommentService_Add_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	tokens.EXPECT().GetByMint(gomock.Any(), testAddr(1)).Return(nil, nil)

	_, err := svc.Add(context.Background(), testAddr(1), testAddr(2), "gm")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentService_ListByMint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	tokens.EXPECT().GetByMint(gomock.Any(), testAddr(1)).
		Return(&model.Token{ID: 7, Mint: testAddr(1)}, nil)
	comments.EXPECT().ListByToken(gomock.Any(), int64(7), 50, 0).
		Return([]model.Comment{{ID: 1}, {ID: 2}}, nil)

	list, err := svc.ListByMint(context.Background(), testAddr(1), 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestCommentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	comments.EXPECT().Delete(gomock.Any(), int64(42), testAddr(2)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 42, testAddr(2)))
}

func TestCommentService_Delete_NotOwnerOrMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := mock.NewMockCommentRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)
	svc := service.NewCommentService(comments, tokens)

	comments.EXPECT().Delete(gomock.Any(), int64(42), testAddr(9)).Return(sql.ErrNoRows)

	err := svc.Delete(context.Background(), 42, testAddr(9))
	require.ErrorIs(t, err, service.ErrNotFound)
}
