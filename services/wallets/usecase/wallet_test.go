package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/wallets/mocks"
)

func seededWallet(id string, status models.WalletStatus) models.Wallet {
	return models.Wallet{
		ID:         id,
		UserID:     "u-1",
		Balance:    1250.50,
		RawBalance: "1250.50",
		Currency:   "EGP",
		Status:     status,
	}
}

func newUC(t *testing.T) (*WalletUC, *mocks.MockWalletGW, *mocks.MockTransactionGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	gw := mocks.NewMockWalletGW(ctrl)
	txGW := mocks.NewMockTransactionGW(ctrl)
	return NewWalletUC(gw, txGW, nil), gw, txGW
}

func TestChangeWalletStatus_LegalTransition(t *testing.T) {
	uc, gw, _ := newUC(t)

	current := seededWallet("wa-1", models.WalletActive)
	gw.EXPECT().Get(gomock.Any(), "wa-1").Return(current, nil)

	updated := current
	updated.Status = models.WalletFrozen
	gw.EXPECT().
		Update(gomock.Any(), "wa-1", map[string]interface{}{
			"id":     "wa-1",
			"status": "frozen",
		}).
		Return(updated, nil)

	got, err := uc.ChangeWalletStatus(context.Background(), "wa-1", models.WalletFrozen)
	require.NoError(t, err)
	assert.Equal(t, models.WalletFrozen, got.Status)
}

func TestChangeWalletStatus_IllegalTransition(t *testing.T) {
	uc, gw, _ := newUC(t)

	// a frozen wallet can only be reactivated
	gw.EXPECT().Get(gomock.Any(), "wa-1").Return(seededWallet("wa-1", models.WalletFrozen), nil)

	_, err := uc.ChangeWalletStatus(context.Background(), "wa-1", models.WalletSuspended)

	require.Error(t, err)
	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}

func TestChangeWalletStatus_SameStatusIsNoop(t *testing.T) {
	uc, gw, _ := newUC(t)

	current := seededWallet("wa-1", models.WalletActive)
	gw.EXPECT().Get(gomock.Any(), "wa-1").Return(current, nil)

	got, err := uc.ChangeWalletStatus(context.Background(), "wa-1", models.WalletActive)
	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestChangeWalletStatus_UnknownStatus(t *testing.T) {
	uc, _, _ := newUC(t)

	_, err := uc.ChangeWalletStatus(context.Background(), "wa-1", "melted")

	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestGetWallet_RequiresID(t *testing.T) {
	uc, _, _ := newUC(t)

	_, err := uc.GetWallet(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}

func TestGetWallet_WithoutCacheHitsUpstream(t *testing.T) {
	uc, gw, _ := newUC(t)

	want := seededWallet("wa-1", models.WalletActive)
	gw.EXPECT().Get(gomock.Any(), "wa-1").Return(want, nil)

	got, err := uc.GetWallet(context.Background(), "wa-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListTransactions_ScopesToWallet(t *testing.T) {
	uc, _, txGW := newUC(t)

	txGW.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q collection.Query) (collection.Page[models.Transaction], error) {
			assert.Equal(t, "wa-1", q.Filters["wallet_id"])
			return collection.Page[models.Transaction]{
				Items: []models.Transaction{{ID: "t-1", WalletID: "wa-1", Amount: 200, Type: models.TransactionTopup}},
				Total: 1,
			}, nil
		})

	snap, err := uc.ListTransactions(context.Background(), "wa-1", collection.Query{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "t-1", snap.Items[0].ID)
}

func TestExportWallets_UsesRawBalance(t *testing.T) {
	uc, gw, _ := newUC(t)

	gw.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(collection.Page[models.Wallet]{
			Items: []models.Wallet{seededWallet("wa-1", models.WalletActive)},
			Total: 1,
		}, nil)

	_, err := uc.ListWallets(context.Background(), collection.Query{Page: 1, PageSize: 20})
	require.NoError(t, err)

	_, rows, err := uc.ExportWallets(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1250.50", rows[0][2])
}
