package wallets

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karhabty/admin-gateway/services/wallets WalletUC

// WalletUC represents the wallet admin usecase interface. Wallets are never
// created or deleted from the dashboard; the only mutation is a validated
// status change. Transactions are an immutable ledger, list only.
type WalletUC interface {
	ListWallets(ctx context.Context, q collection.Query) (collection.Snapshot[models.Wallet], error)
	GetWallet(ctx context.Context, id string) (models.Wallet, error)
	ChangeWalletStatus(ctx context.Context, id string, to models.WalletStatus) (models.Wallet, error)

	ListTransactions(ctx context.Context, walletID string, q collection.Query) (collection.Snapshot[models.Transaction], error)

	SelectAllWallets(checked bool) []string
	ToggleWallet(id string) []string

	ExportWallets(ctx context.Context) (header []string, rows [][]string, err error)
}
