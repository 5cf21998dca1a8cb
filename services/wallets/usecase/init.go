package usecase

import (
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/database"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/wallets"
)

// balanceTTL bounds how stale a cached wallet snapshot may get
const balanceTTL = 30 * time.Second

// WalletUC implements the wallet admin usecase: one controller for the
// wallet collection, one for the ledger, and a redis cache for single-wallet
// reads. The cache is optional; a nil client disables it.
type WalletUC struct {
	gw      wallets.WalletGW
	ctrl    *collection.Controller[models.Wallet]
	txnCtrl *collection.Controller[models.Transaction]
	cache   *database.RedisClient
}

// NewWalletUC creates a wallet usecase
func NewWalletUC(gw wallets.WalletGW, txGW wallets.TransactionGW, cache *database.RedisClient) *WalletUC {
	ctrl := collection.New(collection.Config[models.Wallet]{
		Gateway: gw,
		DefaultFilters: map[string]string{
			"status": "all",
			"search": "",
		},
	})

	txnCtrl := collection.New(collection.Config[models.Transaction]{
		Gateway: txGW,
		DefaultFilters: map[string]string{
			"wallet_id": "",
			"type":      "all",
			"status":    "all",
		},
	})

	return &WalletUC{
		gw:      gw,
		ctrl:    ctrl,
		txnCtrl: txnCtrl,
		cache:   cache,
	}
}
