package wallets

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/karhabty/admin-gateway/services/wallets WalletGW,TransactionGW

// WalletGW defines the upstream calls for wallets. Create and Delete exist
// only to satisfy the collection gateway shape; both are rejected, the
// upstream owns the wallet lifecycle.
type WalletGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.Wallet], error)
	Get(ctx context.Context, id string) (models.Wallet, error)
	Create(ctx context.Context, input models.Wallet) (models.Wallet, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.Wallet, error)
	Delete(ctx context.Context, id string) error
}

// TransactionGW lists ledger entries. Mutations are rejected: the ledger is
// immutable.
type TransactionGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.Transaction], error)
	Create(ctx context.Context, input models.Transaction) (models.Transaction, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.Transaction, error)
	Delete(ctx context.Context, id string) error
}
