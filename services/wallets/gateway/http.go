package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

// walletRecord is the upstream wire shape of a wallet. The balance travels
// as a decimal string; it is parsed exactly once, here.
type walletRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type walletListResponse struct {
	Data  []walletRecord `json:"data"`
	Total int            `json:"total"`
}

type transactionRecord struct {
	ID           string  `json:"id"`
	WalletID     string  `json:"wallet_id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	GatewayOrder string  `json:"gateway_order_id"`
	GatewayTxn   string  `json:"gateway_transaction_id"`
	CreatedAt    string  `json:"created_at"`
}

type transactionListResponse struct {
	Data  []transactionRecord `json:"data"`
	Total int                 `json:"total"`
}

// mapWallet converts an upstream record into the domain entity. A missing id
// or an unparseable balance is a hard failure; money is not a field to guess
// defaults for.
func mapWallet(rec walletRecord) (models.Wallet, error) {
	if rec.ID == "" {
		return models.Wallet{}, apierr.New(apierr.KindDecode, "wallet record missing id")
	}

	balance := 0.0
	if rec.Balance != "" {
		parsed, err := strconv.ParseFloat(rec.Balance, 64)
		if err != nil {
			return models.Wallet{}, apierr.Wrap(apierr.KindDecode,
				fmt.Sprintf("wallet %s has unparseable balance %q", rec.ID, rec.Balance), err)
		}
		balance = parsed
	}

	w := models.Wallet{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Balance:    balance,
		RawBalance: rec.Balance,
		Currency:   rec.Currency,
		Status:     models.WalletStatus(rec.Status),
		CreatedAt:  parseTime(rec.CreatedAt),
		UpdatedAt:  parseTime(rec.UpdatedAt),
	}

	if w.Currency == "" {
		w.Currency = "EGP"
	}
	if w.Status == "" {
		w.Status = models.WalletActive
	}

	return w, nil
}

func mapTransaction(rec transactionRecord) (models.Transaction, error) {
	if rec.ID == "" {
		return models.Transaction{}, apierr.New(apierr.KindDecode, "transaction record missing id")
	}

	t := models.Transaction{
		ID:           rec.ID,
		WalletID:     rec.WalletID,
		Amount:       rec.Amount,
		Currency:     rec.Currency,
		Type:         models.TransactionType(rec.Type),
		Status:       models.TransactionStatus(rec.Status),
		GatewayOrder: rec.GatewayOrder,
		GatewayTxn:   rec.GatewayTxn,
		CreatedAt:    parseTime(rec.CreatedAt),
	}

	if t.Currency == "" {
		t.Currency = "EGP"
	}

	return t, nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// List fetches one page of wallets
func (g *WalletGW) List(ctx context.Context, q collection.Query) (collection.Page[models.Wallet], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp walletListResponse
	if err := g.api.Get(ctx, "/wallets", params.Values(), &resp); err != nil {
		return collection.Page[models.Wallet]{}, err
	}

	items := make([]models.Wallet, 0, len(resp.Data))
	for _, rec := range resp.Data {
		w, err := mapWallet(rec)
		if err != nil {
			return collection.Page[models.Wallet]{}, err
		}
		items = append(items, w)
	}

	return collection.Page[models.Wallet]{Items: items, Total: resp.Total}, nil
}

// Get fetches a single wallet
func (g *WalletGW) Get(ctx context.Context, id string) (models.Wallet, error) {
	var rec walletRecord
	if err := g.api.Get(ctx, "/wallets/"+id, nil, &rec); err != nil {
		return models.Wallet{}, err
	}
	return mapWallet(rec)
}

// Create is rejected: wallets are provisioned by the upstream when a
// workshop admin signs up
func (g *WalletGW) Create(ctx context.Context, input models.Wallet) (models.Wallet, error) {
	return models.Wallet{}, apierr.New(apierr.KindPrecondition,
		"wallets are provisioned by the marketplace, not the dashboard")
}

// Update patches a wallet; the only admin-editable field is the status
func (g *WalletGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.Wallet, error) {
	var rec walletRecord
	if err := g.api.Patch(ctx, "/wallets/"+id, patch, &rec); err != nil {
		return models.Wallet{}, err
	}
	return mapWallet(rec)
}

// Delete is rejected: the ledger behind a wallet must stay auditable
func (g *WalletGW) Delete(ctx context.Context, id string) error {
	return apierr.New(apierr.KindPrecondition, "wallets cannot be deleted")
}

// List fetches one page of ledger entries. A wallet_id filter narrows the
// ledger to one wallet.
func (g *TransactionGW) List(ctx context.Context, q collection.Query) (collection.Page[models.Transaction], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp transactionListResponse
	if err := g.api.Get(ctx, "/wallets/transactions", params.Values(), &resp); err != nil {
		return collection.Page[models.Transaction]{}, err
	}

	items := make([]models.Transaction, 0, len(resp.Data))
	for _, rec := range resp.Data {
		t, err := mapTransaction(rec)
		if err != nil {
			return collection.Page[models.Transaction]{}, err
		}
		items = append(items, t)
	}

	return collection.Page[models.Transaction]{Items: items, Total: resp.Total}, nil
}

// Create is rejected: ledger entries are written by the payment flow only
func (g *TransactionGW) Create(ctx context.Context, input models.Transaction) (models.Transaction, error) {
	return models.Transaction{}, apierr.New(apierr.KindPrecondition, "ledger entries are immutable")
}

// Update is rejected: ledger entries are immutable
func (g *TransactionGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.Transaction, error) {
	return models.Transaction{}, apierr.New(apierr.KindPrecondition, "ledger entries are immutable")
}

// Delete is rejected: ledger entries are immutable
func (g *TransactionGW) Delete(ctx context.Context, id string) error {
	return apierr.New(apierr.KindPrecondition, "ledger entries are immutable")
}
