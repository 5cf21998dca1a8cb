package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/logger"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
)

func balanceKey(id string) string {
	return "wallet:balance:" + id
}

// ListWallets applies the requested pagination/filter state and returns the
// resulting snapshot
func (uc *WalletUC) ListWallets(ctx context.Context, q collection.Query) (collection.Snapshot[models.Wallet], error) {
	err := uc.ctrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.ctrl.Snapshot(), err
}

// GetWallet fetches one wallet, serving from the redis snapshot cache when
// it is fresh. Cache failures degrade to an upstream read.
func (uc *WalletUC) GetWallet(ctx context.Context, id string) (models.Wallet, error) {
	if id == "" {
		return models.Wallet{}, apierr.New(apierr.KindPrecondition, "wallet id is required")
	}

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, balanceKey(id)); err == nil && raw != "" {
			var w models.Wallet
			if err := json.Unmarshal([]byte(raw), &w); err == nil {
				return w, nil
			}
		}
	}

	w, err := uc.gw.Get(ctx, id)
	if err != nil {
		return models.Wallet{}, err
	}
	uc.cacheWallet(ctx, w)
	return w, nil
}

func (uc *WalletUC) cacheWallet(ctx context.Context, w models.Wallet) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, balanceKey(w.ID), raw, balanceTTL); err != nil {
		logger.Warn("failed to cache wallet snapshot",
			logger.String("wallet_id", w.ID),
			logger.Err(err))
	}
}

// ChangeWalletStatus moves a wallet to a new administrative status after
// checking the transition table, then drops the cached snapshot
func (uc *WalletUC) ChangeWalletStatus(ctx context.Context, id string, to models.WalletStatus) (models.Wallet, error) {
	switch to {
	case models.WalletActive, models.WalletInactive, models.WalletSuspended, models.WalletFrozen:
	default:
		return models.Wallet{}, apierr.Validation(map[string]string{
			"status": "status must be active, inactive, suspended or frozen",
		})
	}

	current, err := uc.currentWallet(ctx, id)
	if err != nil {
		return models.Wallet{}, err
	}
	if current.Status == to {
		return current, nil
	}
	if !models.CanChangeWalletStatus(current.Status, to) {
		return models.Wallet{}, apierr.New(apierr.KindPrecondition,
			fmt.Sprintf("wallet status cannot change from %s to %s", current.Status, to))
	}

	updated, err := uc.ctrl.Update(ctx, id, map[string]interface{}{
		"id":     id,
		"status": string(to),
	})
	if err != nil {
		return models.Wallet{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, balanceKey(id)); err != nil {
			logger.Warn("failed to invalidate wallet cache",
				logger.String("wallet_id", id),
				logger.Err(err))
		}
	}
	return updated, nil
}

func (uc *WalletUC) currentWallet(ctx context.Context, id string) (models.Wallet, error) {
	if id == "" {
		return models.Wallet{}, apierr.New(apierr.KindPrecondition, "wallet id is required")
	}
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return uc.gw.Get(ctx, id)
}

// ListTransactions pages through the ledger, scoped to one wallet when
// walletID is non-empty
func (uc *WalletUC) ListTransactions(ctx context.Context, walletID string, q collection.Query) (collection.Snapshot[models.Transaction], error) {
	if q.Filters == nil {
		q.Filters = map[string]string{}
	}
	q.Filters["wallet_id"] = walletID

	err := uc.txnCtrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.txnCtrl.Snapshot(), err
}

// SelectAllWallets selects or clears every loaded id and returns the
// selection
func (uc *WalletUC) SelectAllWallets(checked bool) []string {
	uc.ctrl.SelectAll(checked)
	return uc.ctrl.Selected()
}

// ToggleWallet flips one id in the selection and returns the selection
func (uc *WalletUC) ToggleWallet(id string) []string {
	uc.ctrl.ToggleSelect(id)
	return uc.ctrl.Selected()
}

// ExportWallets flattens the currently loaded, filtered list for CSV
// download. The raw balance string goes out untouched so the export
// round-trips what the upstream said.
func (uc *WalletUC) ExportWallets(ctx context.Context) ([]string, [][]string, error) {
	snap := uc.ctrl.Snapshot()
	if snap.Err != nil {
		return nil, nil, snap.Err
	}

	header := []string{"id", "user_id", "balance", "currency", "status", "created_at"}
	rows := make([][]string, 0, len(snap.Items))
	for _, w := range snap.Items {
		rows = append(rows, []string{
			w.ID,
			w.UserID,
			w.RawBalance,
			w.Currency,
			string(w.Status),
			utils.FormatTime(w.CreatedAt),
		})
	}
	return header, rows, nil
}
