package models

import (
	"time"
)

// WalletStatus is the administrative state of a wallet
type WalletStatus string

const (
	WalletActive    WalletStatus = "active"
	WalletInactive  WalletStatus = "inactive"
	WalletSuspended WalletStatus = "suspended"
	WalletFrozen    WalletStatus = "frozen"
)

// walletTransitions lists the allowed admin status changes. Freezing is only
// allowed from active or suspended; a frozen wallet can only be reactivated.
var walletTransitions = map[WalletStatus][]WalletStatus{
	WalletActive:    {WalletInactive, WalletSuspended, WalletFrozen},
	WalletInactive:  {WalletActive},
	WalletSuspended: {WalletActive, WalletFrozen},
	WalletFrozen:    {WalletActive},
}

// CanChangeWalletStatus reports whether an admin may move a wallet from one
// status to another.
func CanChangeWalletStatus(from, to WalletStatus) bool {
	for _, next := range walletTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Wallet belongs to exactly one workshop-admin user. The upstream API
// serializes the balance as a decimal string; RawBalance preserves it so the
// value round-trips without float formatting drift.
type Wallet struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	Balance    float64      `json:"balance"`
	RawBalance string       `json:"raw_balance"`
	Currency   string       `json:"currency"`
	Status     WalletStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TransactionType classifies ledger entries
type TransactionType string

const (
	TransactionTopup      TransactionType = "topup"
	TransactionPayment    TransactionType = "payment"
	TransactionRefund     TransactionType = "refund"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
	TransactionExpired   TransactionStatus = "expired"
)

// Transaction is an immutable ledger entry against a wallet. The admin
// dashboard only ever lists these; there are no mutations.
type Transaction struct {
	ID           string            `json:"id"`
	WalletID     string            `json:"wallet_id"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Type         TransactionType   `json:"type"`
	Status       TransactionStatus `json:"status"`
	GatewayOrder string            `json:"gateway_order_id,omitempty"`
	GatewayTxn   string            `json:"gateway_transaction_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
