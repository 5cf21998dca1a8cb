package gateway

import (
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
)

// WalletGW talks to the marketplace API for wallets
type WalletGW struct {
	api *httpclient.Client
}

// NewWalletGW creates a wallet gateway
func NewWalletGW(api *httpclient.Client) *WalletGW {
	return &WalletGW{api: api}
}

// TransactionGW lists the wallet ledger
type TransactionGW struct {
	api *httpclient.Client
}

// NewTransactionGW creates a transaction gateway
func NewTransactionGW(api *httpclient.Client) *TransactionGW {
	return &TransactionGW{api: api}
}
