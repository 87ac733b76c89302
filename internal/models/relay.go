package models

import "context"

type RelayI interface {
	// ListWallets returns every registered wallet ordered by id.
	ListWallets(ctx context.Context) ([]*Wallet, error)
	// CreateWallet validates and stores a new wallet and returns it with its id.
	CreateWallet(ctx context.Context, wallet *Wallet) (*Wallet, error)
	// UpdateWallet applies a partial update to the wallet with the given id.
	UpdateWallet(ctx context.Context, id uint, patch *WalletPatch) (*Wallet, error)
	DeleteWallet(ctx context.Context, id uint) error
	// FindByAddress returns nil and no error when the address is not registered.
	FindByAddress(ctx context.Context, address string) (*Wallet, error)

	// HandleDeposit validates a deposit event and notifies the owning wallet.
	HandleDeposit(ctx context.Context, event *DepositEvent) (DepositOutcome, error)
	// AssetSymbol is the ticker of the monitored token contract.
	AssetSymbol() string

	// SetupAdmin creates or resets the admin user when key matches the
	// configured setup key. It reports the admin username and whether the
	// user was created.
	SetupAdmin(ctx context.Context, key string) (string, bool, error)
	// Login checks the credentials and issues a bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate verifies a bearer token and returns its subject.
	Authenticate(token string) (string, error)
}
