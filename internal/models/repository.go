package models

import "context"

type Repository interface {
	ListWallets(ctx context.Context) ([]*Wallet, error)
	// GetWalletByAddress returns nil and no error when no wallet owns the address.
	GetWalletByAddress(ctx context.Context, address string) (*Wallet, error)
	// CreateWallet fails with ErrConflict when the address is already registered.
	CreateWallet(ctx context.Context, wallet *Wallet) error
	// UpdateWallet fails with ErrNotFound for an unknown id and with
	// ErrConflict when the patch moves the wallet onto another wallet's address.
	UpdateWallet(ctx context.Context, id uint, patch *WalletPatch) (*Wallet, error)
	DeleteWallet(ctx context.Context, id uint) error

	// GetUser returns nil and no error when the user does not exist.
	GetUser(ctx context.Context, username string) (*User, error)
	// SaveUser creates the user or replaces the password hash of an existing
	// one. It reports whether the user was created.
	SaveUser(ctx context.Context, username, passwordHash string) (bool, error)
}
