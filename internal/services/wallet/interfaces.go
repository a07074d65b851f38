package wallet

import (
	"context"

	"custodia/internal/models"
)

// Service manages wallet lifecycle and guards every access with the policy.
type Service interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*models.Wallet, error)
	ListWallets(ctx context.Context, filter ListFilter) ([]*models.Wallet, error)
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	UpdateSettings(ctx context.Context, walletID uint, req SettingsRequest) (*models.Wallet, error)

	// RequireWalletAccess loads the wallet from the database (never the
	// cache, the posting engine needs the current version) and verifies the
	// caller may act on it.
	RequireWalletAccess(ctx context.Context, walletID uint) (*models.Wallet, error)
}
