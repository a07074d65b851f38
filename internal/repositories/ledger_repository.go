package repositories

import (
	"errors"

	"custodia/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrWalletConflict means the wallet row changed under us (stale version).
	// The whole operation must be retried from a fresh read.
	ErrWalletConflict = errors.New("wallet was modified concurrently")
)

// LedgerRepository is the persistence boundary of the posting engine. Wallet
// and transaction writes that belong to one posting must run inside
// ExecuteInTransaction so they commit or roll back together.
type LedgerRepository interface {
	// Wallet operations
	CreateWallet(wallet *models.Wallet) error
	GetWalletByID(id uint) (*models.Wallet, error)
	GetWalletsByCustomer(customerID uint, currency string) ([]*models.Wallet, error)
	GetAllWallets() ([]*models.Wallet, error)
	// UpdateWallet performs a compare-and-swap on the wallet version and
	// returns ErrWalletConflict when the row was updated concurrently.
	UpdateWallet(wallet *models.Wallet) error

	// Transaction operations
	CreateTransaction(tx *models.Transaction) error
	GetTransactionByID(id uint) (*models.Transaction, error)
	// GetTransactionsByWallet returns transactions newest first.
	GetTransactionsByWallet(walletID uint) ([]*models.Transaction, error)
	UpdateTransaction(tx *models.Transaction) error

	// ExecuteInTransaction runs fn against a repository bound to a single
	// database transaction.
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
