package transaction

import (
	"context"

	"custodia/internal/models"
)

// Service is the posting engine. It decides whether a movement auto-approves
// or waits for a human, applies the balance deltas through the matching
// strategy, and persists wallet and transaction as one atomic unit.
type Service interface {
	Deposit(ctx context.Context, req DepositRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*models.Transaction, error)
	// ApproveOrDeny moves a PENDING transaction to its terminal status and
	// applies the deferred balance delta. Terminal transactions cannot be
	// re-decided.
	ApproveOrDeny(ctx context.Context, transactionID uint, status string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, walletID uint) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, transactionID uint) (*models.Transaction, error)
}

// CacheInvalidator drops a wallet's cached read copy after a posting
// changed its balances. nil disables invalidation.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, walletID uint) error
}
