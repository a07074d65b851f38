package repositories

import (
	"errors"
	"fmt"
	"time"

	"custodia/internal/models"

	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateWallet(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetWalletByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) GetWalletsByCustomer(customerID uint, currency string) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	q := r.db.Where("customer_id = ?", customerID)
	if currency != "" {
		q = q.Where("currency = ?", currency)
	}
	if err := q.Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets: %w", err)
	}
	return wallets, nil
}

func (r *ledgerRepository) GetAllWallets() ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	if err := r.db.Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets: %w", err)
	}
	return wallets, nil
}

// UpdateWallet writes balances and flags guarded by the wallet version.
// Zero rows affected means another writer got there first.
func (r *ledgerRepository) UpdateWallet(wallet *models.Wallet) error {
	current := wallet.Version
	result := r.db.Model(&models.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, current).
		Updates(map[string]interface{}{
			"balance":             wallet.Balance,
			"usable_balance":      wallet.UsableBalance,
			"active_for_shopping": wallet.ActiveForShopping,
			"active_for_withdraw": wallet.ActiveForWithdraw,
			"version":             current + 1,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletConflict
	}
	wallet.Version = current + 1
	return nil
}

func (r *ledgerRepository) CreateTransaction(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetTransactionByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *ledgerRepository) GetTransactionsByWallet(walletID uint) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("wallet_id = ?", walletID).
		Order("created_at DESC, id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) UpdateTransaction(tx *models.Transaction) error {
	if err := r.db.Save(tx).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerRepository{db: tx})
	})
}
