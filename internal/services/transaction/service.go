package transaction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/services/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	repo       repositories.LedgerRepository
	wallets    wallet.Service
	audit      AuditRecorder
	cache      CacheInvalidator
	threshold  decimal.Decimal
	strategies map[string]Strategy
}

// NewService creates the posting engine. A zero threshold falls back to
// DefaultApprovalThreshold.
func NewService(
	repo repositories.LedgerRepository,
	wallets wallet.Service,
	audit AuditRecorder,
	cache CacheInvalidator,
	threshold decimal.Decimal,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if wallets == nil {
		panic("wallet service is required")
	}
	if audit == nil {
		audit = NoopAuditRecorder{}
	}
	if threshold.IsZero() {
		threshold = decimal.RequireFromString(DefaultApprovalThreshold)
	}

	return &service{
		repo:       repo,
		wallets:    wallets,
		audit:      audit,
		cache:      cache,
		threshold:  threshold,
		strategies: strategies(),
	}
}

func (s *service) Deposit(ctx context.Context, req DepositRequest) (*models.Transaction, error) {
	txn, err := s.post(ctx, models.TransactionTypeDeposit, req.WalletID, req.Amount, req.Source, req.SourceType)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, txn.ID, models.AuditActionDepositCreated,
		fmt.Sprintf("amount=%s, sourceType=%s, source=%s", req.Amount, req.SourceType, req.Source))
	return txn, nil
}

func (s *service) Withdraw(ctx context.Context, req WithdrawRequest) (*models.Transaction, error) {
	txn, err := s.post(ctx, models.TransactionTypeWithdraw, req.WalletID, req.Amount, req.Destination, req.DestinationType)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, txn.ID, models.AuditActionWithdrawCreated,
		fmt.Sprintf("amount=%s, destinationType=%s, destination=%s", req.Amount, req.DestinationType, req.Destination))
	return txn, nil
}

// post runs the shared creation path: access check, status determination,
// strategy validation and delta, then wallet and transaction persisted in
// one database transaction.
func (s *service) post(ctx context.Context, txType string, walletID uint, amount decimal.Decimal, counterparty, counterpartyType string) (*models.Transaction, error) {
	strategy, err := s.strategyFor(txType)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !models.ValidCounterpartyType(counterpartyType) {
		return nil, ErrInvalidCounterparty
	}

	wlt, err := s.wallets.RequireWalletAccess(ctx, walletID)
	if err != nil {
		return nil, err
	}

	status := s.determineStatus(amount)
	tctx := Context{
		Wallet:           wlt,
		Amount:           amount,
		Counterparty:     counterparty,
		CounterpartyType: counterpartyType,
	}
	if err := strategy.Validate(tctx); err != nil {
		return nil, err
	}
	strategy.ApplyOnCreate(tctx, status)

	txn := &models.Transaction{
		WalletID:         wlt.ID,
		Reference:        uuid.NewString(),
		Type:             txType,
		Status:           status,
		Amount:           amount,
		Counterparty:     counterparty,
		CounterpartyType: counterpartyType,
	}
	if status == models.TransactionStatusApproved {
		now := time.Now()
		owner := wlt.CustomerID
		txn.ProcessedAt = &now
		txn.ProcessedBy = &owner
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		if err := tx.UpdateWallet(wlt); err != nil {
			return err
		}
		return tx.CreateTransaction(txn)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, wlt.ID)
	return txn, nil
}

func (s *service) ApproveOrDeny(ctx context.Context, transactionID uint, status string) (*models.Transaction, error) {
	if status != models.TransactionStatusApproved && status != models.TransactionStatusDenied {
		return nil, ErrDecisionPending
	}
	actor, err := wallet.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var txn *models.Transaction
	var walletID uint
	// the PENDING check and the delta must share one database transaction,
	// otherwise two deciders could both consume the same transaction
	err = s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		var err error
		txn, err = tx.GetTransactionByID(transactionID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		if !txn.IsPending() {
			return ErrAlreadyProcessed
		}

		wlt, err := tx.GetWalletByID(txn.WalletID)
		if err != nil {
			return err
		}
		strategy, err := s.strategyFor(txn.Type)
		if err != nil {
			return err
		}
		strategy.ApplyStatusChange(wlt, txn, status)

		now := time.Now()
		actorID := actor.CustomerID
		txn.Status = status
		txn.ProcessedAt = &now
		txn.ProcessedBy = &actorID

		if err := tx.UpdateWallet(wlt); err != nil {
			return err
		}
		if err := tx.UpdateTransaction(txn); err != nil {
			return err
		}
		walletID = wlt.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, walletID)
	s.audit.Record(ctx, txn.ID, models.AuditActionStatusChanged, "status="+status)
	return txn, nil
}

func (s *service) ListTransactions(ctx context.Context, walletID uint) ([]*models.Transaction, error) {
	if _, err := s.wallets.RequireWalletAccess(ctx, walletID); err != nil {
		return nil, err
	}
	return s.repo.GetTransactionsByWallet(walletID)
}

func (s *service) GetTransaction(ctx context.Context, transactionID uint) (*models.Transaction, error) {
	txn, err := s.repo.GetTransactionByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	// access is checked through the owning wallet
	if _, err := s.wallets.RequireWalletAccess(ctx, txn.WalletID); err != nil {
		return nil, err
	}
	return txn, nil
}

// determineStatus applies the approval threshold. Strictly greater than:
// an amount exactly at the threshold auto-approves.
func (s *service) determineStatus(amount decimal.Decimal) string {
	if amount.GreaterThan(s.threshold) {
		return models.TransactionStatusPending
	}
	return models.TransactionStatusApproved
}

func (s *service) strategyFor(txType string) (Strategy, error) {
	strategy, ok := s.strategies[txType]
	if !ok {
		return nil, fmt.Errorf("no strategy registered for type %s", txType)
	}
	return strategy, nil
}

func (s *service) invalidate(ctx context.Context, walletID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
		log.Printf("failed to invalidate wallet %d: %v", walletID, err)
	}
}
