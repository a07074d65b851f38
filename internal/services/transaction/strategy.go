package transaction

import (
	"custodia/internal/models"
)

// Strategy holds the type-specific rules of a movement: what makes it valid,
// which balance takes the hit at creation, and which one at the final
// decision. The two halves are complements: whatever ApplyOnCreate defers
// for a PENDING transaction, ApplyStatusChange settles or reverses.
type Strategy interface {
	Type() string
	Validate(ctx Context) error
	ApplyOnCreate(ctx Context, status string)
	ApplyStatusChange(wallet *models.Wallet, tx *models.Transaction, newStatus string)
}

// strategies is the closed registry keyed by transaction type.
func strategies() map[string]Strategy {
	return map[string]Strategy{
		models.TransactionTypeDeposit:  depositStrategy{},
		models.TransactionTypeWithdraw: withdrawStrategy{},
	}
}

type depositStrategy struct{}

func (depositStrategy) Type() string { return models.TransactionTypeDeposit }

func (depositStrategy) Validate(ctx Context) error {
	// no deposit-specific validation currently
	return nil
}

// A deposit settles immediately: Balance always grows at creation. The
// funds only become usable once the deposit is approved, so a pending
// deposit leaves UsableBalance untouched (uncleared float).
func (depositStrategy) ApplyOnCreate(ctx Context, status string) {
	wallet := ctx.Wallet
	wallet.Balance = wallet.Balance.Add(ctx.Amount)
	if status == models.TransactionStatusApproved {
		wallet.UsableBalance = wallet.UsableBalance.Add(ctx.Amount)
	}
}

func (depositStrategy) ApplyStatusChange(wallet *models.Wallet, tx *models.Transaction, newStatus string) {
	if newStatus == models.TransactionStatusApproved {
		wallet.UsableBalance = wallet.UsableBalance.Add(tx.Amount)
	} else {
		// reverse the speculative settlement; usable funds were never granted
		wallet.Balance = wallet.Balance.Sub(tx.Amount)
	}
}

type withdrawStrategy struct{}

func (withdrawStrategy) Type() string { return models.TransactionTypeWithdraw }

func (withdrawStrategy) Validate(ctx Context) error {
	wallet := ctx.Wallet
	if !wallet.ActiveForWithdraw {
		return ErrWithdrawDisabled
	}
	if ctx.CounterpartyType == models.CounterpartyTypePayment && !wallet.ActiveForShopping {
		return ErrShoppingDisabled
	}
	if wallet.UsableBalance.LessThan(ctx.Amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// A withdrawal reserves usable funds the moment it is requested, so a
// pending approval can never be double-spent. The settled balance only
// drops once the withdrawal is approved.
func (withdrawStrategy) ApplyOnCreate(ctx Context, status string) {
	wallet := ctx.Wallet
	wallet.UsableBalance = wallet.UsableBalance.Sub(ctx.Amount)
	if status == models.TransactionStatusApproved {
		wallet.Balance = wallet.Balance.Sub(ctx.Amount)
	}
}

func (withdrawStrategy) ApplyStatusChange(wallet *models.Wallet, tx *models.Transaction, newStatus string) {
	if newStatus == models.TransactionStatusApproved {
		// the usable-balance reservation already happened at creation
		wallet.Balance = wallet.Balance.Sub(tx.Amount)
	} else {
		// release the reservation
		wallet.UsableBalance = wallet.UsableBalance.Add(tx.Amount)
	}
}
