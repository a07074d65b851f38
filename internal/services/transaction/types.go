package transaction

import (
	"custodia/internal/models"

	"github.com/shopspring/decimal"
)

// DepositRequest credits a wallet from an external source.
type DepositRequest struct {
	WalletID   uint
	Amount     decimal.Decimal
	Source     string
	SourceType string
}

// WithdrawRequest debits a wallet towards an external destination.
type WithdrawRequest struct {
	WalletID        uint
	Amount          decimal.Decimal
	Destination     string
	DestinationType string
}

// Context carries everything a strategy needs to validate and apply a
// freshly requested movement.
type Context struct {
	Wallet           *models.Wallet
	Amount           decimal.Decimal
	Counterparty     string
	CounterpartyType string
}
