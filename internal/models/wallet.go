package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supported wallet currencies
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Wallet keeps two balances: Balance is the settled total, UsableBalance is
// what may back a new withdrawal. UsableBalance <= Balance outside of a
// posting in flight; pending withdrawals reserve usable funds, pending
// deposits settle without becoming usable until approved.
//
// Version guards concurrent writers. Every balance write must go through a
// compare-and-swap on it; a stale write is a conflict, never a silent loss.
type Wallet struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	CustomerID        uint            `gorm:"index;not null" json:"customer_id"`
	Name              string          `gorm:"not null" json:"name"`
	Currency          string          `gorm:"not null" json:"currency"`
	ActiveForShopping bool            `gorm:"not null" json:"active_for_shopping"`
	ActiveForWithdraw bool            `gorm:"not null" json:"active_for_withdraw"`
	Balance           decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"balance"`
	UsableBalance     decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"usable_balance"`
	Version           int64           `gorm:"not null;default:0" json:"-"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Wallets always start empty
	w.Balance = decimal.Zero
	w.UsableBalance = decimal.Zero
	return nil
}

func ValidCurrency(c string) bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}
