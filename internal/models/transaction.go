package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeDeposit  = "DEPOSIT"
	TransactionTypeWithdraw = "WITHDRAW"
)

// Transaction statuses. PENDING is the only non-terminal status: a
// transaction is created as PENDING or APPROVED and may move exactly once
// from PENDING to APPROVED or DENIED.
const (
	TransactionStatusPending  = "PENDING"
	TransactionStatusApproved = "APPROVED"
	TransactionStatusDenied   = "DENIED"
)

// Counterparty types. PAYMENT marks a shopping/payment movement and makes
// withdrawals subject to the wallet's shopping flag.
const (
	CounterpartyTypeIBAN    = "IBAN"
	CounterpartyTypePayment = "PAYMENT"
)

type Transaction struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	WalletID         uint            `gorm:"index;not null" json:"wallet_id"`
	Reference        string          `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Type             string          `gorm:"not null" json:"type"`
	Status           string          `gorm:"not null" json:"status"`
	Amount           decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"amount"`
	CounterpartyType string          `gorm:"not null" json:"counterparty_type"`
	Counterparty     string          `gorm:"not null" json:"counterparty"`
	CreatedAt        time.Time       `json:"created_at"`
	ProcessedAt      *time.Time      `json:"processed_at,omitempty"`
	ProcessedBy      *uint           `json:"processed_by,omitempty"`
}

func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

func ValidCounterpartyType(t string) bool {
	return t == CounterpartyTypeIBAN || t == CounterpartyTypePayment
}
