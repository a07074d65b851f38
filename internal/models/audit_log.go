package models

import "time"

// Audit actions recorded after successful postings
const (
	AuditActionDepositCreated  = "DEPOSIT_CREATED"
	AuditActionWithdrawCreated = "WITHDRAW_CREATED"
	AuditActionStatusChanged   = "STATUS_CHANGED"
)

// TransactionAuditLog is a best-effort trail of who moved money and why.
// ActorID is nil when the acting customer could not be resolved (system
// driven calls); that must never fail the posting itself.
type TransactionAuditLog struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TransactionID uint      `gorm:"index;not null" json:"transaction_id"`
	Action        string    `gorm:"not null" json:"action"`
	ActorID       *uint     `json:"actor_id,omitempty"`
	Details       string    `gorm:"size:500;not null" json:"details"`
	CreatedAt     time.Time `json:"created_at"`
}
