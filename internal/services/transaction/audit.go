package transaction

import (
	"context"
	"log"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/services/wallet"
)

// AuditRecorder is notified after every successful posting. Recording is
// best-effort: a failed write is logged, never propagated.
type AuditRecorder interface {
	Record(ctx context.Context, transactionID uint, action string, details string)
}

type auditRecorder struct {
	repo repositories.AuditLogRepository
}

func NewAuditRecorder(repo repositories.AuditLogRepository) AuditRecorder {
	if repo == nil {
		panic("repo is required")
	}
	return &auditRecorder{repo: repo}
}

func (a *auditRecorder) Record(ctx context.Context, transactionID uint, action string, details string) {
	entry := &models.TransactionAuditLog{
		TransactionID: transactionID,
		Action:        action,
		Details:       details,
	}
	// system-driven calls have no actor; record with a nil one
	if actor, err := wallet.ActorFromContext(ctx); err == nil {
		actorID := actor.CustomerID
		entry.ActorID = &actorID
	}
	if err := a.repo.Create(entry); err != nil {
		log.Printf("failed to write audit log for transaction %d: %v", transactionID, err)
	}
}

// NoopAuditRecorder discards audit events.
type NoopAuditRecorder struct{}

func (NoopAuditRecorder) Record(context.Context, uint, string, string) {}
