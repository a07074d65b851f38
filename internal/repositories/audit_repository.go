package repositories

import (
	"fmt"

	"custodia/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository persists the transaction audit trail.
type AuditLogRepository interface {
	Create(entry *models.TransactionAuditLog) error
	GetByTransaction(transactionID uint) ([]*models.TransactionAuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *models.TransactionAuditLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *auditLogRepository) GetByTransaction(transactionID uint) ([]*models.TransactionAuditLog, error) {
	var entries []*models.TransactionAuditLog
	err := r.db.
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return entries, nil
}
