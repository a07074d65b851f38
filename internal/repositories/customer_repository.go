package repositories

import (
	"errors"

	"custodia/internal/models"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateNational = errors.New("national id already registered")
)

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByNationalID(nationalID string) (*models.Customer, error)
	GetAll() ([]*models.Customer, error)
	Update(customer *models.Customer) error
}
