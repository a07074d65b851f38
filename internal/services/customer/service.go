package customer

import (
	"context"
	"errors"
	"fmt"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/services/wallet"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeesOnly    = errors.New("only employees can list customers")
)

// Service exposes customer profile and directory operations.
type Service interface {
	CurrentProfile(ctx context.Context) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

type service struct {
	customers repositories.CustomerRepository
	policy    wallet.AccessPolicy
}

func NewService(customers repositories.CustomerRepository) Service {
	if customers == nil {
		panic("customers is required")
	}
	return &service{customers: customers}
}

func (s *service) CurrentProfile(ctx context.Context) (*models.Customer, error) {
	actor, err := wallet.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(actor.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	actor, err := wallet.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanViewAll(actor) {
		return nil, ErrEmployeesOnly
	}
	return s.customers.GetAll()
}
