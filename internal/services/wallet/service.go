package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"

	"custodia/internal/models"
	"custodia/internal/repositories"
)

// Cache is the read cache for wallet rows. Implemented by the redis cache
// service; nil disables caching.
type Cache interface {
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID uint) error
}

type service struct {
	repo      repositories.LedgerRepository
	customers repositories.CustomerRepository
	cache     Cache
	policy    AccessPolicy
}

// NewService creates a new wallet service.
func NewService(repo repositories.LedgerRepository, customers repositories.CustomerRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if customers == nil {
		panic("customers is required")
	}

	return &service{
		repo:      repo,
		customers: customers,
		cache:     cache,
	}
}

func (s *service) CreateWallet(ctx context.Context, req CreateWalletRequest) (*models.Wallet, error) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !models.ValidCurrency(req.Currency) {
		return nil, ErrInvalidCurrency
	}

	ownerID, err := s.resolveOwnerForCreation(actor, req.CustomerID)
	if err != nil {
		return nil, err
	}

	wallet := &models.Wallet{
		CustomerID:        ownerID,
		Name:              req.Name,
		Currency:          req.Currency,
		ActiveForShopping: req.ActiveForShopping,
		ActiveForWithdraw: req.ActiveForWithdraw,
	}
	if err := s.repo.CreateWallet(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

func (s *service) ListWallets(ctx context.Context, filter ListFilter) ([]*models.Wallet, error) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if s.policy.CanViewAll(actor) {
		if filter.CustomerID == 0 {
			return s.repo.GetAllWallets()
		}
		return s.repo.GetWalletsByCustomer(filter.CustomerID, filter.Currency)
	}
	return s.repo.GetWalletsByCustomer(actor.CustomerID, filter.Currency)
}

func (s *service) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetWallet(ctx, walletID); err == nil && cached != nil {
			if err := s.policy.EnsureCanAccess(actor, cached); err != nil {
				return nil, err
			}
			return cached, nil
		}
	}

	wallet, err := s.getWallet(walletID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.EnsureCanAccess(actor, wallet); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheWallet(ctx, wallet); err != nil {
			log.Printf("failed to cache wallet %d: %v", walletID, err)
		}
	}
	return wallet, nil
}

func (s *service) UpdateSettings(ctx context.Context, walletID uint, req SettingsRequest) (*models.Wallet, error) {
	wallet, err := s.RequireWalletAccess(ctx, walletID)
	if err != nil {
		return nil, err
	}

	wallet.ActiveForShopping = req.ActiveForShopping
	wallet.ActiveForWithdraw = req.ActiveForWithdraw
	if err := s.repo.UpdateWallet(wallet); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateWallet(ctx, walletID); err != nil {
			log.Printf("failed to invalidate wallet %d: %v", walletID, err)
		}
	}
	return wallet, nil
}

func (s *service) RequireWalletAccess(ctx context.Context, walletID uint) (*models.Wallet, error) {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	wallet, err := s.getWallet(walletID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.EnsureCanAccess(actor, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) getWallet(walletID uint) (*models.Wallet, error) {
	wallet, err := s.repo.GetWalletByID(walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// resolveOwnerForCreation decides whose wallet is being created. Customers
// may only create wallets for themselves; employees may create for any
// existing customer.
func (s *service) resolveOwnerForCreation(actor models.Actor, requestedID uint) (uint, error) {
	if requestedID == 0 || requestedID == actor.CustomerID {
		return actor.CustomerID, nil
	}
	if !actor.IsEmployee() {
		return 0, ErrUnauthorized
	}
	if _, err := s.customers.GetByID(requestedID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return 0, ErrCustomerNotFound
		}
		return 0, fmt.Errorf("failed to resolve customer: %w", err)
	}
	return requestedID, nil
}
