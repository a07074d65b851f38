package auth

import (
	"errors"
	"fmt"
	"log"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNationalIDTaken    = errors.New("national id already registered")
)

type RegisterRequest struct {
	Name       string
	Surname    string
	NationalID string
	Password   string
}

// Service handles registration and token issuance.
type Service interface {
	Register(req RegisterRequest) (*models.Customer, error)
	Login(nationalID, password string) (*models.Customer, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
}

type service struct {
	customers repositories.CustomerRepository
}

func NewService(customers repositories.CustomerRepository) Service {
	if customers == nil {
		panic("customers is required")
	}
	return &service{customers: customers}
}

// Register creates a customer account. Registrations always get the
// CUSTOMER role; employees are provisioned by the seed command.
func (s *service) Register(req RegisterRequest) (*models.Customer, error) {
	if _, err := s.customers.GetByNationalID(req.NationalID); err == nil {
		return nil, ErrNationalIDTaken
	} else if !errors.Is(err, repositories.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to check national id: %w", err)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &models.Customer{
		Name:       req.Name,
		Surname:    req.Surname,
		NationalID: req.NationalID,
		Password:   hashed,
		Role:       models.RoleCustomer,
	}
	if err := s.customers.Create(customer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateNational) {
			return nil, ErrNationalIDTaken
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *service) Login(nationalID, password string) (*models.Customer, string, string, error) {
	customer, err := s.customers.GetByNationalID(nationalID)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(customer.Password, password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		CustomerID: customer.ID,
		NationalID: customer.NationalID,
		Role:       customer.Role,
	})
	if err != nil {
		log.Printf("failed to generate tokens for customer %d: %v", customer.ID, err)
		return nil, "", "", errors.New("failed to generate tokens")
	}
	return customer, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	customer, err := s.customers.GetByID(claims.CustomerID)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	return generateFor(customer)
}

func generateFor(customer *models.Customer) (string, string, error) {
	return utils.GenerateTokens(&models.UserClaims{
		CustomerID: customer.ID,
		NationalID: customer.NationalID,
		Role:       customer.Role,
	})
}
