package auth

import (
	"testing"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomers struct {
	byID       map[uint]*models.Customer
	byNational map[string]*models.Customer
	created    []*models.Customer
}

func newStubCustomers() *stubCustomers {
	return &stubCustomers{
		byID:       make(map[uint]*models.Customer),
		byNational: make(map[string]*models.Customer),
	}
}

func (s *stubCustomers) add(c *models.Customer) {
	s.byID[c.ID] = c
	s.byNational[c.NationalID] = c
}

func (s *stubCustomers) Create(c *models.Customer) error {
	if _, exists := s.byNational[c.NationalID]; exists {
		return repositories.ErrDuplicateNational
	}
	c.ID = uint(len(s.byID) + 1)
	s.add(c)
	s.created = append(s.created, c)
	return nil
}

func (s *stubCustomers) GetByID(id uint) (*models.Customer, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrCustomerNotFound
	}
	return c, nil
}

func (s *stubCustomers) GetByNationalID(nationalID string) (*models.Customer, error) {
	c, ok := s.byNational[nationalID]
	if !ok {
		return nil, repositories.ErrCustomerNotFound
	}
	return c, nil
}

func (s *stubCustomers) GetAll() ([]*models.Customer, error) { return nil, nil }

func (s *stubCustomers) Update(*models.Customer) error { return nil }

func TestRegister(t *testing.T) {
	t.Run("new registration always gets the customer role", func(t *testing.T) {
		customers := newStubCustomers()
		svc := NewService(customers)

		created, err := svc.Register(RegisterRequest{
			Name: "Ada", Surname: "Lovelace", NationalID: "12345678901", Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleCustomer, created.Role)
		assert.NotEqual(t, "correct-horse", created.Password)
		assert.True(t, utils.CheckPassword(created.Password, "correct-horse"))
	})

	t.Run("duplicate national id", func(t *testing.T) {
		customers := newStubCustomers()
		customers.add(&models.Customer{ID: 1, NationalID: "12345678901"})
		svc := NewService(customers)

		_, err := svc.Register(RegisterRequest{
			Name: "Ada", Surname: "Lovelace", NationalID: "12345678901", Password: "pw",
		})
		assert.ErrorIs(t, err, ErrNationalIDTaken)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	customers := newStubCustomers()
	customers.add(&models.Customer{
		ID: 1, NationalID: "12345678901", Password: hashed, Role: models.RoleCustomer,
	})
	svc := NewService(customers)

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		customer, access, refresh, err := svc.Login("12345678901", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, uint(1), customer.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := utils.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.CustomerID)
		assert.Equal(t, models.RoleCustomer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login("12345678901", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown national id", func(t *testing.T) {
		_, _, _, err := svc.Login("00000000000", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := utils.HashPassword("pw")
	require.NoError(t, err)

	customers := newStubCustomers()
	customers.add(&models.Customer{
		ID: 1, NationalID: "12345678901", Password: hashed, Role: models.RoleCustomer,
	})
	svc := NewService(customers)

	_, _, refresh, err := svc.Login("12345678901", "pw")
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshTokens(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)

	_, _, err = svc.RefreshTokens("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
