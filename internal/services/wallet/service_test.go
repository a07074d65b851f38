package wallet

import (
	"context"
	"testing"

	"custodia/internal/models"
	"custodia/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	wallets map[uint]*models.Wallet
	nextID  uint
}

func newStubLedger() *stubLedger {
	return &stubLedger{wallets: make(map[uint]*models.Wallet)}
}

func (s *stubLedger) seed(w *models.Wallet) {
	c := *w
	s.wallets[w.ID] = &c
}

func (s *stubLedger) CreateWallet(w *models.Wallet) error {
	s.nextID++
	w.ID = s.nextID
	w.Balance = decimal.Zero
	w.UsableBalance = decimal.Zero
	c := *w
	s.wallets[w.ID] = &c
	return nil
}

func (s *stubLedger) GetWalletByID(id uint) (*models.Wallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	c := *w
	return &c, nil
}

func (s *stubLedger) GetWalletsByCustomer(customerID uint, currency string) ([]*models.Wallet, error) {
	var out []*models.Wallet
	for _, w := range s.wallets {
		if w.CustomerID != customerID {
			continue
		}
		if currency != "" && w.Currency != currency {
			continue
		}
		c := *w
		out = append(out, &c)
	}
	return out, nil
}

func (s *stubLedger) GetAllWallets() ([]*models.Wallet, error) {
	var out []*models.Wallet
	for _, w := range s.wallets {
		c := *w
		out = append(out, &c)
	}
	return out, nil
}

func (s *stubLedger) UpdateWallet(w *models.Wallet) error {
	stored, ok := s.wallets[w.ID]
	if !ok || stored.Version != w.Version {
		return repositories.ErrWalletConflict
	}
	c := *w
	c.Version = w.Version + 1
	s.wallets[w.ID] = &c
	w.Version = c.Version
	return nil
}

func (s *stubLedger) CreateTransaction(*models.Transaction) error { return nil }

func (s *stubLedger) GetTransactionByID(uint) (*models.Transaction, error) {
	return nil, repositories.ErrTransactionNotFound
}

func (s *stubLedger) GetTransactionsByWallet(uint) ([]*models.Transaction, error) { return nil, nil }

func (s *stubLedger) UpdateTransaction(*models.Transaction) error { return nil }

func (s *stubLedger) ExecuteInTransaction(fn func(repositories.LedgerRepository) error) error {
	return fn(s)
}

type stubCustomers struct {
	customers map[uint]*models.Customer
}

func (s *stubCustomers) Create(*models.Customer) error { return nil }

func (s *stubCustomers) GetByID(id uint) (*models.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, repositories.ErrCustomerNotFound
	}
	return c, nil
}

func (s *stubCustomers) GetByNationalID(string) (*models.Customer, error) {
	return nil, repositories.ErrCustomerNotFound
}

func (s *stubCustomers) GetAll() ([]*models.Customer, error) { return nil, nil }

func (s *stubCustomers) Update(*models.Customer) error { return nil }

// stubCache counts hits so tests can tell which path served a read.
type stubCache struct {
	entries     map[uint]*models.Wallet
	invalidated []uint
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[uint]*models.Wallet)}
}

func (s *stubCache) GetWallet(_ context.Context, walletID uint) (*models.Wallet, error) {
	w, ok := s.entries[walletID]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}

func (s *stubCache) CacheWallet(_ context.Context, w *models.Wallet) error {
	c := *w
	s.entries[w.ID] = &c
	return nil
}

func (s *stubCache) InvalidateWallet(_ context.Context, walletID uint) error {
	delete(s.entries, walletID)
	s.invalidated = append(s.invalidated, walletID)
	return nil
}

func customerCtx(id uint) context.Context {
	return WithActor(context.Background(), models.Actor{CustomerID: id, Role: models.RoleCustomer})
}

func employeeActorCtx() context.Context {
	return WithActor(context.Background(), models.Actor{CustomerID: 99, Role: models.RoleEmployee})
}

func TestCreateWallet(t *testing.T) {
	t.Run("customer creates own wallet", func(t *testing.T) {
		svc := NewService(newStubLedger(), &stubCustomers{}, nil)
		w, err := svc.CreateWallet(customerCtx(10), CreateWalletRequest{
			Name: "savings", Currency: models.CurrencyTRY,
			ActiveForShopping: true, ActiveForWithdraw: true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(10), w.CustomerID)
		assert.True(t, w.Balance.IsZero())
		assert.True(t, w.UsableBalance.IsZero())
	})

	t.Run("customer cannot create for someone else", func(t *testing.T) {
		svc := NewService(newStubLedger(), &stubCustomers{}, nil)
		_, err := svc.CreateWallet(customerCtx(10), CreateWalletRequest{
			Name: "other", Currency: models.CurrencyTRY, CustomerID: 20,
		})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("employee creates for an existing customer", func(t *testing.T) {
		customers := &stubCustomers{customers: map[uint]*models.Customer{
			20: {ID: 20, Role: models.RoleCustomer},
		}}
		svc := NewService(newStubLedger(), customers, nil)
		w, err := svc.CreateWallet(employeeActorCtx(), CreateWalletRequest{
			Name: "provisioned", Currency: models.CurrencyUSD, CustomerID: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(20), w.CustomerID)
	})

	t.Run("employee cannot create for a missing customer", func(t *testing.T) {
		svc := NewService(newStubLedger(), &stubCustomers{}, nil)
		_, err := svc.CreateWallet(employeeActorCtx(), CreateWalletRequest{
			Name: "ghost", Currency: models.CurrencyTRY, CustomerID: 404,
		})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("invalid currency", func(t *testing.T) {
		svc := NewService(newStubLedger(), &stubCustomers{}, nil)
		_, err := svc.CreateWallet(customerCtx(10), CreateWalletRequest{
			Name: "crypto", Currency: "BTC",
		})
		assert.ErrorIs(t, err, ErrInvalidCurrency)
	})
}

func TestListWallets(t *testing.T) {
	ledger := newStubLedger()
	ledger.seed(&models.Wallet{ID: 1, CustomerID: 10, Currency: models.CurrencyTRY})
	ledger.seed(&models.Wallet{ID: 2, CustomerID: 10, Currency: models.CurrencyUSD})
	ledger.seed(&models.Wallet{ID: 3, CustomerID: 20, Currency: models.CurrencyTRY})
	svc := NewService(ledger, &stubCustomers{}, nil)

	t.Run("customer sees only their wallets regardless of filter", func(t *testing.T) {
		wallets, err := svc.ListWallets(customerCtx(10), ListFilter{CustomerID: 20})
		require.NoError(t, err)
		assert.Len(t, wallets, 2)
		for _, w := range wallets {
			assert.Equal(t, uint(10), w.CustomerID)
		}
	})

	t.Run("currency filter applies", func(t *testing.T) {
		wallets, err := svc.ListWallets(customerCtx(10), ListFilter{Currency: models.CurrencyUSD})
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, uint(2), wallets[0].ID)
	})

	t.Run("employee without filter sees everything", func(t *testing.T) {
		wallets, err := svc.ListWallets(employeeActorCtx(), ListFilter{})
		require.NoError(t, err)
		assert.Len(t, wallets, 3)
	})

	t.Run("employee filter narrows to one customer", func(t *testing.T) {
		wallets, err := svc.ListWallets(employeeActorCtx(), ListFilter{CustomerID: 20})
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.Equal(t, uint(3), wallets[0].ID)
	})
}

func TestGetWalletCaching(t *testing.T) {
	ledger := newStubLedger()
	ledger.seed(&models.Wallet{ID: 1, CustomerID: 10, Currency: models.CurrencyTRY})
	cache := newStubCache()
	svc := NewService(ledger, &stubCustomers{}, cache)

	w, err := svc.GetWallet(customerCtx(10), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), w.ID)
	assert.Contains(t, cache.entries, uint(1))

	// remove the backing row; the cached copy still serves reads
	delete(ledger.wallets, 1)
	w, err = svc.GetWallet(customerCtx(10), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), w.ID)

	// the access check also applies to cached copies
	_, err = svc.GetWallet(customerCtx(20), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetWalletNotFound(t *testing.T) {
	svc := NewService(newStubLedger(), &stubCustomers{}, nil)
	_, err := svc.GetWallet(customerCtx(10), 404)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestUpdateSettings(t *testing.T) {
	ledger := newStubLedger()
	ledger.seed(&models.Wallet{
		ID: 1, CustomerID: 10, Currency: models.CurrencyTRY,
		ActiveForShopping: true, ActiveForWithdraw: true,
	})
	cache := newStubCache()
	svc := NewService(ledger, &stubCustomers{}, cache)

	updated, err := svc.UpdateSettings(customerCtx(10), 1, SettingsRequest{
		ActiveForShopping: false, ActiveForWithdraw: true,
	})
	require.NoError(t, err)
	assert.False(t, updated.ActiveForShopping)
	assert.True(t, updated.ActiveForWithdraw)
	assert.Contains(t, cache.invalidated, uint(1))

	stored, _ := ledger.GetWalletByID(1)
	assert.False(t, stored.ActiveForShopping)

	_, err = svc.UpdateSettings(customerCtx(20), 1, SettingsRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRequireWalletAccess(t *testing.T) {
	ledger := newStubLedger()
	ledger.seed(&models.Wallet{ID: 1, CustomerID: 10, Currency: models.CurrencyTRY})
	cache := newStubCache()
	// poison the cache with a wrong copy to prove the posting path ignores it
	cache.entries[1] = &models.Wallet{ID: 1, CustomerID: 10, Name: "stale"}
	svc := NewService(ledger, &stubCustomers{}, cache)

	w, err := svc.RequireWalletAccess(customerCtx(10), 1)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", w.Name)

	_, err = svc.RequireWalletAccess(customerCtx(20), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.RequireWalletAccess(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoActor)
}
