package wallet

import (
	"custodia/internal/models"
)

// AccessPolicy centralizes wallet-visibility rules so role checks don't get
// scattered around the codebase. New roles get reasoned about here and
// nowhere else.
type AccessPolicy struct{}

// EnsureCanAccess fails when a customer touches a wallet they don't own.
// Employees may access every wallet.
func (AccessPolicy) EnsureCanAccess(actor models.Actor, wallet *models.Wallet) error {
	switch actor.Role {
	case models.RoleEmployee:
		return nil
	case models.RoleCustomer:
		if wallet.CustomerID != actor.CustomerID {
			return ErrUnauthorized
		}
		return nil
	default:
		return ErrUnauthorized
	}
}

// CanViewAll reports whether the actor may list wallets and customers
// without an ownership filter.
func (AccessPolicy) CanViewAll(actor models.Actor) bool {
	return actor.Role == models.RoleEmployee
}
