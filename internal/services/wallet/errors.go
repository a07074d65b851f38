package wallet

import "errors"

// Service errors
var (
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNoActor          = errors.New("no authenticated customer")
	ErrUnauthorized     = errors.New("cannot access another customer's wallet")
	ErrInvalidCurrency  = errors.New("invalid currency")
)
