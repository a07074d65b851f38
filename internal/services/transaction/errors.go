package transaction

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")

	// Business rule violations
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidCounterparty = errors.New("invalid counterparty type")
	ErrWithdrawDisabled    = errors.New("wallet not enabled for withdraw")
	ErrShoppingDisabled    = errors.New("wallet not enabled for shopping payments")
	ErrInsufficientBalance = errors.New("insufficient usable balance")
	ErrDecisionPending     = errors.New("decision must be APPROVED or DENIED")
	ErrAlreadyProcessed    = errors.New("only pending transactions can be decided")
)
