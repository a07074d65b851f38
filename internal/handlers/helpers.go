package handlers

import (
	"context"
	"errors"
	"log"

	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/services/customer"
	"custodia/internal/services/transaction"
	"custodia/internal/services/wallet"
	"custodia/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// actorContext extracts the authenticated claims and returns a context
// carrying the acting customer.
func actorContext(c *fiber.Ctx) (context.Context, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return wallet.WithActor(c.Context(), claims.Actor()), nil
}

// respondServiceError maps service errors onto the HTTP error taxonomy:
// not-found 404, authorization 403, business rules 400, version conflicts
// 409, everything else a generic 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrWalletNotFound),
		errors.Is(err, wallet.ErrCustomerNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound):
		return utils.NotFound(c, err.Error())

	case errors.Is(err, wallet.ErrNoActor),
		errors.Is(err, wallet.ErrUnauthorized),
		errors.Is(err, customer.ErrEmployeesOnly):
		return utils.Forbidden(c, err.Error())

	case errors.Is(err, wallet.ErrInvalidCurrency),
		errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidCounterparty),
		errors.Is(err, transaction.ErrWithdrawDisabled),
		errors.Is(err, transaction.ErrShoppingDisabled),
		errors.Is(err, transaction.ErrInsufficientBalance),
		errors.Is(err, transaction.ErrDecisionPending),
		errors.Is(err, transaction.ErrAlreadyProcessed):
		return utils.BadRequest(c, err.Error())

	case errors.Is(err, repositories.ErrWalletConflict):
		return utils.Conflict(c, err.Error())

	default:
		log.Printf("unexpected error: %v", err)
		return utils.InternalError(c, "internal server error")
	}
}
