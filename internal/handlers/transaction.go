package handlers

import (
	"custodia/internal/services/transaction"
	"custodia/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		WalletID   uint            `json:"wallet_id" validate:"required"`
		Amount     decimal.Decimal `json:"amount" validate:"required"`
		Source     string          `json:"source" validate:"required"`
		SourceType string          `json:"source_type" validate:"required,oneof=IBAN PAYMENT"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	txn, err := h.transactionService.Deposit(ctx, transaction.DepositRequest{
		WalletID:   input.WalletID,
		Amount:     input.Amount,
		Source:     input.Source,
		SourceType: input.SourceType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, txn)
}

func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		WalletID        uint            `json:"wallet_id" validate:"required"`
		Amount          decimal.Decimal `json:"amount" validate:"required"`
		Destination     string          `json:"destination" validate:"required"`
		DestinationType string          `json:"destination_type" validate:"required,oneof=IBAN PAYMENT"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	txn, err := h.transactionService.Withdraw(ctx, transaction.WithdrawRequest{
		WalletID:        input.WalletID,
		Amount:          input.Amount,
		Destination:     input.Destination,
		DestinationType: input.DestinationType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, txn)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	walletID := c.QueryInt("walletId", 0)
	if walletID <= 0 {
		return utils.BadRequest(c, "walletId query parameter is required")
	}

	txns, err := h.transactionService.ListTransactions(ctx, uint(walletID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.Map{"transactions": txns})
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	transactionID, err := c.ParamsInt("transactionId")
	if err != nil || transactionID <= 0 {
		return utils.BadRequest(c, "invalid transaction id")
	}

	txn, err := h.transactionService.GetTransaction(ctx, uint(transactionID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, txn)
}

// Approve decides a pending transaction. The route is employee-only.
func (h *TransactionHandler) Approve(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	transactionID, err := c.ParamsInt("transactionId")
	if err != nil || transactionID <= 0 {
		return utils.BadRequest(c, "invalid transaction id")
	}

	var input struct {
		Status string `json:"status" validate:"required,oneof=APPROVED DENIED PENDING"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	txn, err := h.transactionService.ApproveOrDeny(ctx, uint(transactionID), input.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, txn)
}
