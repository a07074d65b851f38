package handlers

import (
	"custodia/internal/services/wallet"
	"custodia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) Create(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Name              string `json:"name" validate:"required"`
		Currency          string `json:"currency" validate:"required"`
		ActiveForShopping *bool  `json:"active_for_shopping" validate:"required"`
		ActiveForWithdraw *bool  `json:"active_for_withdraw" validate:"required"`
		CustomerID        uint   `json:"customer_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	created, err := h.walletService.CreateWallet(ctx, wallet.CreateWalletRequest{
		Name:              input.Name,
		Currency:          input.Currency,
		ActiveForShopping: *input.ActiveForShopping,
		ActiveForWithdraw: *input.ActiveForWithdraw,
		CustomerID:        input.CustomerID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Created(c, created)
}

func (h *WalletHandler) List(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	filter := wallet.ListFilter{
		CustomerID: uint(c.QueryInt("customerId", 0)),
		Currency:   c.Query("currency"),
	}
	wallets, err := h.walletService.ListWallets(ctx, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallets": wallets})
}

func (h *WalletHandler) Get(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	walletID, err := c.ParamsInt("walletId")
	if err != nil || walletID <= 0 {
		return utils.BadRequest(c, "invalid wallet id")
	}

	found, err := h.walletService.GetWallet(ctx, uint(walletID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, found)
}

func (h *WalletHandler) UpdateSettings(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	walletID, err := c.ParamsInt("walletId")
	if err != nil || walletID <= 0 {
		return utils.BadRequest(c, "invalid wallet id")
	}

	var input struct {
		ActiveForShopping *bool `json:"active_for_shopping" validate:"required"`
		ActiveForWithdraw *bool `json:"active_for_withdraw" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	updated, err := h.walletService.UpdateSettings(ctx, uint(walletID), wallet.SettingsRequest{
		ActiveForShopping: *input.ActiveForShopping,
		ActiveForWithdraw: *input.ActiveForWithdraw,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, updated)
}
