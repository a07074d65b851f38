package handlers

import (
	"custodia/internal/services/customer"
	"custodia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) Me(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	profile, err := h.customerService.CurrentProfile(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, profile)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	ctx, err := actorContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}
	customers, err := h.customerService.ListCustomers(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.Map{"customers": customers})
}
