package handlers

import (
	"errors"

	"custodia/internal/services/auth"
	"custodia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name" validate:"required"`
		Surname    string `json:"surname" validate:"required"`
		NationalID string `json:"tckn" validate:"required,len=11,numeric"`
		Password   string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	customer, err := h.authService.Register(auth.RegisterRequest{
		Name:       input.Name,
		Surname:    input.Surname,
		NationalID: input.NationalID,
		Password:   input.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrNationalIDTaken) {
			return utils.Forbidden(c, err.Error())
		}
		return respondServiceError(c, err)
	}
	return utils.Created(c, customer)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		NationalID string `json:"tckn" validate:"required,len=11,numeric"`
		Password   string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	_, accessToken, refreshToken, err := h.authService.Login(input.NationalID, input.Password)
	if err != nil {
		return utils.Forbidden(c, "invalid credentials")
	}
	return utils.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int(utils.AccessTokenTTL.Seconds()),
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	accessToken, refreshToken, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "invalid refresh token")
	}
	return utils.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int(utils.AccessTokenTTL.Seconds()),
	})
}
