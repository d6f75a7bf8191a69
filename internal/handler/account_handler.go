package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/service"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/utils"
)

const msgAuthUnavailable = "Authentication not yet configured. Please check back soon!"

type AccountHandler struct {
	accounts  service.AccountStore
	validator *utils.Validator
}

func NewAccountHandler(accounts service.AccountStore, validator *utils.Validator) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		validator: validator,
	}
}

func (h *AccountHandler) SignUp(c *fiber.Ctx) error {
	var req models.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.accounts.CreateAccount(c.UserContext(), req.Email, req.Password, req.Plan)
	if err != nil {
		return accountError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AccountHandler) SignIn(c *fiber.Ctx) error {
	var req models.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.accounts.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(user)
}

func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.accounts.GetProfile(c.UserContext(), c.Params("uid"))
	if err != nil {
		return accountError(c, err)
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Profile not found"))
	}

	return c.JSON(profile)
}

func accountError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotAvailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse(msgAuthUnavailable))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
}
