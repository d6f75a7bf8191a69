package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/metrics"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/service"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.RecordCheckout(metrics.OutcomeMalformed)
		return writeCheckoutError(c, service.MalformedRequest(err))
	}

	session, err := h.checkoutService.CreateCheckoutSession(c.UserContext(), req, c.Get(HeaderIdempotencyKey))
	if err != nil {
		return writeCheckoutError(c, err)
	}

	return c.JSON(session)
}

func writeCheckoutError(c *fiber.Ctx, err error) error {
	var ce *service.CheckoutError
	if !errors.As(err, &ce) {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	status := fiber.StatusInternalServerError
	switch ce.Kind {
	case service.KindValidation, service.KindTransport:
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(models.ErrorResponse(ce.Message))
}
