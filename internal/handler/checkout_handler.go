package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jayisaacai/checkout-backend/internal/catalog"
	"github.com/jayisaacai/checkout-backend/internal/controller"
	"github.com/jayisaacai/checkout-backend/internal/models"
	"github.com/jayisaacai/checkout-backend/pkg/utils"
)

type CheckoutHandler struct {
	checkoutController *controller.CheckoutController
	validator          *utils.Validator
}

func NewCheckoutHandler(checkoutController *controller.CheckoutController, validator *utils.Validator) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutController: checkoutController,
		validator:          validator,
	}
}

// CreatePaymentIntent drives the one-time purchase flow behind POST /api/stripe.
func (h *CheckoutHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return methodNotAllowed(c)
	}

	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "No JSON data provided")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	resp, err := h.checkoutController.CreatePaymentIntent(req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(resp)
}

// CreateSubscription drives the recurring flow behind POST /api/subscribe.
func (h *CheckoutHandler) CreateSubscription(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return methodNotAllowed(c)
	}

	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "No JSON data provided")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	resp, err := h.checkoutController.CreateSubscription(req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(resp)
}

// SendReceipt emails the purchase receipt for a confirmed payment intent.
func (h *CheckoutHandler) SendReceipt(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return methodNotAllowed(c)
	}

	var req models.ReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "No JSON data provided")
	}
	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	if err := h.checkoutController.SendReceipt(req.PaymentIntentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(models.MessageResponse{Message: "Receipt sent"})
}

// checkoutError maps an unknown plan to a client error; anything else is a
// provider failure whose message passes through verbatim.
func checkoutError(c *fiber.Ctx, err error) error {
	if errors.Is(err, catalog.ErrInvalidPlan) {
		return badRequest(c, "Invalid plan selected")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: msg,
	})
}

func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{
		Error: "Method not allowed",
	})
}
