package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jayisaacai/checkout-backend/internal/config"
	"github.com/jayisaacai/checkout-backend/internal/models"
)

// StatusHandler serves the liveness, debug and post-payment info endpoints.
type StatusHandler struct {
	cfg *config.Config
}

func NewStatusHandler(cfg *config.Config) *StatusHandler {
	return &StatusHandler{
		cfg: cfg,
	}
}

func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "API is working"})
}

func (h *StatusHandler) Debug(c *fiber.Ctx) error {
	return c.JSON(models.DebugResponse{
		Status: "running",
		Env:    h.cfg.Env,
	})
}

func (h *StatusHandler) Success(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "Payment completed successfully"})
}

func (h *StatusHandler) Cancel(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "Payment cancelled"})
}

// ClientConfig hands the browser its publishable key so the checkout page
// never hardcodes one.
func (h *StatusHandler) ClientConfig(c *fiber.Ctx) error {
	return c.JSON(models.ConfigResponse{PublishableKey: h.cfg.Stripe.PublishableKey})
}

// NotFound is the catch-all for unmatched routes.
func (h *StatusHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.MessageResponse{Message: "Not Found"})
}
