package controller

import (
	"github.com/jayisaacai/checkout-backend/internal/models"
	"github.com/jayisaacai/checkout-backend/internal/service"
)

type CheckoutController struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

func (c *CheckoutController) CreatePaymentIntent(req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	return c.checkoutService.CreatePaymentIntent(req)
}

func (c *CheckoutController) CreateSubscription(req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	return c.checkoutService.CreateSubscription(req)
}

func (c *CheckoutController) SendReceipt(paymentIntentID string) error {
	return c.checkoutService.SendReceipt(paymentIntentID)
}
