package service

import (
	"go.uber.org/zap"

	"github.com/jayisaacai/checkout-backend/internal/catalog"
	"github.com/jayisaacai/checkout-backend/internal/models"
	"github.com/jayisaacai/checkout-backend/pkg/payment"
)

// Mailer sends the purchase receipt. Satisfied by email.EmailService.
type Mailer interface {
	SendReceiptEmail(receipt models.Receipt) error
}

type CheckoutService struct {
	provider  payment.Provider
	oneTime   *catalog.Catalog
	recurring *catalog.Catalog
	mailer    Mailer
	company   models.ReceiptCompany
	logger    *zap.Logger
}

func NewCheckoutService(provider payment.Provider, mailer Mailer, company models.ReceiptCompany, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		provider:  provider,
		oneTime:   catalog.OneTime(),
		recurring: catalog.Recurring(),
		mailer:    mailer,
		company:   company,
		logger:    logger,
	}
}

// ResolveProfile picks the customer fields matching the account type. A
// missing website resolves to the empty string. Field contents are not
// validated here; a bad email surfaces as a provider error downstream.
func ResolveProfile(accountType models.AccountType, formData models.FormData) models.CustomerProfile {
	if accountType == models.AccountTypePersonal {
		return models.CustomerProfile{
			Email:      formData.Email,
			Name:       formData.Name,
			WebsiteURL: formData.WebsiteURL,
		}
	}
	return models.CustomerProfile{
		Email:      formData.BusinessEmail,
		Name:       formData.CompanyName,
		WebsiteURL: formData.BusinessWebsiteURL,
	}
}

// CreatePaymentIntent runs the one-time purchase flow: catalog lookup,
// customer creation, then a card payment intent for the plan's amount.
// The amount always comes from the catalog, never from the request.
func (s *CheckoutService) CreatePaymentIntent(req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	plan, err := s.oneTime.Lookup(req.Plan)
	if err != nil {
		return nil, err
	}

	customer, err := s.createCustomer(req)
	if err != nil {
		return nil, err
	}

	intent, err := s.provider.CreatePaymentIntent(payment.PaymentIntentParams{
		AmountCents: plan.AmountCents,
		Currency:    plan.Currency,
		CustomerID:  customer.ID,
		Description: plan.Description,
	})
	if err != nil {
		s.logger.Error("Error creating payment intent",
			zap.String("plan", req.Plan),
			zap.String("customer_id", customer.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return &models.CheckoutResponse{ClientSecret: intent.ClientSecret}, nil
}

// CreateSubscription runs the recurring flow: catalog lookup, customer
// creation, then a subscription held incomplete until its first invoice's
// payment intent is confirmed by the browser.
func (s *CheckoutService) CreateSubscription(req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	plan, err := s.recurring.Lookup(req.Plan)
	if err != nil {
		return nil, err
	}

	customer, err := s.createCustomer(req)
	if err != nil {
		return nil, err
	}

	subscription, err := s.provider.CreateSubscription(payment.SubscriptionParams{
		CustomerID:     customer.ID,
		PriceReference: plan.PriceReference,
	})
	if err != nil {
		s.logger.Error("Error creating subscription",
			zap.String("plan", req.Plan),
			zap.String("customer_id", customer.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return &models.CheckoutResponse{ClientSecret: subscription.ClientSecret}, nil
}

// SendReceipt fetches a confirmed payment intent and emails the customer
// their purchase details.
func (s *CheckoutService) SendReceipt(paymentIntentID string) error {
	intent, err := s.provider.GetPaymentIntent(paymentIntentID)
	if err != nil {
		s.logger.Error("Error retrieving payment intent for receipt",
			zap.String("payment_intent_id", paymentIntentID),
			zap.Error(err),
		)
		return err
	}

	receipt := models.NewReceipt(
		s.company,
		intent.CustomerName,
		intent.CustomerEmail,
		intent.ID,
		intent.Description,
		intent.AmountCents,
		intent.Currency,
	)

	if err := s.mailer.SendReceiptEmail(receipt); err != nil {
		s.logger.Error("Error sending receipt email",
			zap.String("payment_intent_id", paymentIntentID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Every checkout creates a fresh provider customer; there is no
// find-or-create by email.
func (s *CheckoutService) createCustomer(req models.CheckoutRequest) (*payment.Customer, error) {
	profile := ResolveProfile(req.AccountType, req.FormData)

	customer, err := s.provider.CreateCustomer(payment.CustomerParams{
		Email:      profile.Email,
		Name:       profile.Name,
		WebsiteURL: profile.WebsiteURL,
	})
	if err != nil {
		s.logger.Error("Error creating customer",
			zap.String("plan", req.Plan),
			zap.String("account_type", string(req.AccountType)),
			zap.Error(err),
		)
		return nil, err
	}

	return customer, nil
}
