package payment

import (
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/subscription"
)

// StripeService implements Provider against the Stripe API.
type StripeService struct {
	secretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey: secretKey,
	}
}

func (s *StripeService) CreateCustomer(params CustomerParams) (*Customer, error) {
	customerParams := &stripe.CustomerParams{
		Email: stripe.String(params.Email),
		Name:  stripe.String(params.Name),
	}
	customerParams.AddMetadata("website_url", params.WebsiteURL)

	cust, err := customer.New(customerParams)
	if err != nil {
		return nil, normalizeError(err)
	}

	return &Customer{
		ID:    cust.ID,
		Email: cust.Email,
		Name:  cust.Name,
	}, nil
}

func (s *StripeService) CreatePaymentIntent(params PaymentIntentParams) (*PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(params.AmountCents),
		Currency:    stripe.String(params.Currency),
		Customer:    stripe.String(params.CustomerID),
		Description: stripe.String(params.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	intent, err := paymentintent.New(intentParams)
	if err != nil {
		return nil, normalizeError(err)
	}

	return paymentIntentFromStripe(intent), nil
}

func (s *StripeService) CreateSubscription(params SubscriptionParams) (*Subscription, error) {
	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(params.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				Price: stripe.String(params.PriceReference),
			},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := subscription.New(subParams)
	if err != nil {
		return nil, normalizeError(err)
	}

	if sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil {
		return nil, errors.New("subscription has no payment intent on its latest invoice")
	}

	return &Subscription{
		ID:           sub.ID,
		ClientSecret: sub.LatestInvoice.PaymentIntent.ClientSecret,
	}, nil
}

func (s *StripeService) GetPaymentIntent(id string) (*PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{}
	intentParams.AddExpand("customer")

	intent, err := paymentintent.Get(id, intentParams)
	if err != nil {
		return nil, normalizeError(err)
	}

	return paymentIntentFromStripe(intent), nil
}

func paymentIntentFromStripe(intent *stripe.PaymentIntent) *PaymentIntent {
	pi := &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
		Description:  intent.Description,
		Status:       string(intent.Status),
	}
	if intent.Customer != nil {
		pi.CustomerID = intent.Customer.ID
		pi.CustomerEmail = intent.Customer.Email
		pi.CustomerName = intent.Customer.Name
	}
	return pi
}

// normalizeError strips the Stripe error envelope down to its human-readable
// message, which is what ends up in the JSON error body.
func normalizeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.New(stripeErr.Msg)
	}
	return err
}
