package payment

// Customer is the provider-side customer record created for a checkout.
type Customer struct {
	ID    string
	Email string
	Name  string
}

type CustomerParams struct {
	Email      string
	Name       string
	WebsiteURL string
}

// PaymentIntent is the provider's representation of a single charge. The
// client secret authorizes the browser to confirm it.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Description  string
	CustomerID   string
	// CustomerEmail and CustomerName are filled when the customer is
	// expanded on retrieval; empty on freshly created intents.
	CustomerEmail string
	CustomerName  string
	Status        string
}

type PaymentIntentParams struct {
	AmountCents int64
	Currency    string
	CustomerID  string
	Description string
}

// Subscription carries the client secret of the payment intent attached to
// the subscription's first invoice.
type Subscription struct {
	ID           string
	ClientSecret string
}

type SubscriptionParams struct {
	CustomerID     string
	PriceReference string
}

// Provider is the payment processor capability the checkout flows depend on.
// The production implementation talks to Stripe; tests inject a fake.
type Provider interface {
	CreateCustomer(params CustomerParams) (*Customer, error)
	CreatePaymentIntent(params PaymentIntentParams) (*PaymentIntent, error)
	CreateSubscription(params SubscriptionParams) (*Subscription, error)
	GetPaymentIntent(id string) (*PaymentIntent, error)
}
