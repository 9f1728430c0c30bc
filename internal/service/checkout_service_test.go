package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jayisaacai/checkout-backend/internal/catalog"
	"github.com/jayisaacai/checkout-backend/internal/models"
	"github.com/jayisaacai/checkout-backend/internal/service"
	"github.com/jayisaacai/checkout-backend/pkg/payment"
)

// fakeProvider records every call so tests can assert ordering and payloads.
type fakeProvider struct {
	customers     []payment.CustomerParams
	intents       []payment.PaymentIntentParams
	subscriptions []payment.SubscriptionParams

	customerErr     error
	intentErr       error
	subscriptionErr error

	storedIntent *payment.PaymentIntent
	getIntentErr error
}

func (f *fakeProvider) CreateCustomer(params payment.CustomerParams) (*payment.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	f.customers = append(f.customers, params)
	return &payment.Customer{ID: "cus_test_1", Email: params.Email, Name: params.Name}, nil
}

func (f *fakeProvider) CreatePaymentIntent(params payment.PaymentIntentParams) (*payment.PaymentIntent, error) {
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	f.intents = append(f.intents, params)
	return &payment.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		AmountCents:  params.AmountCents,
		Currency:     params.Currency,
		CustomerID:   params.CustomerID,
	}, nil
}

func (f *fakeProvider) CreateSubscription(params payment.SubscriptionParams) (*payment.Subscription, error) {
	if f.subscriptionErr != nil {
		return nil, f.subscriptionErr
	}
	f.subscriptions = append(f.subscriptions, params)
	return &payment.Subscription{ID: "sub_test_1", ClientSecret: "pi_sub_1_secret"}, nil
}

func (f *fakeProvider) GetPaymentIntent(id string) (*payment.PaymentIntent, error) {
	if f.getIntentErr != nil {
		return nil, f.getIntentErr
	}
	return f.storedIntent, nil
}

type fakeMailer struct {
	sent    []models.Receipt
	sendErr error
}

func (f *fakeMailer) SendReceiptEmail(receipt models.Receipt) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, receipt)
	return nil
}

var testCompany = models.ReceiptCompany{Name: "JAYISAAC AI Automation", Email: "support@jayisaac.ai"}

func newService(provider *fakeProvider, mailer *fakeMailer) *service.CheckoutService {
	return service.NewCheckoutService(provider, mailer, testCompany, zap.NewNop())
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	t.Run("personal", func(t *testing.T) {
		t.Parallel()
		profile := service.ResolveProfile(models.AccountTypePersonal, models.FormData{
			Email:         "a@b.com",
			Name:          "A",
			WebsiteURL:    "https://a.example",
			BusinessEmail: "x@y.com",
			CompanyName:   "Y Co",
		})
		assert.Equal(t, models.CustomerProfile{
			Email:      "a@b.com",
			Name:       "A",
			WebsiteURL: "https://a.example",
		}, profile)
	})

	t.Run("business", func(t *testing.T) {
		t.Parallel()
		profile := service.ResolveProfile(models.AccountTypeBusiness, models.FormData{
			Email:              "a@b.com",
			Name:               "A",
			BusinessEmail:      "x@y.com",
			CompanyName:        "Y Co",
			BusinessWebsiteURL: "https://y.example",
		})
		assert.Equal(t, models.CustomerProfile{
			Email:      "x@y.com",
			Name:       "Y Co",
			WebsiteURL: "https://y.example",
		}, profile)
	})

	t.Run("missing website resolves to empty string", func(t *testing.T) {
		t.Parallel()
		profile := service.ResolveProfile(models.AccountTypePersonal, models.FormData{
			Email: "a@b.com",
			Name:  "A",
		})
		assert.Equal(t, "", profile.WebsiteURL)
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Parallel()

	t.Run("basic purchase charges the catalog amount", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{}
		svc := newService(provider, &fakeMailer{})

		resp, err := svc.CreatePaymentIntent(models.CheckoutRequest{
			Plan:        "basic-purchase",
			AccountType: models.AccountTypePersonal,
			FormData:    models.FormData{Email: "a@b.com", Name: "A"},
			Amount:      2000, // client-supplied amount is dead input
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_test_1_secret", resp.ClientSecret)

		require.Len(t, provider.customers, 1)
		assert.Equal(t, "a@b.com", provider.customers[0].Email)
		assert.Equal(t, "A", provider.customers[0].Name)
		assert.Equal(t, "", provider.customers[0].WebsiteURL)

		require.Len(t, provider.intents, 1)
		assert.Equal(t, int64(79900), provider.intents[0].AmountCents)
		assert.Equal(t, "cad", provider.intents[0].Currency)
		assert.Equal(t, "cus_test_1", provider.intents[0].CustomerID)
		assert.Equal(t, "Basic One-Time Purchase", provider.intents[0].Description)
	})

	t.Run("unknown plan fails before any remote call", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{}
		svc := newService(provider, &fakeMailer{})

		_, err := svc.CreatePaymentIntent(models.CheckoutRequest{Plan: "bogus"})
		assert.ErrorIs(t, err, catalog.ErrInvalidPlan)
		assert.Empty(t, provider.customers)
		assert.Empty(t, provider.intents)
	})

	t.Run("recurring plan ids are rejected", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{}
		svc := newService(provider, &fakeMailer{})

		_, err := svc.CreatePaymentIntent(models.CheckoutRequest{Plan: "basic-monthly"})
		assert.ErrorIs(t, err, catalog.ErrInvalidPlan)
		assert.Empty(t, provider.customers)
	})

	t.Run("customer creation failure stops the flow", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{customerErr: errors.New("Invalid email address.")}
		svc := newService(provider, &fakeMailer{})

		_, err := svc.CreatePaymentIntent(models.CheckoutRequest{
			Plan:        "basic-purchase",
			AccountType: models.AccountTypePersonal,
			FormData:    models.FormData{Email: "not-an-email"},
		})
		require.EqualError(t, err, "Invalid email address.")
		assert.Empty(t, provider.intents)
	})
}

func TestCreateSubscription(t *testing.T) {
	t.Parallel()

	t.Run("enterprise monthly for a business account", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{}
		svc := newService(provider, &fakeMailer{})

		resp, err := svc.CreateSubscription(models.CheckoutRequest{
			Plan:        "enterprise-monthly",
			AccountType: models.AccountTypeBusiness,
			FormData:    models.FormData{BusinessEmail: "x@y.com", CompanyName: "Y Co"},
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_sub_1_secret", resp.ClientSecret)

		require.Len(t, provider.customers, 1)
		assert.Equal(t, "x@y.com", provider.customers[0].Email)
		assert.Equal(t, "Y Co", provider.customers[0].Name)

		require.Len(t, provider.subscriptions, 1)
		assert.Equal(t, "cus_test_1", provider.subscriptions[0].CustomerID)
		assert.Equal(t, "price_1S94dt40fBt8mCex_enterprise_monthly", provider.subscriptions[0].PriceReference)
	})

	t.Run("one-time plan ids are rejected", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{}
		svc := newService(provider, &fakeMailer{})

		_, err := svc.CreateSubscription(models.CheckoutRequest{Plan: "basic-purchase"})
		assert.ErrorIs(t, err, catalog.ErrInvalidPlan)
		assert.Empty(t, provider.customers)
		assert.Empty(t, provider.subscriptions)
	})

	t.Run("subscription failure surfaces the provider message", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{subscriptionErr: errors.New("No such price: price_1S94dt40fBt8mCex_basic_monthly")}
		svc := newService(provider, &fakeMailer{})

		_, err := svc.CreateSubscription(models.CheckoutRequest{
			Plan:        "basic-monthly",
			AccountType: models.AccountTypePersonal,
			FormData:    models.FormData{Email: "a@b.com", Name: "A"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No such price")
		// customer was already created; no rollback is attempted
		assert.Len(t, provider.customers, 1)
	})
}

func TestSendReceipt(t *testing.T) {
	t.Parallel()

	t.Run("emails the purchase details", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{storedIntent: &payment.PaymentIntent{
			ID:            "pi_test_9",
			AmountCents:   79900,
			Currency:      "cad",
			Description:   "Basic One-Time Purchase",
			CustomerEmail: "a@b.com",
			CustomerName:  "A",
			Status:        "succeeded",
		}}
		mailer := &fakeMailer{}
		svc := newService(provider, mailer)

		require.NoError(t, svc.SendReceipt("pi_test_9"))

		require.Len(t, mailer.sent, 1)
		receipt := mailer.sent[0]
		assert.Equal(t, testCompany, receipt.Company)
		assert.Equal(t, "a@b.com", receipt.Customer.Email)
		assert.Equal(t, "A", receipt.Customer.Name)
		assert.Equal(t, "pi_test_9", receipt.Transaction.ID)
		assert.Equal(t, "CAD $799.00", receipt.Transaction.Total)
		require.Len(t, receipt.Transaction.Items, 1)
		assert.Equal(t, "Basic One-Time Purchase", receipt.Transaction.Items[0].Description)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{getIntentErr: errors.New("No such payment_intent: pi_missing")}
		mailer := &fakeMailer{}
		svc := newService(provider, mailer)

		err := svc.SendReceipt("pi_missing")
		require.Error(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("mail failure is returned", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{storedIntent: &payment.PaymentIntent{ID: "pi_test_9", CustomerEmail: "a@b.com"}}
		mailer := &fakeMailer{sendErr: errors.New("resend: unauthorized")}
		svc := newService(provider, mailer)

		err := svc.SendReceipt("pi_test_9")
		require.EqualError(t, err, "resend: unauthorized")
	})
}
