package models

type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
)

// FormData carries the raw checkout form fields. Which fields are used
// depends on the account type; the rest are ignored.
type FormData struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	WebsiteURL         string `json:"websiteUrl"`
	BusinessEmail      string `json:"businessEmail"`
	CompanyName        string `json:"companyName"`
	BusinessWebsiteURL string `json:"businessWebsiteUrl"`
}

type CheckoutRequest struct {
	Plan        string      `json:"plan" validate:"required"`
	AccountType AccountType `json:"account_type" validate:"required,account_type"`
	FormData    FormData    `json:"form_data"`

	// Some versions of the checkout page post an amount. Pricing is
	// decided by the plan catalog on the server, so the field is ignored.
	Amount int64 `json:"amount,omitempty"`
}

// CustomerProfile is the normalized identity sent to the payment provider.
type CustomerProfile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ReceiptRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}
