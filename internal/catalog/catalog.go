// Package catalog holds the static plan tables. One-time purchases and
// recurring subscriptions live in separate catalogs with disjoint plan IDs;
// each endpoint knows which catalog it sells from.
package catalog

import (
	"errors"

	"github.com/jayisaacai/checkout-backend/internal/models"
)

var ErrInvalidPlan = errors.New("invalid plan selected")

// Currency for all one-time purchases.
const Currency = "cad"

type Catalog struct {
	plans map[string]models.Plan
}

func (c *Catalog) Lookup(planID string) (models.Plan, error) {
	plan, ok := c.plans[planID]
	if !ok {
		return models.Plan{}, ErrInvalidPlan
	}
	return plan, nil
}

func (c *Catalog) Has(planID string) bool {
	_, ok := c.plans[planID]
	return ok
}

// OneTime returns the catalog of one-time purchase plans.
func OneTime() *Catalog {
	return &Catalog{plans: map[string]models.Plan{
		"basic-purchase": {
			ID:          "basic-purchase",
			Kind:        models.PlanKindOneTime,
			AmountCents: 79900,
			Currency:    Currency,
			Description: "Basic One-Time Purchase",
		},
		"standard-purchase": {
			ID:          "standard-purchase",
			Kind:        models.PlanKindOneTime,
			AmountCents: 1199900,
			Currency:    Currency,
			Description: "Standard One-Time Purchase",
		},
		"enterprise-purchase": {
			ID:          "enterprise-purchase",
			Kind:        models.PlanKindOneTime,
			AmountCents: 2500000,
			Currency:    Currency,
			Description: "Enterprise One-Time Purchase",
		},
	}}
}

// Recurring returns the catalog of monthly subscription plans. The price
// references point at prices configured in the provider dashboard.
func Recurring() *Catalog {
	return &Catalog{plans: map[string]models.Plan{
		"basic-monthly": {
			ID:             "basic-monthly",
			Kind:           models.PlanKindRecurring,
			Currency:       Currency,
			PriceReference: "price_1S94dt40fBt8mCex_basic_monthly",
		},
		"standard-monthly": {
			ID:             "standard-monthly",
			Kind:           models.PlanKindRecurring,
			Currency:       Currency,
			PriceReference: "price_1S94dt40fBt8mCex_standard_monthly",
		},
		"enterprise-monthly": {
			ID:             "enterprise-monthly",
			Kind:           models.PlanKindRecurring,
			Currency:       Currency,
			PriceReference: "price_1S94dt40fBt8mCex_enterprise_monthly",
		},
	}}
}
