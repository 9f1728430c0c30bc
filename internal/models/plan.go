package models

type PlanKind string

const (
	PlanKindOneTime   PlanKind = "one_time"
	PlanKindRecurring PlanKind = "recurring"
)

// Plan is a single row of the static plan catalog. For one-time plans
// AmountCents and Description are set; for recurring plans only
// PriceReference is set.
type Plan struct {
	ID             string   `json:"id"`
	Kind           PlanKind `json:"kind"`
	AmountCents    int64    `json:"amount_cents,omitempty"`
	Currency       string   `json:"currency"`
	Description    string   `json:"description,omitempty"`
	PriceReference string   `json:"price_reference,omitempty"`
}
