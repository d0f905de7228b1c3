package domain

import "github.com/shopspring/decimal"

// MatchedResult is the aggregated ledger line for one roster entry that
// received at least one payment. TotalAmount is re-rounded to 2 fractional
// digits after every fold, not only at the end.
type MatchedResult struct {
	Username     string          `json:"reddit_username"`
	FullName     string          `json:"full_name"`
	TotalAmount  decimal.Decimal `json:"total_amount_usd"`
	PaymentCount int             `json:"payment_count"`
	Platforms    []Platform      `json:"platforms"`
}

// AggregateOutcome is the result of matching a payment list against a
// roster. Results are sorted by TotalAmount descending; Unmatched holds
// raw payer names in first-occurrence order with exact-string duplicates
// removed. Every input payment is accounted for in exactly one of the two.
type AggregateOutcome struct {
	Results   []MatchedResult `json:"results"`
	Unmatched []string        `json:"unmatched"`
}
