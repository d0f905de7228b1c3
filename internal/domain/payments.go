package domain

import "github.com/shopspring/decimal"

// Platform identifies one of the supported payment-notification sources.
type Platform string

const (
	PlatformPayPal Platform = "paypal"
	PlatformVenmo  Platform = "venmo"
	PlatformWise   Platform = "wise"
)

// Label returns the human-readable platform name used in exports.
// Unknown codes are echoed back as-is.
func (p Platform) Label() string {
	switch p {
	case PlatformPayPal:
		return "PayPal"
	case PlatformVenmo:
		return "Venmo"
	case PlatformWise:
		return "Wise"
	}
	return string(p)
}

// RosterEntry is one known recipient loaded from the roster spreadsheet.
// Username is the stable key used everywhere downstream; FullName is a
// human-readable "first ... last" name with arbitrary middle tokens.
type RosterEntry struct {
	Username string `json:"reddit_username"`
	FullName string `json:"full_name"`
}

// NotificationRow is one rendered notification as exposed by the document
// collaborator: a sender address, a subject line, and an optional display
// timestamp.
type NotificationRow struct {
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp,omitempty"`
}

// PaymentRecord is one payment extracted from a notification row.
// Amount is strictly positive; Timestamp is RFC 3339 or empty when the
// row carried no parseable timestamp.
type PaymentRecord struct {
	PayerName string          `json:"payer_name"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp,omitempty"`
	Platform  Platform        `json:"platform"`
}
