// Package notify classifies payment-platform notification emails and
// extracts payer name and amount from their subject lines.
package notify

import (
	"strings"

	"github.com/shopspring/decimal"

	"payfirm/internal/domain"
)

// Parsed is the result of a successful subject-line parse.
type Parsed struct {
	PayerName string
	Amount    decimal.Decimal
	Platform  domain.Platform
}

// Parse classifies the sender address and matches the subject against that
// platform's known patterns. It returns false for unrecognized senders,
// subjects that match no pattern, and non-positive amounts; none of these
// are errors, the row is simply skipped. Subject formats drift over time,
// so one unparseable row must never abort a whole scan.
func Parse(sender, subject string) (Parsed, bool) {
	addr := strings.ToLower(sender)

	switch {
	case strings.Contains(addr, "paypal"):
		return matchSubject(domain.PlatformPayPal, subject, paypalPatterns)
	case strings.Contains(addr, "venmo"):
		return matchSubject(domain.PlatformVenmo, subject, venmoPatterns)
	case strings.Contains(addr, "wise"), strings.Contains(addr, "transferwise"):
		return matchSubject(domain.PlatformWise, subject, wisePatterns)
	}
	return Parsed{}, false
}

func matchSubject(platform domain.Platform, subject string, patterns []subjectPattern) (Parsed, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(subject)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[p.amountGroup])
		if err != nil || amount.Sign() <= 0 {
			return Parsed{}, false
		}
		return Parsed{
			PayerName: strings.TrimSpace(m[p.nameGroup]),
			Amount:    amount,
			Platform:  platform,
		}, true
	}
	return Parsed{}, false
}

// parseAmount accepts decimal amounts with thousands separators ("1,234.56").
func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
}
