package usecase

import (
	"regexp"
	"sort"
	"strings"

	"payfirm/internal/domain"
)

var (
	nonNameChars   = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// normalizeName prepares a name for comparison: lower-case, strip anything
// that is not a letter, digit, or whitespace, collapse whitespace runs, trim.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = nonNameChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// nameMatches reports whether a payer name can be attributed to a roster
// entry. A payer matches when any of these holds on normalized strings:
//  1. payer equals the full display name;
//  2. the display name has >= 2 tokens and payer equals "<last> <first>";
//  3. first and last display tokens differ, and both appear as substrings
//     of the payer (handles middle initials and extra tokens).
//
// A first-name-only payer never matches under rule 3: first and last must
// differ and both must appear.
func nameMatches(payerName string, entry domain.RosterEntry) bool {
	payer := normalizeName(payerName)
	full := normalizeName(entry.FullName)
	if payer == "" || full == "" {
		return false
	}

	if payer == full {
		return true
	}

	parts := strings.Fields(full)
	first := parts[0]
	last := parts[len(parts)-1]

	if len(parts) >= 2 && payer == last+" "+first {
		return true
	}
	if first != last && strings.Contains(payer, first) && strings.Contains(payer, last) {
		return true
	}
	return false
}

// MatchAndAggregate attributes each payment to a roster entry by name and
// folds it into that entry's ledger line. The roster is scanned in its
// given order and the first matching entry wins; ambiguous payer names are
// resolved by roster order, not name specificity. Unmatched payer names
// are collected verbatim, first occurrence only.
//
// Totals are re-rounded to 2 fractional digits after every fold so that
// results reproduce incremental per-payment rounding rather than a single
// final rounding of the raw sum.
func MatchAndAggregate(payments []domain.PaymentRecord, roster []domain.RosterEntry) domain.AggregateOutcome {
	byUsername := make(map[string]*domain.MatchedResult)
	var foldOrder []string

	unmatched := make([]string, 0)
	seenUnmatched := make(map[string]bool)

	for _, payment := range payments {
		var hit *domain.RosterEntry
		for i := range roster {
			if nameMatches(payment.PayerName, roster[i]) {
				hit = &roster[i]
				break
			}
		}

		if hit == nil {
			if !seenUnmatched[payment.PayerName] {
				seenUnmatched[payment.PayerName] = true
				unmatched = append(unmatched, payment.PayerName)
			}
			continue
		}

		result, ok := byUsername[hit.Username]
		if !ok {
			result = &domain.MatchedResult{
				Username: hit.Username,
				FullName: hit.FullName,
			}
			byUsername[hit.Username] = result
			foldOrder = append(foldOrder, hit.Username)
		}
		result.TotalAmount = result.TotalAmount.Add(payment.Amount).Round(2)
		result.PaymentCount++
		if !containsPlatform(result.Platforms, payment.Platform) {
			result.Platforms = append(result.Platforms, payment.Platform)
		}
	}

	results := make([]domain.MatchedResult, 0, len(foldOrder))
	for _, username := range foldOrder {
		results = append(results, *byUsername[username])
	}
	// Strictly descending by total; ties keep first-fold order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalAmount.GreaterThan(results[j].TotalAmount)
	})

	return domain.AggregateOutcome{Results: results, Unmatched: unmatched}
}

func containsPlatform(platforms []domain.Platform, p domain.Platform) bool {
	for _, have := range platforms {
		if have == p {
			return true
		}
	}
	return false
}
