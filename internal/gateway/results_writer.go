package gateway

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"payfirm/internal/domain"
)

var exportHeader = []string{"reddit_username", "full_name", "platforms", "total_amount_usd", "payment_count"}

// BuildCSVString renders matched results as an RFC 4180 CSV string: one row
// per result in the given order, platforms joined as human labels, amounts
// with exactly 2 fractional digits, CRLF line endings throughout and no
// trailing newline. An empty result list yields just the header row.
//
// encoding/csv is not used here on purpose: it appends a trailing record
// separator, and the export contract requires none.
func BuildCSVString(results []domain.MatchedResult) string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, strings.Join(exportHeader, ","))

	for _, r := range results {
		labels := make([]string, len(r.Platforms))
		for i, p := range r.Platforms {
			labels[i] = p.Label()
		}
		cells := []string{
			quoteCell(r.Username),
			quoteCell(r.FullName),
			quoteCell(strings.Join(labels, ", ")),
			quoteCell(r.TotalAmount.StringFixed(2)),
			quoteCell(strconv.Itoa(r.PaymentCount)),
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\r\n")
}

// WriteResultsFile writes the CSV export to path. When path is an existing
// directory the file is named payfirm-results-YYYY-MM-DD.csv inside it.
// The path actually written is returned.
func WriteResultsFile(path string, results []domain.MatchedResult) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		name := fmt.Sprintf("payfirm-results-%s.csv", time.Now().Format(time.DateOnly))
		path = filepath.Join(path, name)
	}
	if err := os.WriteFile(path, []byte(BuildCSVString(results)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return path, nil
}

// quoteCell wraps a cell in double quotes when it contains a comma, quote,
// or newline, doubling internal quotes per RFC 4180.
func quoteCell(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
