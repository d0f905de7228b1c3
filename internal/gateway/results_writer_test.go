package gateway

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"payfirm/internal/domain"
)

func sampleResult(mutate func(*domain.MatchedResult)) domain.MatchedResult {
	r := domain.MatchedResult{
		Username:     "johndoe",
		FullName:     "John Doe",
		TotalAmount:  decimal.RequireFromString("20"),
		PaymentCount: 1,
		Platforms:    []domain.Platform{domain.PlatformPayPal},
	}
	if mutate != nil {
		mutate(&r)
	}
	return r
}

func TestBuildCSVString(t *testing.T) {
	t.Run("empty results yield exactly the header row", func(t *testing.T) {
		csv := BuildCSVString(nil)
		assert.Equal(t, "reddit_username,full_name,platforms,total_amount_usd,payment_count", csv)
	})

	t.Run("formats a single result row", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(nil)})
		lines := strings.Split(csv, "\r\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "johndoe,John Doe,PayPal,20.00,1", lines[1])
	})

	t.Run("joins platform labels with comma and space", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(func(r *domain.MatchedResult) {
			r.Platforms = []domain.Platform{domain.PlatformPayPal, domain.PlatformVenmo, domain.PlatformWise}
		})})
		assert.Contains(t, csv, `"PayPal, Venmo, Wise"`)
	})

	t.Run("unknown platform codes fall back to the raw code", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(func(r *domain.MatchedResult) {
			r.Platforms = []domain.Platform{domain.Platform("zelle")}
		})})
		assert.Contains(t, csv, "zelle")
	})

	t.Run("amounts always carry two fractional digits", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(func(r *domain.MatchedResult) {
			r.TotalAmount = decimal.RequireFromString("7.5")
		})})
		assert.Contains(t, csv, "7.50")
	})

	t.Run("quotes cells containing commas", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(func(r *domain.MatchedResult) {
			r.FullName = "Doe, John"
		})})
		assert.Contains(t, csv, `"Doe, John"`)
	})

	t.Run("doubles internal quotes per RFC 4180", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(func(r *domain.MatchedResult) {
			r.FullName = `John "JD" Doe`
		})})
		assert.Contains(t, csv, `"John ""JD"" Doe"`)
	})

	t.Run("uses CRLF line endings with no trailing newline", func(t *testing.T) {
		csv := BuildCSVString([]domain.MatchedResult{sampleResult(nil), sampleResult(func(r *domain.MatchedResult) {
			r.Username = "janeroe"
		})})
		assert.Len(t, strings.Split(csv, "\r\n"), 3)
		assert.False(t, strings.HasSuffix(csv, "\r\n"))
		assert.False(t, strings.Contains(strings.ReplaceAll(csv, "\r\n", ""), "\n"))
	})
}

func TestWriteResultsFile(t *testing.T) {
	t.Run("writes to an explicit file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		written, err := WriteResultsFile(path, []domain.MatchedResult{sampleResult(nil)})
		assert.NoError(t, err)
		assert.Equal(t, path, written)

		data, err := os.ReadFile(written)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "johndoe,John Doe,PayPal,20.00,1")
	})

	t.Run("derives a dated filename inside a directory", func(t *testing.T) {
		dir := t.TempDir()

		written, err := WriteResultsFile(dir, nil)
		assert.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(written))
		assert.Contains(t, filepath.Base(written), "payfirm-results-")
	})
}
