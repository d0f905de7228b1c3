package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"payfirm/internal/domain"
	"payfirm/internal/notify"
)

const (
	// DefaultWaitTimeout bounds the non-scrolling wait for rows to appear.
	DefaultWaitTimeout = 3 * time.Second
	// DefaultScrollPause is the settle time between auto-scroll rounds.
	DefaultScrollPause = 1500 * time.Millisecond
	// stableRoundsToStop ends the auto-scroll loop once the extracted
	// count has not grown for this many consecutive rounds.
	stableRoundsToStop = 2
)

// Display-timestamp layouts accepted from notification rows. A timestamp
// matching none of them leaves the record with an empty timestamp, which
// exempts the row from time-window filtering.
var timestampLayouts = []string{
	time.RFC3339,
	"Mon, Jan 2, 2006, 3:04 PM",
	"Jan 2, 2006, 3:04 PM",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ExtractOptions controls one extraction pass. Zero From/To bounds mean
// unbounded in that direction.
type ExtractOptions struct {
	AutoScroll bool
	From       time.Time
	To         time.Time
}

// Extractor scans a Document's notification rows into payment records:
// parse each row, apply the time window, and suppress exact duplicates on
// (platform, payer, amount, timestamp) so overlapping row sets across
// successive scans collapse to one record each.
type Extractor struct {
	doc Document
	log *slog.Logger

	// Overridable in tests; production code keeps the defaults.
	WaitTimeout time.Duration
	ScrollPause time.Duration
}

// NewExtractor creates an extractor over doc. A nil logger falls back to
// slog.Default.
func NewExtractor(doc Document, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		doc:         doc,
		log:         logger,
		WaitTimeout: DefaultWaitTimeout,
		ScrollPause: DefaultScrollPause,
	}
}

// Extract runs one extraction pass. Zero extracted records is a valid
// outcome, not an error; only failure to read the document at all is
// surfaced.
func (e *Extractor) Extract(ctx context.Context, opts ExtractOptions) ([]domain.PaymentRecord, error) {
	seen := make(map[string]bool)
	records := make([]domain.PaymentRecord, 0)

	if opts.AutoScroll {
		if err := e.scrollUntilStable(ctx, opts, seen, &records); err != nil {
			return nil, err
		}
	} else {
		if err := e.scan(ctx, opts, seen, &records); err != nil {
			return nil, err
		}
		if len(records) == 0 {
			if err := e.waitForRows(ctx, opts, seen, &records); err != nil {
				return nil, err
			}
		}
		return records, nil
	}

	// One final scan after the loop settles.
	if err := e.scan(ctx, opts, seen, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// waitForRows is the non-scrolling acquisition path when the first scan
// came back empty: wait for document mutations for up to WaitTimeout,
// rescanning on each, and return whatever is present when time runs out.
func (e *Extractor) waitForRows(ctx context.Context, opts ExtractOptions, seen map[string]bool, records *[]domain.PaymentRecord) error {
	deadline := time.Now().Add(e.WaitTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return e.scan(ctx, opts, seen, records)
		}
		waitCtx, cancel := context.WithTimeout(ctx, remaining)
		err := e.doc.WaitForChange(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Timed out waiting; take whatever is present now.
			return e.scan(ctx, opts, seen, records)
		}
		if err := e.scan(ctx, opts, seen, records); err != nil {
			return err
		}
		if len(*records) > 0 {
			return nil
		}
	}
}

// scrollUntilStable repeatedly forces more content to load and rescans,
// stopping once the extracted count has not grown for two consecutive
// rounds. A bounded stabilization loop, not an event-driven wait: it
// tolerates arbitrary host content-loading latency and always terminates.
func (e *Extractor) scrollUntilStable(ctx context.Context, opts ExtractOptions, seen map[string]bool, records *[]domain.PaymentRecord) error {
	lastCount := 0
	stableRounds := 0
	for stableRounds < stableRoundsToStop {
		if err := e.doc.ScrollToEnd(ctx); err != nil {
			return fmt.Errorf("could not scroll document: %w", err)
		}
		select {
		case <-time.After(e.ScrollPause):
		case <-ctx.Done():
			return ctx.Err()
		}
		if err := e.scan(ctx, opts, seen, records); err != nil {
			return err
		}
		if len(*records) == lastCount {
			stableRounds++
		} else {
			stableRounds = 0
			lastCount = len(*records)
		}
	}
	return nil
}

// scan reads the currently rendered rows and folds new payment records
// into the accumulator.
func (e *Extractor) scan(ctx context.Context, opts ExtractOptions, seen map[string]bool, records *[]domain.PaymentRecord) error {
	rows, err := e.doc.Rows(ctx)
	if err != nil {
		return fmt.Errorf("could not read document rows: %w", err)
	}

	for _, row := range rows {
		parsed, ok := notify.Parse(row.Sender, row.Subject)
		if !ok {
			e.log.Debug("skipping unparseable notification row",
				"sender", row.Sender, "subject", row.Subject)
			continue
		}

		timestamp, ts := normalizeTimestamp(row.Timestamp)
		if !ts.IsZero() {
			if !opts.From.IsZero() && ts.Before(opts.From) {
				continue
			}
			if !opts.To.IsZero() && ts.After(opts.To) {
				continue
			}
		}

		key := string(parsed.Platform) + "|" + parsed.PayerName + "|" + parsed.Amount.String() + "|" + timestamp
		if seen[key] {
			continue
		}
		seen[key] = true

		*records = append(*records, domain.PaymentRecord{
			PayerName: parsed.PayerName,
			Amount:    parsed.Amount,
			Timestamp: timestamp,
			Platform:  parsed.Platform,
		})
	}
	return nil
}

// normalizeTimestamp parses a display timestamp into RFC 3339. Malformed
// or missing values yield an empty string and a zero time; such rows are
// kept and never time-filtered.
func normalizeTimestamp(raw string) (string, time.Time) {
	if raw == "" {
		return "", time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), t
		}
	}
	return "", time.Time{}
}
