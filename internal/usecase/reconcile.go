package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"payfirm/internal/domain"
)

// ReconcileOptions parameterizes one run.
type ReconcileOptions struct {
	// RosterPath is the roster CSV to load. Ignored with UseCachedRoster.
	RosterPath string
	// UseCachedRoster reuses the last cached roster instead of loading.
	UseCachedRoster bool
	AutoScroll      bool
	// Zero bounds mean unbounded in that direction.
	From time.Time
	To   time.Time
}

// ReconcileUseCase orchestrates one run: load roster, extract payments
// from the document, match and aggregate, record the run in history.
type ReconcileUseCase struct {
	roster    RosterRepository
	extractor *Extractor
	history   HistoryStore
	cache     RosterCache
	log       *slog.Logger
}

// NewReconcileUseCase wires the usecase. history and cache may be nil, in
// which case runs are not recorded and the roster is never cached.
func NewReconcileUseCase(roster RosterRepository, extractor *Extractor, history HistoryStore, cache RosterCache, logger *slog.Logger) *ReconcileUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileUseCase{
		roster:    roster,
		extractor: extractor,
		history:   history,
		cache:     cache,
		log:       logger,
	}
}

// Reconcile performs the full run. A roster or document failure is fatal;
// zero extracted payments is a valid outcome; a history or cache write
// failure is logged and does not fail the run, the caller already holds
// the outcome.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, opts ReconcileOptions) (*domain.AggregateOutcome, error) {
	roster, err := uc.loadRoster(ctx, opts)
	if err != nil {
		return nil, err
	}

	payments, err := uc.extractor.Extract(ctx, ExtractOptions{
		AutoScroll: opts.AutoScroll,
		From:       opts.From,
		To:         opts.To,
	})
	if err != nil {
		return nil, fmt.Errorf("could not extract payments: %w", err)
	}
	if len(payments) == 0 {
		uc.log.Info("extraction produced no payments in the requested window")
	}

	outcome := MatchAndAggregate(payments, roster)

	if uc.history != nil {
		entry := domain.RunEntry{
			ID:         uuid.NewString(),
			RunAt:      time.Now().UTC(),
			FromFilter: formatBound(opts.From),
			ToFilter:   formatBound(opts.To),
			Results:    outcome.Results,
			Unmatched:  outcome.Unmatched,
		}
		if err := uc.history.SaveRun(ctx, entry); err != nil {
			uc.log.Warn("failed to record run in history", "error", err)
		}
	}

	return &outcome, nil
}

func (uc *ReconcileUseCase) loadRoster(ctx context.Context, opts ReconcileOptions) ([]domain.RosterEntry, error) {
	if opts.UseCachedRoster {
		if uc.cache == nil {
			return nil, fmt.Errorf("no roster cache configured")
		}
		snapshot, err := uc.cache.LoadRoster(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not load cached roster: %w", err)
		}
		if snapshot == nil || len(snapshot.Rows) == 0 {
			return nil, fmt.Errorf("no cached roster available, load one first")
		}
		return snapshot.Rows, nil
	}

	roster, err := uc.roster.LoadRoster(ctx, opts.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("could not load roster: %w", err)
	}
	if uc.cache != nil {
		snapshot := domain.RosterSnapshot{
			Rows:     roster,
			FileName: opts.RosterPath,
			CachedAt: time.Now().UTC(),
		}
		if err := uc.cache.SaveRoster(ctx, snapshot); err != nil {
			uc.log.Warn("failed to cache roster", "error", err)
		}
	}
	return roster, nil
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
