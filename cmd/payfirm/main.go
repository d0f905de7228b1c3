package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"payfirm/internal/domain"
	"payfirm/internal/gateway"
	"payfirm/internal/usecase"
)

func main() {
	// Optional .env for defaults; absence is fine.
	_ = godotenv.Load()

	rosterPath := flag.String("roster", os.Getenv("PAYFIRM_ROSTER"), "Path to the recipient roster CSV file")
	snapshotPath := flag.String("snapshot", "", "Path to a JSON export of notification rows")
	fromStr := flag.String("from", "", "Lower time bound (RFC 3339 or YYYY-MM-DD); empty means unbounded")
	toStr := flag.String("to", "", "Upper time bound (RFC 3339 or YYYY-MM-DD); empty means unbounded")
	autoScroll := flag.Bool("autoscroll", false, "Keep forcing more content to load before finalizing the scan")
	outPath := flag.String("out", "", "Write the results CSV to this file or directory")
	dbPath := flag.String("db", envOr("PAYFIRM_DB", "payfirm.db"), "SQLite database for run history and roster cache")
	noPersist := flag.Bool("no-persist", false, "Keep run history and roster cache in memory only")
	cachedRoster := flag.Bool("cached-roster", false, "Reuse the last cached roster instead of -roster")
	showHistory := flag.Bool("history", false, "Print stored runs (newest first) and exit")
	clearHistory := flag.Bool("clear-history", false, "Clear stored runs and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// --- Dependency injection (wiring the application) ---
	var (
		history usecase.HistoryStore
		cache   usecase.RosterCache
	)
	if *noPersist {
		store := gateway.NewMemoryStore()
		history, cache = store, store
	} else {
		store, err := gateway.OpenSQLiteStore(*dbPath)
		if err != nil {
			logger.Error("cannot open store database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		history, cache = store, store
	}

	ctx := context.Background()

	if *clearHistory {
		if err := history.ClearRuns(ctx); err != nil {
			logger.Error("failed to clear run history", "error", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}
	if *showHistory {
		runs, err := history.LoadRuns(ctx)
		if err != nil {
			logger.Error("failed to load run history", "error", err)
			os.Exit(1)
		}
		printJSON(runs)
		return
	}

	if *rosterPath == "" && !*cachedRoster {
		fmt.Fprintln(os.Stderr, "Error: -roster is required (or use -cached-roster to reuse the last loaded roster).")
		flag.Usage()
		os.Exit(1)
	}
	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -snapshot is required; export the notification rows first.")
		flag.Usage()
		os.Exit(1)
	}

	from, err := parseBound(*fromStr)
	if err != nil {
		logger.Error("invalid -from bound", "value", *fromStr, "error", err)
		os.Exit(1)
	}
	to, err := parseBound(*toStr)
	if err != nil {
		logger.Error("invalid -to bound", "value", *toStr, "error", err)
		os.Exit(1)
	}

	doc, err := gateway.NewSnapshotDocument(*snapshotPath)
	if err != nil {
		logger.Error("no notification document available", "error", err)
		os.Exit(1)
	}

	extractor := usecase.NewExtractor(doc, logger)
	reconcile := usecase.NewReconcileUseCase(gateway.NewCSVRosterRepository(), extractor, history, cache, logger)

	outcome, err := reconcile.Reconcile(ctx, usecase.ReconcileOptions{
		RosterPath:      *rosterPath,
		UseCachedRoster: *cachedRoster,
		AutoScroll:      *autoScroll,
		From:            from,
		To:              to,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFormat):
			logger.Error("roster format error", "error", err)
		case errors.Is(err, domain.ErrNoDocument):
			logger.Error("no notification document available", "error", err)
		default:
			logger.Error("reconciliation failed", "error", err)
		}
		os.Exit(1)
	}

	if len(outcome.Results) == 0 && len(outcome.Unmatched) == 0 {
		logger.Info("no payments found in the requested window")
	}

	printJSON(outcome)

	if *outPath != "" {
		written, err := gateway.WriteResultsFile(*outPath, outcome.Results)
		if err != nil {
			logger.Error("failed to write results CSV", "error", err)
			os.Exit(1)
		}
		logger.Info("results CSV written", "path", written)
	}
}

// parseBound accepts an RFC 3339 instant or a bare date. Empty input means
// an unbounded side and returns the zero time.
func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("failed to render JSON output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
