package usecase

import (
	"context"

	"payfirm/internal/domain"
)

// The usecase layer depends on these collaborator interfaces, not on
// concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go

// RosterRepository fetches the recipient roster.
type RosterRepository interface {
	LoadRoster(ctx context.Context, path string) ([]domain.RosterEntry, error)
}

// Document is a live (or snapshotted) rendered notification list, provided
// by the host page-automation collaborator. Rows returns the currently
// rendered rows; successive calls may return overlapping row sets.
// Concurrent use of one Document is not supported.
type Document interface {
	Rows(ctx context.Context) ([]domain.NotificationRow, error)
	// ScrollToEnd commands the document to scroll to its end so more
	// content can materialize.
	ScrollToEnd(ctx context.Context) error
	// WaitForChange blocks until the document mutates or ctx ends.
	WaitForChange(ctx context.Context) error
}

// HistoryStore persists past runs. SaveRun enforces the newest-first cap
// of domain.MaxStoredRuns, evicting oldest entries.
type HistoryStore interface {
	SaveRun(ctx context.Context, entry domain.RunEntry) error
	LoadRuns(ctx context.Context) ([]domain.RunEntry, error)
	ClearRuns(ctx context.Context) error
}

// RosterCache persists the last successfully loaded roster.
type RosterCache interface {
	SaveRoster(ctx context.Context, snapshot domain.RosterSnapshot) error
	LoadRoster(ctx context.Context) (*domain.RosterSnapshot, error)
	ClearRoster(ctx context.Context) error
}
