package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"payfirm/internal/domain"
)

// SnapshotDocument serves notification rows from a JSON export file. It is
// the offline stand-in for the live page-automation collaborator: the row
// set is fixed, so scrolling is a no-op and no mutations ever arrive.
type SnapshotDocument struct {
	rows []domain.NotificationRow
}

// NewSnapshotDocument loads a JSON array of notification rows from path.
func NewSnapshotDocument(path string) (*SnapshotDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read snapshot %s: %v", domain.ErrNoDocument, path, err)
	}
	var rows []domain.NotificationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: snapshot %s is not a JSON row list: %v", domain.ErrNoDocument, path, err)
	}
	return &SnapshotDocument{rows: rows}, nil
}

// Rows returns the current rendered rows.
func (d *SnapshotDocument) Rows(ctx context.Context) ([]domain.NotificationRow, error) {
	return d.rows, nil
}

// ScrollToEnd is a no-op; a snapshot has no further content to load.
func (d *SnapshotDocument) ScrollToEnd(ctx context.Context) error {
	return nil
}

// WaitForChange blocks until the context ends; a snapshot never mutates.
func (d *SnapshotDocument) WaitForChange(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
