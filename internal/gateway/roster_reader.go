package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"payfirm/internal/domain"
)

// Header aliases accepted for the two roster columns, in priority order.
var (
	usernameAliases = []string{"reddit_username", "username"}
	fullNameAliases = []string{"full_name", "name"}
)

// CSVRosterRepository loads recipient rosters from CSV files.
type CSVRosterRepository struct{}

// NewCSVRosterRepository creates a new repository instance.
func NewCSVRosterRepository() *CSVRosterRepository {
	return &CSVRosterRepository{}
}

// LoadRoster reads and parses the roster CSV file at path.
func (r *CSVRosterRepository) LoadRoster(ctx context.Context, path string) ([]domain.RosterEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file %s: %w", path, err)
	}
	defer file.Close()

	entries, err := r.ParseRoster(file)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}
	return entries, nil
}

// ParseRoster parses raw roster text. The identifier column is the first of
// {reddit_username, username} present and the name column the first of
// {full_name, name}; header matching is case- and spacing-insensitive.
// Rows missing either value after trimming are skipped. Duplicate usernames
// are not rejected here; downstream matching resolves by first-seen order.
func (r *CSVRosterRepository) ParseRoster(src io.Reader) ([]domain.RosterEntry, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrInvalidFormat)
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = normalizeHeader(h)
	}

	usernameCol := resolveColumn(keys, usernameAliases)
	fullNameCol := resolveColumn(keys, fullNameAliases)
	if usernameCol < 0 || fullNameCol < 0 {
		return nil, fmt.Errorf("%w: no reddit_username/username or full_name/name column found", domain.ErrInvalidFormat)
	}

	var entries []domain.RosterEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
		}
		if len(record) <= usernameCol || len(record) <= fullNameCol {
			continue
		}

		username := strings.TrimSpace(record[usernameCol])
		fullName := strings.TrimSpace(record[fullNameCol])
		if username == "" || fullName == "" {
			continue
		}
		entries = append(entries, domain.RosterEntry{Username: username, FullName: fullName})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no data rows with both a username and a full name", domain.ErrInvalidFormat)
	}
	return entries, nil
}

// normalizeHeader lower-cases, trims, and collapses internal whitespace
// runs to single underscores, so "Reddit Username" resolves like
// "reddit_username".
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "_")
}

func resolveColumn(keys, aliases []string) int {
	for _, alias := range aliases {
		for i, k := range keys {
			if k == alias {
				return i
			}
		}
	}
	return -1
}
