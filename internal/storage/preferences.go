package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const keySelectedColor = "selected_color"

// PreferenceRepository persists the per-profile view preferences. The
// selected color filter is the one piece of client state that survives
// across sessions; it is stored raw and re-applied on next load without
// re-validation against the then-current color set.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a preference repository over db.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// SelectedColor returns the persisted color filter, or "" when none is set.
func (r *PreferenceRepository) SelectedColor(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE key = ?", keySelectedColor,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading selected color: %w", err)
	}
	return value, nil
}

// SetSelectedColor persists the color filter.
func (r *PreferenceRepository) SetSelectedColor(ctx context.Context, color string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, keySelectedColor, color, color)
	if err != nil {
		return fmt.Errorf("storing selected color: %w", err)
	}
	return nil
}

// ClearSelectedColor removes the persisted filter ("show all").
func (r *PreferenceRepository) ClearSelectedColor(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM preferences WHERE key = ?", keySelectedColor)
	if err != nil {
		return fmt.Errorf("clearing selected color: %w", err)
	}
	return nil
}
