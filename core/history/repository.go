package history

import (
	"context"
	"fmt"
	"time"

	"garden-assets/core/assets"
	"garden-assets/core/database"

	"gorm.io/gorm"
)

// DefaultLimit caps Recent when a non-positive limit is given.
const DefaultLimit = 50

// Repository stores load events through gorm.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ assets.Recorder = (*Repository)(nil)

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Migrate creates or updates the load event table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&LoadEvent{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Record stores one load event.
func (r *Repository) Record(ctx context.Context, event assets.LoadEvent) error {
	row := FromAssets(event, r.now())
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record load of %s: %w", event.Model, err)
	}
	return nil
}

// Recent returns the newest events first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]LoadEvent, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var events []LoadEvent
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query load history: %w", err)
	}
	return events, nil
}

// Summary counts events per model and outcome.
func (r *Repository) Summary(ctx context.Context) ([]OutcomeCount, error) {
	var counts []OutcomeCount
	err := r.db.WithContext(ctx).
		Model(&LoadEvent{}).
		Select("model, outcome, COUNT(*) AS total").
		Group("model, outcome").
		Order("model").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize load history: %w", err)
	}
	return counts, nil
}

// Verify returns the columns the load event table is missing.
func (r *Repository) Verify(ctx context.Context) ([]string, error) {
	return database.MissingColumns(r.db.WithContext(ctx), TableName, Columns())
}
