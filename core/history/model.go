package history

import (
	"time"

	"garden-assets/core/assets"

	"github.com/google/uuid"
)

// TableName is the table load events are stored in.
const TableName = "garden_load_events"

// LoadEvent is one resolved model load.
type LoadEvent struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Model      string    `gorm:"column:model;size:255;index" json:"model"`
	Outcome    string    `gorm:"column:outcome;size:16;index" json:"outcome"`
	Attempts   int       `gorm:"column:attempts" json:"attempts"`
	DurationMs int64     `gorm:"column:duration_ms" json:"duration_ms"`
	Error      string    `gorm:"column:error;size:1024" json:"error,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName implements gorm's tabler interface.
func (LoadEvent) TableName() string {
	return TableName
}

// Columns lists the columns the repository writes.
func Columns() []string {
	return []string{"id", "model", "outcome", "attempts", "duration_ms", "error", "created_at"}
}

// FromAssets converts a loader event into a row.
func FromAssets(event assets.LoadEvent, now time.Time) LoadEvent {
	row := LoadEvent{
		ID:         uuid.NewString(),
		Model:      event.Model,
		Outcome:    string(event.Outcome),
		Attempts:   event.Attempts,
		DurationMs: event.Duration.Milliseconds(),
		CreatedAt:  now,
	}
	if event.Err != nil {
		msg := event.Err.Error()
		if len(msg) > 1024 {
			msg = msg[:1024]
		}
		row.Error = msg
	}
	return row
}

// OutcomeCount is one row of Summary.
type OutcomeCount struct {
	Model   string `json:"model"`
	Outcome string `json:"outcome"`
	Total   int64  `json:"total"`
}
