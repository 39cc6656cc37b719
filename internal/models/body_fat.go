package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyFatEntry is one point in the append-only body-fat history. Entries are
// created whenever the profile is set up or its body fat is updated, and are
// never mutated or deleted.
type BodyFatEntry struct {
	ID             uuid.UUID `json:"id"`
	BodyFatPercent float64   `json:"body_fat_percent"`
	RecordedAt     time.Time `json:"recorded_at"`
}
