package models

import "time"

// UserProfile is the single active profile. The journal tracks one person,
// so there is at most one row and it is mutated in place.
type UserProfile struct {
	HeightCM       float64   `json:"height_cm"`
	WeightKG       float64   `json:"weight_kg"`
	BodyFatPercent float64   `json:"body_fat_percent"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
