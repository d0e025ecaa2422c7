package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MatchPreferenceModel merepresentasikan tabel match_preferences /
// demo_match_preferences. Satu baris per profil, FK kanonik profile_id.
type MatchPreferenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`

	AgeMin *int `gorm:"column:age_min" json:"age_min,omitempty"`
	AgeMax *int `gorm:"column:age_max" json:"age_max,omitempty"`

	Ethnicities pq.StringArray `gorm:"type:text[];column:ethnicities" json:"ethnicities"`
	Locations   pq.StringArray `gorm:"type:text[];column:locations" json:"locations"`

	HeightMinCM *int `gorm:"column:height_min_cm" json:"height_min_cm,omitempty"`
	HeightMaxCM *int `gorm:"column:height_max_cm" json:"height_max_cm,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MatchPreferenceModel) TableName() string { return "match_preferences" }
