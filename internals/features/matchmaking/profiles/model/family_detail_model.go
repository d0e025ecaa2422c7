package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyDetailModel merepresentasikan tabel family_details / demo_family_details.
type FamilyDetailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`

	Environment    *string `gorm:"type:text;column:environment" json:"environment,omitempty"`
	AdditionalInfo *string `gorm:"type:text;column:additional_info" json:"additional_info,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FamilyDetailModel) TableName() string { return "family_details" }
