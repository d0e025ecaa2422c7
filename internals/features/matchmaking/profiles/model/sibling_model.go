package model

import (
	"time"

	"github.com/google/uuid"
)

// SiblingModel merepresentasikan tabel siblings / demo_siblings.
type SiblingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`

	Name          *string `gorm:"size:100;column:name" json:"name,omitempty"`
	Gender        *Gender `gorm:"type:varchar(10);column:gender" json:"gender,omitempty"`
	MaritalStatus *string `gorm:"size:30;column:marital_status" json:"marital_status,omitempty"`
	Education     *string `gorm:"size:100;column:education" json:"education,omitempty"`
	Occupation    *string `gorm:"size:100;column:occupation" json:"occupation,omitempty"`
	PictureURL    *string `gorm:"type:text;column:picture_url" json:"picture_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SiblingModel) TableName() string { return "siblings" }
