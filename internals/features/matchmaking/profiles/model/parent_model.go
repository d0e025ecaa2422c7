package model

import (
	"time"

	"github.com/google/uuid"
)

type ParentRelation string

const (
	RelationFather ParentRelation = "Father"
	RelationMother ParentRelation = "Mother"
)

// ParentModel merepresentasikan tabel parents / demo_parents.
// Banyak baris per profil (ayah, ibu), FK kanonik profile_id.
type ParentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`

	Relation      *ParentRelation `gorm:"type:varchar(10);column:relation" json:"relation,omitempty"`
	Name          *string         `gorm:"size:100;column:name" json:"name,omitempty"`
	Alive         *bool           `gorm:"column:alive" json:"alive,omitempty"`
	MaritalStatus *string         `gorm:"size:30;column:marital_status" json:"marital_status,omitempty"`
	ResidenceCity *string         `gorm:"size:100;column:residence_city" json:"residence_city,omitempty"`
	ResidenceArea *string         `gorm:"size:100;column:residence_area" json:"residence_area,omitempty"`
	Education     *string         `gorm:"size:100;column:education" json:"education,omitempty"`
	Occupation    *string         `gorm:"size:100;column:occupation" json:"occupation,omitempty"`
	PictureURL    *string         `gorm:"type:text;column:picture_url" json:"picture_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ParentModel) TableName() string { return "parents" }
