package model

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ProfileModel merepresentasikan tabel profiles / demo_profiles.
// ID profil regular = ID principal yang login; profil demo pakai UUID sintetis.
type ProfileModel struct {
	// PK. Tanpa default DB: writer selalu menentukan ID sendiri.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Sama dengan ID untuk profil regular; nil untuk demo.
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	// Demografi
	Name             *string    `gorm:"size:100;column:name" json:"name,omitempty"`
	DateOfBirth      *time.Time `gorm:"type:date;column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender           *Gender    `gorm:"type:varchar(10);column:gender" json:"gender,omitempty"`
	HeightCM         *int       `gorm:"column:height_cm" json:"height_cm,omitempty"`
	Ethnicity        *string    `gorm:"size:50;column:ethnicity" json:"ethnicity,omitempty"`
	MaritalStatus    *string    `gorm:"size:30;column:marital_status" json:"marital_status,omitempty"`
	HasChildren      *bool      `gorm:"column:has_children" json:"has_children,omitempty"`
	NumberOfChildren *int       `gorm:"column:number_of_children" json:"number_of_children,omitempty"`
	Religion         *string    `gorm:"size:30;column:religion" json:"religion,omitempty"`
	IslamicSect      *string    `gorm:"size:30;column:islamic_sect" json:"islamic_sect,omitempty"`
	CoverHead        *bool      `gorm:"column:cover_head" json:"cover_head,omitempty"`
	CoverType        *string    `gorm:"size:30;column:cover_type" json:"cover_type,omitempty"`

	// Sosial-ekonomi
	EducationLevel *string `gorm:"size:50;column:education_level" json:"education_level,omitempty"`
	University     *string `gorm:"size:100;column:university" json:"university,omitempty"`
	Occupation     *string `gorm:"size:100;column:occupation" json:"occupation,omitempty"`
	Company        *string `gorm:"size:100;column:company" json:"company,omitempty"`
	MonthlyIncome  *string `gorm:"size:50;column:monthly_income" json:"monthly_income,omitempty"`

	// Lokasi & lainnya
	Nationality       *string `gorm:"size:50;column:nationality" json:"nationality,omitempty"`
	Location          *string `gorm:"size:100;column:location" json:"location,omitempty"`
	ProfilePictureURL *string `gorm:"type:text;column:profile_picture_url" json:"profile_picture_url,omitempty"`

	IsDemo bool `gorm:"not null;default:false;column:is_demo" json:"is_demo"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
