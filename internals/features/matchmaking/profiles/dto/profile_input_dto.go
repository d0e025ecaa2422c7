package dto

import (
	"strings"
)

/* ===========================
   Request DTO (aggregate save)
   =========================== */

// ProfileInput adalah payload bersarang untuk save profil.
// Field string kosong dianggap tidak ada (omit, bukan NULL);
// khusus boolean (has_children, cover_head) nil berarti NULL eksplisit.
type ProfileInput struct {
	Name          string `json:"name" validate:"omitempty,max=120"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender"`
	HeightCM      *int   `json:"height_cm" validate:"omitempty,min=50,max=280"`
	Ethnicity     string `json:"ethnicity"`
	MaritalStatus string `json:"marital_status"`

	HasChildren      *bool `json:"has_children"`
	NumberOfChildren *int  `json:"number_of_children" validate:"omitempty,min=0,max=30"`

	Religion    string `json:"religion"`
	IslamicSect string `json:"islamic_sect"`
	CoverHead   *bool  `json:"cover_head"`
	CoverType   string `json:"cover_type"`

	EducationLevel string `json:"education_level"`
	University     string `json:"university"`
	Occupation     string `json:"occupation"`
	Company        string `json:"company"`
	MonthlyIncome  string `json:"monthly_income"`

	Nationality       string `json:"nationality"`
	Location          string `json:"location"`
	ProfilePictureURL string `json:"profile_picture_url"`

	MatchPreferences *MatchPreferencesInput `json:"match_preferences"`
	FamilyDetails    *FamilyDetailsInput    `json:"family_details"`
}

type MatchPreferencesInput struct {
	AgeMin      *int         `json:"age_min" validate:"omitempty,min=18,max=99"`
	AgeMax      *int         `json:"age_max" validate:"omitempty,min=18,max=99"`
	Ethnicities []string     `json:"ethnicities"`
	Locations   []string     `json:"locations"`
	HeightRange *HeightRange `json:"height_range"`
}

type FamilyDetailsInput struct {
	Environment    string         `json:"environment"`
	AdditionalInfo string         `json:"additional_info"`
	Parents        []ParentInput  `json:"parents" validate:"omitempty,dive"`
	Siblings       []SiblingInput `json:"siblings" validate:"omitempty,dive"`
}

type ParentInput struct {
	Relation      string `json:"relation" validate:"omitempty,oneof=Father Mother"`
	Name          string `json:"name" validate:"omitempty,max=120"`
	Alive         *bool  `json:"alive"`
	MaritalStatus string `json:"marital_status"`
	ResidenceCity string `json:"residence_city"`
	ResidenceArea string `json:"residence_area"`
	Education     string `json:"education"`
	Occupation    string `json:"occupation"`
	PictureURL    string `json:"picture_url"`
}

type SiblingInput struct {
	Name          string `json:"name" validate:"omitempty,max=120"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	Education     string `json:"education"`
	Occupation    string `json:"occupation"`
	PictureURL    string `json:"picture_url"`
}

// Present: string dianggap ada kalau tidak kosong setelah trim.
func Present(s string) bool { return strings.TrimSpace(s) != "" }
