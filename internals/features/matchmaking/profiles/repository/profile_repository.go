// internals/features/matchmaking/profiles/repository/profile_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taarufku_backend/internals/features/matchmaking/profiles/model"
)

/* ====================== PROFILES ====================== */

func ProfileExists(db *gorm.DB, fam model.Family, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Table(fam.Profiles()).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertProfileColumns menulis baris profil dari column map — hanya kolom
// yang hadir yang dikirim, sesuai semantik omit-vs-null writer.
func InsertProfileColumns(db *gorm.DB, fam model.Family, cols map[string]any) error {
	return db.Table(fam.Profiles()).Create(cols).Error
}

func UpdateProfileColumns(db *gorm.DB, fam model.Family, id uuid.UUID, cols map[string]any) error {
	return db.Table(fam.Profiles()).Where("id = ?", id).Updates(cols).Error
}

func FindProfile(db *gorm.DB, fam model.Family, id uuid.UUID) (*model.ProfileModel, error) {
	var p model.ProfileModel
	if err := db.Table(fam.Profiles()).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles: fields kosong berarti select semua kolom.
func ListProfiles(db *gorm.DB, fam model.Family, limit, offset int, fields []string) ([]model.ProfileModel, error) {
	q := db.Table(fam.Profiles())
	if len(fields) > 0 {
		q = q.Select(fields)
	}

	var out []model.ProfileModel
	if err := q.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

/* ====================== MATCH PREFERENCES ====================== */

func MatchPreferenceExists(db *gorm.DB, fam model.Family, profileID uuid.UUID) (bool, error) {
	var n int64
	if err := db.Table(fam.MatchPreferences()).Where("profile_id = ?", profileID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func InsertMatchPreferenceColumns(db *gorm.DB, fam model.Family, cols map[string]any) error {
	return db.Table(fam.MatchPreferences()).Create(cols).Error
}

func UpdateMatchPreferenceColumns(db *gorm.DB, fam model.Family, profileID uuid.UUID, cols map[string]any) error {
	return db.Table(fam.MatchPreferences()).Where("profile_id = ?", profileID).Updates(cols).Error
}

func FindMatchPreference(db *gorm.DB, fam model.Family, profileID uuid.UUID) (*model.MatchPreferenceModel, error) {
	var mp model.MatchPreferenceModel
	if err := db.Table(fam.MatchPreferences()).Where("profile_id = ?", profileID).First(&mp).Error; err != nil {
		return nil, err
	}
	return &mp, nil
}

/* ====================== FAMILY DETAILS ====================== */

func FamilyDetailExists(db *gorm.DB, fam model.Family, profileID uuid.UUID) (bool, error) {
	var n int64
	if err := db.Table(fam.FamilyDetails()).Where("profile_id = ?", profileID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func InsertFamilyDetailColumns(db *gorm.DB, fam model.Family, cols map[string]any) error {
	return db.Table(fam.FamilyDetails()).Create(cols).Error
}

func UpdateFamilyDetailColumns(db *gorm.DB, fam model.Family, profileID uuid.UUID, cols map[string]any) error {
	return db.Table(fam.FamilyDetails()).Where("profile_id = ?", profileID).Updates(cols).Error
}

func FindFamilyDetail(db *gorm.DB, fam model.Family, profileID uuid.UUID) (*model.FamilyDetailModel, error) {
	var fd model.FamilyDetailModel
	if err := db.Table(fam.FamilyDetails()).Where("profile_id = ?", profileID).First(&fd).Error; err != nil {
		return nil, err
	}
	return &fd, nil
}

/* ====================== PARENTS & SIBLINGS ====================== */

func InsertParentColumns(db *gorm.DB, fam model.Family, cols map[string]any) error {
	return db.Table(fam.Parents()).Create(cols).Error
}

func ListParents(db *gorm.DB, fam model.Family, profileID uuid.UUID) ([]model.ParentModel, error) {
	var out []model.ParentModel
	if err := db.Table(fam.Parents()).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func InsertSiblingColumns(db *gorm.DB, fam model.Family, cols map[string]any) error {
	return db.Table(fam.Siblings()).Create(cols).Error
}

func ListSiblings(db *gorm.DB, fam model.Family, profileID uuid.UUID) ([]model.SiblingModel, error) {
	var out []model.SiblingModel
	if err := db.Table(fam.Siblings()).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

/* ====================== COUNTS (untuk tests & seeds) ====================== */

func CountRows(db *gorm.DB, table string) (int64, error) {
	var n int64
	err := db.Table(table).Count(&n).Error
	return n, err
}
