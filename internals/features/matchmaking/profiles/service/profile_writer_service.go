// internals/features/matchmaking/profiles/service/profile_writer_service.go
package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"taarufku_backend/internals/configs"
	"taarufku_backend/internals/errs"
	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
	model "taarufku_backend/internals/features/matchmaking/profiles/model"
	repo "taarufku_backend/internals/features/matchmaking/profiles/repository"
)

/* ==========================
   Options
========================== */

type WriterOptions struct {
	// configs.WritePolicyBestEffort (default) atau WritePolicyTransactional.
	Policy string
	// Simpan number_of_children NULL saat has_children=false (default: omit).
	PersistChildCountWhenNone bool
}

func DefaultWriterOptions() WriterOptions {
	policy := configs.WritePolicy
	if policy == "" {
		policy = configs.WritePolicyBestEffort
	}
	return WriterOptions{
		Policy:                    policy,
		PersistChildCountWhenNone: configs.PersistChildCountWhenNone,
	}
}

/* ==========================
   SAVE PROFILE (aggregate writer)
========================== */

// SaveProfile menulis profil + tabel anaknya ke satu keluarga tabel.
// Insert profil inti gagal = seluruh call gagal; di bawah policy best-effort
// kegagalan tabel anak hanya dicatat, di bawah transactional semuanya rollback.
func SaveProfile(db *gorm.DB, principalID *uuid.UUID, in *dto.ProfileInput, isDemo bool, opts WriterOptions) (*dto.SaveResult, error) {
	if in == nil {
		return nil, errs.New(errs.InvalidInput, "Profile data is required")
	}

	// 1) Resolve profile ID: regular = principal yang login, demo = UUID baru.
	var profileID uuid.UUID
	if isDemo {
		profileID = uuid.New()
	} else {
		if principalID == nil || *principalID == uuid.Nil {
			return nil, errs.New(errs.Unauthenticated, "Sign in required to save a profile")
		}
		profileID = *principalID
	}

	fam := model.FamilyFor(isDemo)

	if opts.Policy == configs.WritePolicyTransactional {
		res := &dto.SaveResult{ProfileID: profileID.String(), IsDemo: isDemo}
		err := db.Transaction(func(tx *gorm.DB) error {
			return saveAggregate(tx, fam, profileID, in, opts, nil)
		})
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	// Best-effort: kumpulkan kegagalan tabel anak tanpa membatalkan save.
	var partial []string
	if err := saveAggregate(db, fam, profileID, in, opts, &partial); err != nil {
		return nil, err
	}
	return &dto.SaveResult{ProfileID: profileID.String(), IsDemo: isDemo, PartialFailures: partial}, nil
}

// saveAggregate menjalankan fan-out. partial == nil berarti strict
// (transactional): error anak langsung dikembalikan.
func saveAggregate(db *gorm.DB, fam model.Family, profileID uuid.UUID, in *dto.ProfileInput, opts WriterOptions, partial *[]string) error {
	now := time.Now().UTC()

	// 2) Profil inti — fatal kalau gagal, tabel anak tidak disentuh.
	cols, err := buildProfileColumns(fam, profileID, in, opts, now)
	if err != nil {
		return err
	}
	exists, err := repo.ProfileExists(db, fam, profileID)
	if err != nil {
		return errs.Wrap("Failed to check existing profile", err)
	}
	if exists {
		delete(cols, "id")
		delete(cols, "created_at")
		if err := repo.UpdateProfileColumns(db, fam, profileID, cols); err != nil {
			return errs.Wrap("Failed to update profile", err)
		}
	} else {
		if err := repo.InsertProfileColumns(db, fam, cols); err != nil {
			return errs.Wrap("Failed to save profile", err)
		}
	}

	// 3) Match preferences — non-fatal di bawah best-effort.
	if in.MatchPreferences != nil {
		if err := upsertMatchPreference(db, fam, profileID, in.MatchPreferences, now); err != nil {
			if partial == nil {
				return errs.Wrap("Failed to save match preferences", err)
			}
			log.Printf("[WARN] save match_preferences profil %s: %v", profileID, err)
			*partial = append(*partial, fam.MatchPreferences())
		}
	}

	// 4) Family details + parents + siblings, kegagalan per entri diisolasi.
	if in.FamilyDetails != nil {
		if err := upsertFamilyDetail(db, fam, profileID, in.FamilyDetails, now); err != nil {
			if partial == nil {
				return errs.Wrap("Failed to save family details", err)
			}
			log.Printf("[WARN] save family_details profil %s: %v", profileID, err)
			*partial = append(*partial, fam.FamilyDetails())
		}

		for i, p := range in.FamilyDetails.Parents {
			if err := repo.InsertParentColumns(db, fam, buildParentColumns(profileID, &p, now)); err != nil {
				if partial == nil {
					return errs.Wrap("Failed to save parent", err)
				}
				log.Printf("[WARN] insert parent #%d profil %s: %v", i, profileID, err)
				*partial = append(*partial, fmt.Sprintf("%s[%d]", fam.Parents(), i))
			}
		}
		for i, s := range in.FamilyDetails.Siblings {
			if err := repo.InsertSiblingColumns(db, fam, buildSiblingColumns(profileID, &s, now)); err != nil {
				if partial == nil {
					return errs.Wrap("Failed to save sibling", err)
				}
				log.Printf("[WARN] insert sibling #%d profil %s: %v", i, profileID, err)
				*partial = append(*partial, fmt.Sprintf("%s[%d]", fam.Siblings(), i))
			}
		}
	}

	return nil
}

/* ==========================
   Column builders (omit vs null)
========================== */

// buildProfileColumns menyalin hanya field yang hadir (non-empty). Boolean
// has_children/cover_head selalu di-set: nil → NULL eksplisit, selain itu nilai.
func buildProfileColumns(fam model.Family, profileID uuid.UUID, in *dto.ProfileInput, opts WriterOptions, now time.Time) (map[string]any, error) {
	cols := map[string]any{
		"id":         profileID,
		"is_demo":    fam.IsDemo(),
		"created_at": now,
		"updated_at": now,
	}
	if !fam.IsDemo() {
		// FK kanonik: user_id hanya ada di keluarga regular dan = id profil.
		cols["user_id"] = profileID
	}

	setIfPresent(cols, "name", in.Name)
	setIfPresent(cols, "gender", strings.ToLower(strings.TrimSpace(in.Gender)))
	setIfPresent(cols, "ethnicity", in.Ethnicity)
	setIfPresent(cols, "marital_status", in.MaritalStatus)
	setIfPresent(cols, "religion", in.Religion)
	setIfPresent(cols, "islamic_sect", in.IslamicSect)
	setIfPresent(cols, "cover_type", in.CoverType)
	setIfPresent(cols, "education_level", in.EducationLevel)
	setIfPresent(cols, "university", in.University)
	setIfPresent(cols, "occupation", in.Occupation)
	setIfPresent(cols, "company", in.Company)
	setIfPresent(cols, "monthly_income", in.MonthlyIncome)
	setIfPresent(cols, "nationality", in.Nationality)
	setIfPresent(cols, "location", in.Location)
	setIfPresent(cols, "profile_picture_url", in.ProfilePictureURL)

	if in.HeightCM != nil {
		cols["height_cm"] = *in.HeightCM
	}

	if dto.Present(in.DateOfBirth) {
		dob, err := time.Parse("2006-01-02", strings.TrimSpace(in.DateOfBirth))
		if err != nil {
			return nil, errs.WrapKind(errs.InvalidInput, "Invalid date_of_birth, expected YYYY-MM-DD", err)
		}
		cols["date_of_birth"] = dob
	}

	// Boolean: koersi eksplisit, bukan omit.
	cols["has_children"] = nullableBool(in.HasChildren)
	cols["cover_head"] = nullableBool(in.CoverHead)

	hasChildren := in.HasChildren != nil && *in.HasChildren
	switch {
	case hasChildren && in.NumberOfChildren != nil:
		cols["number_of_children"] = *in.NumberOfChildren
	case !hasChildren && opts.PersistChildCountWhenNone:
		cols["number_of_children"] = nil
	}

	return cols, nil
}

func upsertMatchPreference(db *gorm.DB, fam model.Family, profileID uuid.UUID, in *dto.MatchPreferencesInput, now time.Time) error {
	cols := map[string]any{
		"profile_id": profileID,
		"updated_at": now,
	}
	if in.AgeMin != nil {
		cols["age_min"] = *in.AgeMin
	}
	if in.AgeMax != nil {
		cols["age_max"] = *in.AgeMax
	}
	if len(in.Ethnicities) > 0 {
		cols["ethnicities"] = pq.StringArray(in.Ethnicities)
	}
	if len(in.Locations) > 0 {
		cols["locations"] = pq.StringArray(in.Locations)
	}
	if in.HeightRange != nil {
		cols["height_min_cm"] = in.HeightRange.Min
		cols["height_max_cm"] = in.HeightRange.Max
	}

	exists, err := repo.MatchPreferenceExists(db, fam, profileID)
	if err != nil {
		return err
	}
	if exists {
		return repo.UpdateMatchPreferenceColumns(db, fam, profileID, cols)
	}
	cols["id"] = uuid.New()
	cols["created_at"] = now
	return repo.InsertMatchPreferenceColumns(db, fam, cols)
}

func upsertFamilyDetail(db *gorm.DB, fam model.Family, profileID uuid.UUID, in *dto.FamilyDetailsInput, now time.Time) error {
	cols := map[string]any{
		"profile_id": profileID,
		"updated_at": now,
	}
	setIfPresent(cols, "environment", in.Environment)
	setIfPresent(cols, "additional_info", in.AdditionalInfo)

	exists, err := repo.FamilyDetailExists(db, fam, profileID)
	if err != nil {
		return err
	}
	if exists {
		return repo.UpdateFamilyDetailColumns(db, fam, profileID, cols)
	}
	cols["id"] = uuid.New()
	cols["created_at"] = now
	return repo.InsertFamilyDetailColumns(db, fam, cols)
}

func buildParentColumns(profileID uuid.UUID, in *dto.ParentInput, now time.Time) map[string]any {
	cols := map[string]any{
		"id":         uuid.New(),
		"profile_id": profileID,
		"created_at": now,
	}
	setIfPresent(cols, "relation", in.Relation)
	setIfPresent(cols, "name", in.Name)
	setIfPresent(cols, "marital_status", in.MaritalStatus)
	setIfPresent(cols, "residence_city", in.ResidenceCity)
	setIfPresent(cols, "residence_area", in.ResidenceArea)
	setIfPresent(cols, "education", in.Education)
	setIfPresent(cols, "occupation", in.Occupation)
	setIfPresent(cols, "picture_url", in.PictureURL)
	if in.Alive != nil {
		cols["alive"] = *in.Alive
	}
	return cols
}

func buildSiblingColumns(profileID uuid.UUID, in *dto.SiblingInput, now time.Time) map[string]any {
	cols := map[string]any{
		"id":         uuid.New(),
		"profile_id": profileID,
		"created_at": now,
	}
	setIfPresent(cols, "name", in.Name)
	setIfPresent(cols, "gender", strings.ToLower(strings.TrimSpace(in.Gender)))
	setIfPresent(cols, "marital_status", in.MaritalStatus)
	setIfPresent(cols, "education", in.Education)
	setIfPresent(cols, "occupation", in.Occupation)
	setIfPresent(cols, "picture_url", in.PictureURL)
	return cols
}

/* ==========================
   Small helpers
========================== */

func setIfPresent(cols map[string]any, key, val string) {
	if dto.Present(val) {
		cols[key] = strings.TrimSpace(val)
	}
}

func nullableBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}
