package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"taarufku_backend/internals/configs"
	"taarufku_backend/internals/errs"
	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
	model "taarufku_backend/internals/features/matchmaking/profiles/model"
	repo "taarufku_backend/internals/features/matchmaking/profiles/repository"
)

func setupProfilesDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	for _, fam := range []model.Family{model.FamilyRegular, model.FamilyDemo} {
		require.NoError(t, db.Table(fam.Profiles()).AutoMigrate(&model.ProfileModel{}))
		require.NoError(t, db.Table(fam.MatchPreferences()).AutoMigrate(&model.MatchPreferenceModel{}))
		require.NoError(t, db.Table(fam.FamilyDetails()).AutoMigrate(&model.FamilyDetailModel{}))
		require.NoError(t, db.Table(fam.Parents()).AutoMigrate(&model.ParentModel{}))
		require.NoError(t, db.Table(fam.Siblings()).AutoMigrate(&model.SiblingModel{}))
	}
	return db
}

func bestEffort() WriterOptions {
	return WriterOptions{Policy: configs.WritePolicyBestEffort}
}

func boolPtr(b bool) *bool { return &b }

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	n, err := repo.CountRows(db, table)
	require.NoError(t, err)
	return n
}

/* ==========================
   WRITER
========================== */

func TestSaveProfileDemoGeneratesFreshIDPerCall(t *testing.T) {
	db := setupProfilesDB(t)

	in := &dto.ProfileInput{Name: "Demo User"}
	r1, err := SaveProfile(db, nil, in, true, bestEffort())
	require.NoError(t, err)
	r2, err := SaveProfile(db, nil, in, true, bestEffort())
	require.NoError(t, err)

	assert.NotEqual(t, r1.ProfileID, r2.ProfileID)
	assert.True(t, r1.IsDemo)
	assert.EqualValues(t, 2, count(t, db, "demo_profiles"))
	assert.EqualValues(t, 0, count(t, db, "profiles"))
}

func TestSaveProfileRegularRequiresPrincipal(t *testing.T) {
	db := setupProfilesDB(t)

	_, err := SaveProfile(db, nil, &dto.ProfileInput{Name: "X"}, false, bestEffort())
	require.Error(t, err)
	assert.Equal(t, errs.Unauthenticated, errs.KindOf(err))
	assert.EqualValues(t, 0, count(t, db, "profiles"))
}

func TestSaveProfileRegularIsIdempotentOnPrincipalID(t *testing.T) {
	db := setupProfilesDB(t)
	principal := uuid.New()

	r1, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "First"}, false, bestEffort())
	require.NoError(t, err)
	r2, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "Updated"}, false, bestEffort())
	require.NoError(t, err)

	assert.Equal(t, principal.String(), r1.ProfileID)
	assert.Equal(t, r1.ProfileID, r2.ProfileID)
	assert.EqualValues(t, 1, count(t, db, "profiles"))

	p, err := repo.FindProfile(db, model.FamilyRegular, principal)
	require.NoError(t, err)
	require.NotNil(t, p.Name)
	assert.Equal(t, "Updated", *p.Name)
	require.NotNil(t, p.UserID)
	assert.Equal(t, principal, *p.UserID)
}

func TestSaveProfileFanOutExampleScenario(t *testing.T) {
	db := setupProfilesDB(t)

	in := &dto.ProfileInput{
		Name:        "Demo User",
		HasChildren: boolPtr(false),
		FamilyDetails: &dto.FamilyDetailsInput{
			Parents: []dto.ParentInput{
				{Relation: "Father", Name: "Father"},
				{Relation: "Mother", Name: "Mother"},
			},
			Siblings: []dto.SiblingInput{{Name: "Brother"}},
		},
	}

	result, err := SaveProfile(db, nil, in, true, bestEffort())
	require.NoError(t, err)
	assert.Empty(t, result.PartialFailures)

	assert.EqualValues(t, 1, count(t, db, "demo_profiles"))
	assert.EqualValues(t, 0, count(t, db, "demo_match_preferences"))
	assert.EqualValues(t, 1, count(t, db, "demo_family_details"))
	assert.EqualValues(t, 2, count(t, db, "demo_parents"))
	assert.EqualValues(t, 1, count(t, db, "demo_siblings"))

	profileID := uuid.MustParse(result.ProfileID)
	parents, err := repo.ListParents(db, model.FamilyDemo, profileID)
	require.NoError(t, err)
	require.Len(t, parents, 2)
	for _, p := range parents {
		assert.Equal(t, profileID, p.ProfileID)
	}

	// has_children=false → boolean tersimpan, number_of_children di-omit
	p, err := repo.FindProfile(db, model.FamilyDemo, profileID)
	require.NoError(t, err)
	require.NotNil(t, p.HasChildren)
	assert.False(t, *p.HasChildren)
	assert.Nil(t, p.NumberOfChildren)
}

func TestSaveProfileOmitVsNullSemantics(t *testing.T) {
	db := setupProfilesDB(t)

	// String kosong di-omit; boolean nil → NULL eksplisit.
	result, err := SaveProfile(db, nil, &dto.ProfileInput{Name: "A", Ethnicity: "  "}, true, bestEffort())
	require.NoError(t, err)

	p, err := repo.FindProfile(db, model.FamilyDemo, uuid.MustParse(result.ProfileID))
	require.NoError(t, err)
	assert.Nil(t, p.Ethnicity)
	assert.Nil(t, p.HasChildren)
	assert.Nil(t, p.CoverHead)
}

func TestSaveProfileChildCountPersistsWhenConfigured(t *testing.T) {
	db := setupProfilesDB(t)
	principal := uuid.New()

	// Mulai dengan has_children=true + count tersimpan.
	_, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "B", HasChildren: boolPtr(true), NumberOfChildren: intPtr(2)}, false, bestEffort())
	require.NoError(t, err)

	p, err := repo.FindProfile(db, model.FamilyRegular, principal)
	require.NoError(t, err)
	require.NotNil(t, p.NumberOfChildren)
	assert.Equal(t, 2, *p.NumberOfChildren)

	// Default (omit): has_children=false membiarkan count lama apa adanya.
	_, err = SaveProfile(db, &principal, &dto.ProfileInput{Name: "B", HasChildren: boolPtr(false)}, false, bestEffort())
	require.NoError(t, err)

	p, err = repo.FindProfile(db, model.FamilyRegular, principal)
	require.NoError(t, err)
	require.NotNil(t, p.NumberOfChildren)

	// Dengan flag: has_children=false menulis number_of_children NULL eksplisit.
	opts := bestEffort()
	opts.PersistChildCountWhenNone = true
	_, err = SaveProfile(db, &principal, &dto.ProfileInput{Name: "B", HasChildren: boolPtr(false)}, false, opts)
	require.NoError(t, err)

	p, err = repo.FindProfile(db, model.FamilyRegular, principal)
	require.NoError(t, err)
	assert.Nil(t, p.NumberOfChildren)
}

func TestSaveProfileBestEffortSurvivesChildTableFailure(t *testing.T) {
	db := setupProfilesDB(t)
	require.NoError(t, db.Exec("DROP TABLE demo_match_preferences").Error)

	in := &dto.ProfileInput{
		Name:             "C",
		MatchPreferences: &dto.MatchPreferencesInput{AgeMin: intPtr(25), AgeMax: intPtr(35)},
	}
	result, err := SaveProfile(db, nil, in, true, bestEffort())
	require.NoError(t, err)

	assert.Contains(t, result.PartialFailures, "demo_match_preferences")
	assert.EqualValues(t, 1, count(t, db, "demo_profiles"))
}

func TestSaveProfileTransactionalRollsBackOnChildFailure(t *testing.T) {
	db := setupProfilesDB(t)
	require.NoError(t, db.Exec("DROP TABLE demo_match_preferences").Error)

	in := &dto.ProfileInput{
		Name:             "D",
		MatchPreferences: &dto.MatchPreferencesInput{AgeMin: intPtr(25)},
	}
	opts := WriterOptions{Policy: configs.WritePolicyTransactional}
	_, err := SaveProfile(db, nil, in, true, opts)
	require.Error(t, err)

	assert.EqualValues(t, 0, count(t, db, "demo_profiles"))
}

func TestSaveProfileRejectsMalformedBirthDate(t *testing.T) {
	db := setupProfilesDB(t)

	// Insert profil inti gagal → tidak ada tabel anak yang disentuh sama sekali.
	in := &dto.ProfileInput{
		DateOfBirth: "31-12-1990",
		FamilyDetails: &dto.FamilyDetailsInput{
			Environment: "Religious",
			Parents:     []dto.ParentInput{{Relation: "Father", Name: "Abu"}, {Relation: "Mother", Name: "Ummu"}},
			Siblings:    []dto.SiblingInput{{Name: "Brother"}},
		},
	}
	_, err := SaveProfile(db, nil, in, true, bestEffort())
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
	assert.EqualValues(t, 0, count(t, db, "demo_profiles"))
	assert.EqualValues(t, 0, count(t, db, "demo_family_details"))
	assert.EqualValues(t, 0, count(t, db, "demo_parents"))
	assert.EqualValues(t, 0, count(t, db, "demo_siblings"))
}

func TestSaveProfileNilInput(t *testing.T) {
	db := setupProfilesDB(t)

	_, err := SaveProfile(db, nil, nil, true, bestEffort())
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

/* ==========================
   READER
========================== */

func TestGetProfileByIDPrefersRegularFamily(t *testing.T) {
	db := setupProfilesDB(t)
	principal := uuid.New()

	_, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "Regular"}, false, bestEffort())
	require.NoError(t, err)

	resolved, err := GetProfileByID(db, principal)
	require.NoError(t, err)
	require.NotNil(t, resolved.Data)
	assert.Equal(t, "regular", resolved.Source)
}

func TestGetProfileByIDFallsBackToDemo(t *testing.T) {
	db := setupProfilesDB(t)

	result, err := SaveProfile(db, nil, &dto.ProfileInput{Name: "Demo"}, true, bestEffort())
	require.NoError(t, err)

	resolved, err := GetProfileByID(db, uuid.MustParse(result.ProfileID))
	require.NoError(t, err)
	require.NotNil(t, resolved.Data)
	assert.Equal(t, "demo", resolved.Source)
}

func TestGetProfileByIDMissingInBothFamilies(t *testing.T) {
	db := setupProfilesDB(t)

	resolved, err := GetProfileByID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resolved.Data)
}

func TestGetCompleteProfileAssemblesAggregate(t *testing.T) {
	db := setupProfilesDB(t)

	in := &dto.ProfileInput{
		Name: "Complete",
		MatchPreferences: &dto.MatchPreferencesInput{
			AgeMin:      intPtr(25),
			AgeMax:      intPtr(35),
			Ethnicities: []string{"Arab", "Malay"},
			HeightRange: &dto.HeightRange{Min: 155, Max: 175},
		},
		FamilyDetails: &dto.FamilyDetailsInput{
			Environment: "Religious",
			Parents:     []dto.ParentInput{{Relation: "Father", Name: "Abu"}},
			Siblings:    []dto.SiblingInput{{Name: "Sister"}, {Name: "Brother"}},
		},
	}
	result, err := SaveProfile(db, nil, in, true, bestEffort())
	require.NoError(t, err)
	require.Empty(t, result.PartialFailures)

	complete, err := GetCompleteProfile(db, uuid.MustParse(result.ProfileID))
	require.NoError(t, err)

	assert.Equal(t, "demo", complete.Source)
	require.NotNil(t, complete.MatchPreference)
	assert.Equal(t, 155, *complete.MatchPreference.HeightMinCM)
	assert.ElementsMatch(t, []string{"Arab", "Malay"}, complete.MatchPreference.Ethnicities)
	require.NotNil(t, complete.FamilyDetail)
	assert.Len(t, complete.Parents, 1)
	assert.Len(t, complete.Siblings, 2)
}

func TestGetCompleteProfileNotFound(t *testing.T) {
	db := setupProfilesDB(t)

	_, err := GetCompleteProfile(db, uuid.New())
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestGetAllProfilesListsRegularBeforeDemo(t *testing.T) {
	db := setupProfilesDB(t)
	principal := uuid.New()

	_, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "Regular"}, false, bestEffort())
	require.NoError(t, err)
	_, err = SaveProfile(db, nil, &dto.ProfileInput{Name: "Demo"}, true, bestEffort())
	require.NoError(t, err)

	all, err := GetAllProfiles(db, ListOptions{Limit: 10, IncludeDemo: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].IsDemo)
	assert.True(t, all[1].IsDemo)

	onlyDemo, err := GetAllProfiles(db, ListOptions{Limit: 10, OnlyDemo: true})
	require.NoError(t, err)
	require.Len(t, onlyDemo, 1)
	assert.True(t, onlyDemo[0].IsDemo)

	regularOnly, err := GetAllProfiles(db, ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, regularOnly, 1)
	assert.False(t, regularOnly[0].IsDemo)
}

func TestHasProfile(t *testing.T) {
	db := setupProfilesDB(t)
	principal := uuid.New()

	assert.False(t, HasProfile(db, principal))

	_, err := SaveProfile(db, &principal, &dto.ProfileInput{Name: "R"}, false, bestEffort())
	require.NoError(t, err)
	assert.True(t, HasProfile(db, principal))
}

func intPtr(n int) *int { return &n }
