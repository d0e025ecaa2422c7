package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestFamilyTableNames(t *testing.T) {
	assert.Equal(t, "profiles", FamilyRegular.Profiles())
	assert.Equal(t, "demo_profiles", FamilyDemo.Profiles())
	assert.Equal(t, "demo_match_preferences", FamilyDemo.MatchPreferences())
	assert.Equal(t, "regular", FamilyRegular.Source())
	assert.Equal(t, "demo", FamilyDemo.Source())
	assert.False(t, FamilyRegular.IsDemo())
	assert.True(t, FamilyDemo.IsDemo())
}

// Satu set model melayani dua keluarga tabel dalam satu database; migrasi
// keluarga kedua tidak boleh bentrok dengan index keluarga pertama.
func TestBothFamiliesMigrateIntoOneDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	for _, fam := range []Family{FamilyRegular, FamilyDemo} {
		require.NoError(t, db.Table(fam.Profiles()).AutoMigrate(&ProfileModel{}), fam.Profiles())
		require.NoError(t, db.Table(fam.MatchPreferences()).AutoMigrate(&MatchPreferenceModel{}), fam.MatchPreferences())
		require.NoError(t, db.Table(fam.FamilyDetails()).AutoMigrate(&FamilyDetailModel{}), fam.FamilyDetails())
		require.NoError(t, db.Table(fam.Parents()).AutoMigrate(&ParentModel{}), fam.Parents())
		require.NoError(t, db.Table(fam.Siblings()).AutoMigrate(&SiblingModel{}), fam.Siblings())
	}

	for _, table := range append(FamilyRegular.AllTables(), FamilyDemo.AllTables()...) {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
