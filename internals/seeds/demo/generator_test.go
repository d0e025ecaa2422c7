package demo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
)

const sampleSize = 500

func generateSamples(seed int64) []*dto.ProfileInput {
	r := rand.New(rand.NewSource(seed))
	out := make([]*dto.ProfileInput, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		out = append(out, GenerateProfileInput(r))
	}
	return out
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	a := generateSamples(42)
	b := generateSamples(42)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Religion, b[i].Religion)
	}
}

func TestGeneratorComplexityGroupsAreMonotonic(t *testing.T) {
	// Grup sub-objek di-gate satu roll complexity: family details (0.7)
	// tidak pernah hadir tanpa match preferences (0.6). Grup field skalar
	// tidak bisa diuji deterministik (tiap field masih bisa kosong 30%).
	samples := generateSamples(7)

	sawPrefsOnly := false
	for _, in := range samples {
		if in.FamilyDetails != nil {
			assert.NotNil(t, in.MatchPreferences, "family details tanpa match preferences")
		}
		if in.MatchPreferences != nil && in.FamilyDetails == nil {
			sawPrefsOnly = true
		}
	}
	// band 0.6–0.7 harus kejadian di sampel sebesar ini
	assert.True(t, sawPrefsOnly)
}

func TestGeneratorConditionalFields(t *testing.T) {
	sawSect := false
	sawChildren := false

	for _, in := range generateSamples(99) {
		// islamic_sect hanya muncul untuk Islam
		if in.IslamicSect != "" {
			assert.Equal(t, "Islam", in.Religion)
			sawSect = true
		}
		// number_of_children hanya saat has_children=true
		if in.NumberOfChildren != nil {
			require.NotNil(t, in.HasChildren)
			assert.True(t, *in.HasChildren)
			assert.Positive(t, *in.NumberOfChildren)
			sawChildren = true
		}
		// cover_type hanya saat cover_head=true
		if in.CoverType != "" {
			require.NotNil(t, in.CoverHead)
			assert.True(t, *in.CoverHead)
		}
	}

	assert.True(t, sawSect, "sampel harus memuat kasus islamic_sect")
	assert.True(t, sawChildren, "sampel harus memuat kasus number_of_children")
}

func TestGeneratorProducesFieldVariety(t *testing.T) {
	empties, filled := 0, 0
	withFamily := 0
	for _, in := range generateSamples(2026) {
		if in.Name == "" {
			empties++
		} else {
			filled++
		}
		if in.FamilyDetails != nil {
			withFamily++
		}
	}

	// 30% kosong: dua-duanya harus muncul dalam jumlah berarti
	assert.Greater(t, empties, sampleSize/10)
	assert.Greater(t, filled, sampleSize/2)
	// threshold family 0.7 → kira-kira 30% sampel
	assert.Greater(t, withFamily, sampleSize/10)
	assert.Less(t, withFamily, sampleSize/2)
}

func TestGeneratorParentsUseKnownRelations(t *testing.T) {
	for _, in := range generateSamples(5) {
		if in.FamilyDetails == nil {
			continue
		}
		for _, p := range in.FamilyDetails.Parents {
			assert.Contains(t, []string{"Father", "Mother"}, p.Relation)
		}
		assert.LessOrEqual(t, len(in.FamilyDetails.Parents), 2)
	}
}
