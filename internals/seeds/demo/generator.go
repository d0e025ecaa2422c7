// internals/seeds/demo/generator.go
package demo

import (
	"fmt"
	"math/rand"
	"time"

	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
)

// Generator murni (tanpa network/DB): menghasilkan ProfileInput acak untuk
// mengisi tabel demo dan melatih semua cabang optional-field si writer.
// *rand.Rand di-inject supaya test bisa pakai seed deterministik.

const emptyProbability = 0.30

// Threshold complexity monotonik: roll tinggi menyalakan grup itu DAN
// semua grup di bawahnya.
const (
	thresholdReligious   = 0.3
	thresholdCareer      = 0.4
	thresholdLocation    = 0.5
	thresholdPreferences = 0.6
	thresholdFamily      = 0.7
)

var (
	firstNames = []string{"Ahmad", "Fatimah", "Yusuf", "Aisha", "Omar", "Khadija", "Bilal", "Maryam", "Hamza", "Zainab"}
	lastNames  = []string{"Khan", "Rahman", "Hussain", "Ali", "Malik", "Siddiqui", "Farooq", "Sheikh", "Ansari", "Qureshi"}

	genders         = []string{"Male", "Female"}
	ethnicities     = []string{"Arab", "South Asian", "Turkish", "Malay", "African", "Persian", "Bosnian"}
	maritalStatuses = []string{"Single", "Divorced", "Widowed"}
	islamicSects    = []string{"Sunni", "Shia", "Sufi"}
	coverTypes      = []string{"Hijab", "Niqab", "None"}
	educationLevels = []string{"High School", "Bachelor", "Master", "PhD"}
	universities    = []string{"University of Toronto", "McGill University", "Al-Azhar University", "IIUM", "Oxford"}
	occupations     = []string{"Engineer", "Doctor", "Teacher", "Accountant", "Pharmacist", "Entrepreneur"}
	companies       = []string{"Self-employed", "Government", "TechCorp", "City Hospital", "School Board"}
	incomes         = []string{"< 3000", "3000 - 5000", "5000 - 8000", "> 8000"}
	nationalities   = []string{"Canadian", "American", "British", "Pakistani", "Egyptian", "Malaysian"}
	locations       = []string{"Toronto, ON", "Vancouver, BC", "Montreal, QC", "Calgary, AB", "Ottawa, ON"}
	environments    = []string{"Religious", "Moderate", "Liberal"}
	relations       = []string{"Father", "Mother"}
)

func pick(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

// maybe: ~30% kosong (omit), sisanya terisi.
func maybe(r *rand.Rand, value string) string {
	if r.Float64() < emptyProbability {
		return ""
	}
	return value
}

func maybeBool(r *rand.Rand) *bool {
	if r.Float64() < emptyProbability {
		return nil
	}
	v := r.Float64() < 0.5
	return &v
}

func maybeInt(r *rand.Rand, min, max int) *int {
	if r.Float64() < emptyProbability {
		return nil
	}
	v := min + r.Intn(max-min+1)
	return &v
}

func randomBirthDate(r *rand.Rand) string {
	age := 20 + r.Intn(25)
	d := time.Now().AddDate(-age, -r.Intn(12), -r.Intn(28))
	return d.Format("2006-01-02")
}

// GenerateProfileInput menghasilkan satu ProfileInput; roll complexity
// menentukan grup opsional mana saja yang ikut.
func GenerateProfileInput(r *rand.Rand) *dto.ProfileInput {
	complexity := r.Float64()

	in := &dto.ProfileInput{
		Name:          maybe(r, pick(r, firstNames)+" "+pick(r, lastNames)),
		DateOfBirth:   maybe(r, randomBirthDate(r)),
		Gender:        maybe(r, pick(r, genders)),
		HeightCM:      maybeInt(r, 150, 195),
		Ethnicity:     maybe(r, pick(r, ethnicities)),
		MaritalStatus: maybe(r, pick(r, maritalStatuses)),
		HasChildren:   maybeBool(r),
	}

	// number_of_children hanya kalau has_children=true
	if in.HasChildren != nil && *in.HasChildren {
		n := 1 + r.Intn(4)
		in.NumberOfChildren = &n
	}

	if complexity >= thresholdReligious {
		in.Religion = maybe(r, "Islam")
		// islamic_sect hanya untuk Islam
		if in.Religion == "Islam" {
			in.IslamicSect = maybe(r, pick(r, islamicSects))
		}
		in.CoverHead = maybeBool(r)
		if in.CoverHead != nil && *in.CoverHead {
			in.CoverType = maybe(r, pick(r, coverTypes))
		}
	}

	if complexity >= thresholdCareer {
		in.EducationLevel = maybe(r, pick(r, educationLevels))
		in.University = maybe(r, pick(r, universities))
		in.Occupation = maybe(r, pick(r, occupations))
		in.Company = maybe(r, pick(r, companies))
		in.MonthlyIncome = maybe(r, pick(r, incomes))
	}

	if complexity >= thresholdLocation {
		in.Nationality = maybe(r, pick(r, nationalities))
		in.Location = maybe(r, pick(r, locations))
		in.ProfilePictureURL = maybe(r, fmt.Sprintf("https://cdn.taarufku.app/demo/%d.jpg", r.Intn(1000)))
	}

	if complexity >= thresholdPreferences {
		in.MatchPreferences = generateMatchPreferences(r)
	}

	if complexity >= thresholdFamily {
		in.FamilyDetails = generateFamilyDetails(r)
	}

	return in
}

func generateMatchPreferences(r *rand.Rand) *dto.MatchPreferencesInput {
	mp := &dto.MatchPreferencesInput{
		AgeMin: maybeInt(r, 20, 30),
		AgeMax: maybeInt(r, 30, 45),
	}
	for i := 0; i < r.Intn(3); i++ {
		mp.Ethnicities = append(mp.Ethnicities, pick(r, ethnicities))
	}
	for i := 0; i < r.Intn(3); i++ {
		mp.Locations = append(mp.Locations, pick(r, locations))
	}
	if r.Float64() >= emptyProbability {
		min := 150 + r.Intn(20)
		max := min + 10 + r.Intn(25)
		mp.HeightRange = &dto.HeightRange{Min: min, Max: max}
	}
	return mp
}

func generateFamilyDetails(r *rand.Rand) *dto.FamilyDetailsInput {
	fd := &dto.FamilyDetailsInput{
		Environment:    maybe(r, pick(r, environments)),
		AdditionalInfo: maybe(r, "Family details generated for demo purposes"),
	}

	for _, relation := range relations {
		if r.Float64() < emptyProbability {
			continue
		}
		fd.Parents = append(fd.Parents, dto.ParentInput{
			Relation:      relation,
			Name:          maybe(r, pick(r, firstNames)+" "+pick(r, lastNames)),
			Alive:         maybeBool(r),
			MaritalStatus: maybe(r, "Married"),
			ResidenceCity: maybe(r, pick(r, locations)),
			Education:     maybe(r, pick(r, educationLevels)),
			Occupation:    maybe(r, pick(r, occupations)),
		})
	}

	for i := 0; i < r.Intn(4); i++ {
		fd.Siblings = append(fd.Siblings, dto.SiblingInput{
			Name:          maybe(r, pick(r, firstNames)+" "+pick(r, lastNames)),
			Gender:        maybe(r, pick(r, genders)),
			MaritalStatus: maybe(r, pick(r, maritalStatuses)),
			Education:     maybe(r, pick(r, educationLevels)),
			Occupation:    maybe(r, pick(r, occupations)),
		})
	}

	return fd
}
