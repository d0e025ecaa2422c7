package model

// Family memilih keluarga tabel: regular ("profiles", "parents", ...) atau
// demo ("demo_profiles", "demo_parents", ...). Satu set model GORM dipakai
// untuk keduanya lewat db.Table(fam.Profiles()) dsb.
type Family string

const (
	FamilyRegular Family = ""
	FamilyDemo    Family = "demo_"
)

func FamilyFor(isDemo bool) Family {
	if isDemo {
		return FamilyDemo
	}
	return FamilyRegular
}

// Source label untuk response reader ("regular" | "demo").
func (f Family) Source() string {
	if f == FamilyDemo {
		return "demo"
	}
	return "regular"
}

func (f Family) IsDemo() bool { return f == FamilyDemo }

func (f Family) Profiles() string         { return string(f) + "profiles" }
func (f Family) MatchPreferences() string { return string(f) + "match_preferences" }
func (f Family) FamilyDetails() string    { return string(f) + "family_details" }
func (f Family) Parents() string          { return string(f) + "parents" }
func (f Family) Siblings() string         { return string(f) + "siblings" }

// AllTables urut sesuai dependensi (profiles dulu).
func (f Family) AllTables() []string {
	return []string{
		f.Profiles(),
		f.MatchPreferences(),
		f.FamilyDetails(),
		f.Parents(),
		f.Siblings(),
	}
}
