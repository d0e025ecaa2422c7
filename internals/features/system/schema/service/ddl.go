// internals/features/system/schema/service/ddl.go
package service

import (
	"strings"

	model "taarufku_backend/internals/features/matchmaking/profiles/model"
)

// DDL di sini artefak diagnostik: dicetak ke log untuk dieksekusi manual
// lewat SQL editor (kredensial app tidak punya hak CREATE). Tidak pernah
// dieksekusi oleh service ini.

func ddlProfiles(fam model.Family) string {
	t := fam.Profiles()
	var b strings.Builder
	b.WriteString(`CREATE TABLE IF NOT EXISTS ` + t + ` (
  id UUID PRIMARY KEY,
  user_id UUID,
  name TEXT,
  date_of_birth DATE,
  gender TEXT,
  height_cm INT,
  ethnicity TEXT,
  marital_status TEXT,
  has_children BOOLEAN,
  number_of_children INT,
  religion TEXT,
  islamic_sect TEXT,
  cover_head BOOLEAN,
  cover_type TEXT,
  education_level TEXT,
  university TEXT,
  occupation TEXT,
  company TEXT,
  monthly_income TEXT,
  nationality TEXT,
  location TEXT,
  profile_picture_url TEXT,
  is_demo BOOLEAN NOT NULL DEFAULT ` + boolLit(fam.IsDemo()) + `,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`)
	b.WriteString(rlsBlock(fam, t, "user_id"))
	return b.String()
}

func ddlMatchPreferences(fam model.Family) string {
	t := fam.MatchPreferences()
	return `CREATE TABLE IF NOT EXISTS ` + t + ` (
  id UUID PRIMARY KEY,
  profile_id UUID NOT NULL UNIQUE REFERENCES ` + fam.Profiles() + `(id) ON DELETE CASCADE,
  age_min INT,
  age_max INT,
  ethnicities TEXT[],
  locations TEXT[],
  height_min_cm INT,
  height_max_cm INT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
` + rlsChildBlock(fam, t)
}

func ddlFamilyDetails(fam model.Family) string {
	t := fam.FamilyDetails()
	return `CREATE TABLE IF NOT EXISTS ` + t + ` (
  id UUID PRIMARY KEY,
  profile_id UUID NOT NULL UNIQUE REFERENCES ` + fam.Profiles() + `(id) ON DELETE CASCADE,
  environment TEXT,
  additional_info TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
` + rlsChildBlock(fam, t)
}

func ddlParents(fam model.Family) string {
	t := fam.Parents()
	return `CREATE TABLE IF NOT EXISTS ` + t + ` (
  id UUID PRIMARY KEY,
  profile_id UUID NOT NULL REFERENCES ` + fam.Profiles() + `(id) ON DELETE CASCADE,
  relation TEXT,
  name TEXT,
  alive BOOLEAN,
  marital_status TEXT,
  residence_city TEXT,
  residence_area TEXT,
  education TEXT,
  occupation TEXT,
  picture_url TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_` + t + `_profile_id ON ` + t + `(profile_id);
` + rlsChildBlock(fam, t)
}

func ddlSiblings(fam model.Family) string {
	t := fam.Siblings()
	return `CREATE TABLE IF NOT EXISTS ` + t + ` (
  id UUID PRIMARY KEY,
  profile_id UUID NOT NULL REFERENCES ` + fam.Profiles() + `(id) ON DELETE CASCADE,
  name TEXT,
  gender TEXT,
  marital_status TEXT,
  education TEXT,
  occupation TEXT,
  picture_url TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_` + t + `_profile_id ON ` + t + `(profile_id);
` + rlsChildBlock(fam, t)
}

// rlsBlock: tabel regular dikunci ke pemilik (auth.uid() = user_id);
// tabel demo boleh insert/select anon.
func rlsBlock(fam model.Family, table, ownerCol string) string {
	if fam.IsDemo() {
		return `ALTER TABLE ` + table + ` ENABLE ROW LEVEL SECURITY;
CREATE POLICY "` + table + `_anon_select" ON ` + table + ` FOR SELECT TO anon, authenticated USING (true);
CREATE POLICY "` + table + `_anon_insert" ON ` + table + ` FOR INSERT TO anon, authenticated WITH CHECK (true);
GRANT SELECT, INSERT ON ` + table + ` TO anon, authenticated;
`
	}
	return `ALTER TABLE ` + table + ` ENABLE ROW LEVEL SECURITY;
CREATE POLICY "` + table + `_owner_all" ON ` + table + ` FOR ALL TO authenticated
  USING (auth.uid() = ` + ownerCol + `) WITH CHECK (auth.uid() = ` + ownerCol + `);
CREATE POLICY "` + table + `_public_select" ON ` + table + ` FOR SELECT TO authenticated USING (true);
GRANT SELECT, INSERT, UPDATE, DELETE ON ` + table + ` TO authenticated;
`
}

// Child tables ikut pemiliknya lewat profile_id → profiles.user_id.
func rlsChildBlock(fam model.Family, table string) string {
	if fam.IsDemo() {
		return rlsBlock(fam, table, "")
	}
	return `ALTER TABLE ` + table + ` ENABLE ROW LEVEL SECURITY;
CREATE POLICY "` + table + `_owner_all" ON ` + table + ` FOR ALL TO authenticated
  USING (EXISTS (SELECT 1 FROM ` + fam.Profiles() + ` p WHERE p.id = ` + table + `.profile_id AND auth.uid() = p.user_id))
  WITH CHECK (EXISTS (SELECT 1 FROM ` + fam.Profiles() + ` p WHERE p.id = ` + table + `.profile_id AND auth.uid() = p.user_id));
CREATE POLICY "` + table + `_public_select" ON ` + table + ` FOR SELECT TO authenticated USING (true);
GRANT SELECT, INSERT, UPDATE, DELETE ON ` + table + ` TO authenticated;
`
}

func boolLit(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// DDLFor mengembalikan artefak DDL untuk satu tabel, atau "" kalau tabel
// tidak dikenal (mis. tabel auth yang dikelola migrasi terpisah).
func DDLFor(table string) string {
	for _, fam := range []model.Family{model.FamilyRegular, model.FamilyDemo} {
		switch table {
		case fam.Profiles():
			return ddlProfiles(fam)
		case fam.MatchPreferences():
			return ddlMatchPreferences(fam)
		case fam.FamilyDetails():
			return ddlFamilyDetails(fam)
		case fam.Parents():
			return ddlParents(fam)
		case fam.Siblings():
			return ddlSiblings(fam)
		}
	}
	return ""
}
