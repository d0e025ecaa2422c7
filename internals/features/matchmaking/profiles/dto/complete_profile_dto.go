package dto

import (
	model "taarufku_backend/internals/features/matchmaking/profiles/model"
)

/* ===========================
   Response DTO
   =========================== */

// ProfileWithSource hasil GetProfileByID: baris profil + keluarga tabel asalnya.
type ProfileWithSource struct {
	Data   *model.ProfileModel `json:"data"`
	Source string              `json:"source,omitempty"` // "regular" | "demo"
}

// CompleteProfile menggabungkan profil dengan seluruh koleksi anaknya
// dari keluarga tabel yang sama.
type CompleteProfile struct {
	Profile         model.ProfileModel          `json:"profile"`
	Source          string                      `json:"source"`
	MatchPreference *model.MatchPreferenceModel `json:"match_preference,omitempty"`
	FamilyDetail    *model.FamilyDetailModel    `json:"family_detail,omitempty"`
	Parents         []model.ParentModel         `json:"parents"`
	Siblings        []model.SiblingModel        `json:"siblings"`
}

// SaveResult dikembalikan writer setelah insert profil inti sukses.
type SaveResult struct {
	ProfileID string `json:"profile_id"`
	IsDemo    bool   `json:"is_demo"`
	// Tabel anak yang gagal ditulis di bawah write policy best-effort
	// (kosong saat transactional).
	PartialFailures []string `json:"partial_failures,omitempty"`
}
