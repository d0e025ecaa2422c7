// internals/features/matchmaking/profiles/service/profile_reader_service.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taarufku_backend/internals/errs"
	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
	model "taarufku_backend/internals/features/matchmaking/profiles/model"
	repo "taarufku_backend/internals/features/matchmaking/profiles/repository"
)

/* ==========================
   READERS (aggregate)
========================== */

// GetProfileByID mencoba keluarga regular dulu, lalu demo; hit pertama menang.
// Tidak ketemu di keduanya → data nil tanpa error.
func GetProfileByID(db *gorm.DB, id uuid.UUID) (*dto.ProfileWithSource, error) {
	for _, fam := range []model.Family{model.FamilyRegular, model.FamilyDemo} {
		p, err := repo.FindProfile(db, fam, id)
		if err == nil {
			return &dto.ProfileWithSource{Data: p, Source: fam.Source()}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Wrap("Failed to read profile", err)
		}
	}
	return &dto.ProfileWithSource{}, nil
}

// GetCompleteProfile me-resolve keluarga tabel lalu menarik profil beserta
// match preference, family detail, parents, dan siblings dari keluarga itu.
// Koleksi anak yang gagal dibaca dibiarkan kosong (best-effort read).
func GetCompleteProfile(db *gorm.DB, id uuid.UUID) (*dto.CompleteProfile, error) {
	resolved, err := GetProfileByID(db, id)
	if err != nil {
		return nil, err
	}
	if resolved.Data == nil {
		return nil, errs.New(errs.NotFound, "Profile not found")
	}

	fam := model.FamilyFor(resolved.Source == "demo")
	out := &dto.CompleteProfile{
		Profile:  *resolved.Data,
		Source:   resolved.Source,
		Parents:  []model.ParentModel{},
		Siblings: []model.SiblingModel{},
	}

	if mp, err := repo.FindMatchPreference(db, fam, id); err == nil {
		out.MatchPreference = mp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[WARN] read match_preferences profil %s: %v", id, err)
	}

	if fd, err := repo.FindFamilyDetail(db, fam, id); err == nil {
		out.FamilyDetail = fd
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[WARN] read family_details profil %s: %v", id, err)
	}

	if parents, err := repo.ListParents(db, fam, id); err == nil {
		out.Parents = parents
	} else {
		log.Printf("[WARN] read parents profil %s: %v", id, err)
	}

	if siblings, err := repo.ListSiblings(db, fam, id); err == nil {
		out.Siblings = siblings
	} else {
		log.Printf("[WARN] read siblings profil %s: %v", id, err)
	}

	return out, nil
}

type ListOptions struct {
	Limit       int
	Offset      int
	IncludeDemo bool
	OnlyDemo    bool
	Fields      []string // projection kolom; kosong = semua
}

// GetAllProfiles paginasi keluarga regular dan/atau demo sesuai flag.
// Hasil regular selalu di depan; tidak ada jaminan urutan lintas sumber.
func GetAllProfiles(db *gorm.DB, opts ListOptions) ([]model.ProfileModel, error) {
	if opts.Limit <= 0 {
		opts.Limit = 25
	}

	out := make([]model.ProfileModel, 0, opts.Limit)

	if !opts.OnlyDemo {
		regular, err := repo.ListProfiles(db, model.FamilyRegular, opts.Limit, opts.Offset, opts.Fields)
		if err != nil {
			return nil, errs.Wrap("Failed to list profiles", err)
		}
		out = append(out, regular...)
	}

	if opts.OnlyDemo || opts.IncludeDemo {
		demo, err := repo.ListProfiles(db, model.FamilyDemo, opts.Limit, opts.Offset, opts.Fields)
		if err != nil {
			return nil, errs.Wrap("Failed to list demo profiles", err)
		}
		out = append(out, demo...)
	}

	return out, nil
}

// HasProfile probe ringan ke keluarga regular, dipakai login untuk flag has_profile.
func HasProfile(db *gorm.DB, userID uuid.UUID) bool {
	exists, err := repo.ProfileExists(db, model.FamilyRegular, userID)
	if err != nil {
		log.Printf("[WARN] probe has_profile %s: %v", userID, err)
		return false
	}
	return exists
}
