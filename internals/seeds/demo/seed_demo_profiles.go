// internals/seeds/demo/seed_demo_profiles.go
package demo

import (
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	profileService "taarufku_backend/internals/features/matchmaking/profiles/service"
)

// SeedDemoProfiles mengisi keluarga tabel demo lewat writer (bukan insert
// langsung) supaya semantik omit-vs-null dan fan-out-nya ikut teruji.
func SeedDemoProfiles(db *gorm.DB, count int) {
	if count <= 0 {
		count = 25
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	opts := profileService.DefaultWriterOptions()

	ok := 0
	for i := 0; i < count; i++ {
		in := GenerateProfileInput(r)
		result, err := profileService.SaveProfile(db, nil, in, true, opts)
		if err != nil {
			log.Printf("❌ Gagal insert profil demo #%d: %v", i+1, err)
			continue
		}
		ok++
		if len(result.PartialFailures) > 0 {
			log.Printf("⚠️ Profil demo %s tersimpan dengan %d sub-insert gagal", result.ProfileID, len(result.PartialFailures))
		}
	}

	log.Printf("✅ Seed selesai: %d/%d profil demo tersimpan", ok, count)
}
