package seeds

import (
	"os"
	"strconv"

	"gorm.io/gorm"

	demo "taarufku_backend/internals/seeds/demo"
)

// RunAllSeeds dipanggil dari main saat RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	count := 25
	if val := os.Getenv("DEMO_SEED_COUNT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			count = parsed
		}
	}

	demo.SeedDemoProfiles(db, count)
}
