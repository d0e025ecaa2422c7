package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "taarufku_backend/internals/features/users/auth/repository"
)

// StartAuthCleanupScheduler membersihkan token_blacklist, refresh_tokens
// kadaluarsa, dan phone_otps kadaluarsa secara periodik.
func StartAuthCleanupScheduler(db *gorm.DB) {
	go func() {
		interval := 24 * time.Hour
		if val := os.Getenv("AUTH_CLEANUP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = time.Duration(parsed) * time.Hour
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token & OTP kadaluarsa...")

			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus blacklist kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token blacklist kadaluarsa dihapus", n)
			}

			now := time.Now().UTC()
			if n, err := authRepo.DeleteExpiredRefreshTokens(db, now); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", n)
			}

			if n, err := authRepo.DeleteExpiredOTPs(db, now); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus OTP kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d OTP kadaluarsa dihapus", n)
			}

			time.Sleep(interval)
		}
	}()
}
