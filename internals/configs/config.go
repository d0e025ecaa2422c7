package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	AppDomain        string
	SMSSenderID      string
	DefaultCountry   string
)

// Write policy untuk profile aggregate writer. Best-effort mempertahankan
// perilaku lama (kegagalan tabel anak ditelan), transactional membatalkan
// seluruh save kalau ada yang gagal.
const (
	WritePolicyBestEffort    = "best_effort"
	WritePolicyTransactional = "transactional"
)

var (
	WritePolicy string
	// Simpan number_of_children sebagai NULL saat has_children=false,
	// alih-alih meng-omit kolomnya.
	PersistChildCountWhenNone bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AppDomain = GetEnv("APP_DOMAIN", "taarufku.app")
	SMSSenderID = GetEnv("SMS_SENDER_ID", "TAARUFKU")
	DefaultCountry = GetEnv("DEFAULT_COUNTRY_CODE", "1")

	// Secrets wajib dari environment, tidak ada fallback hardcoded.
	if JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET belum diset!")
	}
	if JWTRefreshSecret == "" {
		log.Fatal("❌ JWT_REFRESH_SECRET belum diset!")
	}

	WritePolicy = strings.ToLower(GetEnv("PROFILE_WRITE_POLICY", WritePolicyBestEffort))
	if WritePolicy != WritePolicyBestEffort && WritePolicy != WritePolicyTransactional {
		log.Printf("⚠️ PROFILE_WRITE_POLICY=%q tidak dikenal, pakai %s", WritePolicy, WritePolicyBestEffort)
		WritePolicy = WritePolicyBestEffort
	}
	PersistChildCountWhenNone = strings.EqualFold(GetEnv("PERSIST_CHILD_COUNT_WHEN_NONE", "false"), "true")

	log.Println("✅ Konfigurasi dimuat.")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
