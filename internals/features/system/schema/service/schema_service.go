// internals/features/system/schema/service/schema_service.go
package service

import (
	"log"

	"gorm.io/gorm"

	"taarufku_backend/internals/errs"
	model "taarufku_backend/internals/features/matchmaking/profiles/model"
)

type TableCheck struct {
	Table  string `json:"table"`
	OK     bool   `json:"ok"`
	Status string `json:"status"` // "present" | "missing" | "error"
	Detail string `json:"detail,omitempty"`
}

type SchemaStatus struct {
	AllPresent bool         `json:"all_present"`
	Checks     []TableCheck `json:"checks"`
}

// CheckTable melakukan trial select. Sukses hanya membuktikan tabelnya ada;
// kolom TIDAK diverifikasi (kredensial terbatas, tidak bisa introspeksi).
func CheckTable(db *gorm.DB, table string) TableCheck {
	var id *string
	err := db.Raw("SELECT id FROM " + table + " LIMIT 1").Scan(&id).Error
	if err == nil {
		return TableCheck{Table: table, OK: true, Status: "present"}
	}

	if errs.Classify(err) == errs.NotFound {
		// Tabel belum ada → cetak DDL untuk dieksekusi manual.
		if ddl := DDLFor(table); ddl != "" {
			log.Printf("⚠️ Tabel %s belum ada. Jalankan DDL berikut lewat SQL editor:\n%s", table, ddl)
		} else {
			log.Printf("⚠️ Tabel %s belum ada (dikelola migrasi terpisah)", table)
		}
		return TableCheck{Table: table, OK: false, Status: "missing", Detail: err.Error()}
	}

	return TableCheck{Table: table, OK: false, Status: "error", Detail: err.Error()}
}

// EnsureDatabaseSetup memeriksa SEMUA tabel tanpa short-circuit dan
// mengumpulkan hasilnya. Read-only: tidak pernah mengeksekusi DDL.
func EnsureDatabaseSetup(db *gorm.DB) SchemaStatus {
	status := SchemaStatus{AllPresent: true}

	tables := make([]string, 0, 14)
	for _, fam := range []model.Family{model.FamilyRegular, model.FamilyDemo} {
		tables = append(tables, fam.AllTables()...)
	}
	tables = append(tables, "users", "refresh_tokens", "token_blacklist", "phone_otps")

	for _, table := range tables {
		check := CheckTable(db, table)
		if !check.OK {
			status.AllPresent = false
		}
		status.Checks = append(status.Checks, check)
	}

	return status
}

// LogStartupStatus dipanggil sekali dari main saat boot (best-effort).
func LogStartupStatus(db *gorm.DB) {
	status := EnsureDatabaseSetup(db)
	if status.AllPresent {
		log.Println("✅ Semua tabel skema tersedia")
		return
	}
	for _, check := range status.Checks {
		if !check.OK {
			log.Printf("❌ Tabel %s: %s", check.Table, check.Status)
		}
	}
}
