package service

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Tes jalur Postgres asli: error SQLSTATE dari server (bukan substring
// fallback seperti di sqlite) harus terklasifikasi dengan benar.
func setupMockPG(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCheckTableUndefinedTableSQLSTATE(t *testing.T) {
	db, mock := setupMockPG(t)

	mock.ExpectQuery(`SELECT id FROM profiles LIMIT 1`).
		WillReturnError(&pgconn.PgError{
			Code:    "42P01",
			Message: `relation "profiles" does not exist`,
		})

	check := CheckTable(db, "profiles")
	assert.False(t, check.OK)
	assert.Equal(t, "missing", check.Status)
	assert.Contains(t, check.Detail, "does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckTablePermissionErrorIsNotMissing(t *testing.T) {
	db, mock := setupMockPG(t)

	mock.ExpectQuery(`SELECT id FROM phone_otps LIMIT 1`).
		WillReturnError(&pgconn.PgError{
			Code:    "42501",
			Message: "permission denied for table phone_otps",
		})

	check := CheckTable(db, "phone_otps")
	assert.False(t, check.OK)
	assert.Equal(t, "error", check.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckTablePresentViaMock(t *testing.T) {
	db, mock := setupMockPG(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("4b8f0d24-0000-0000-0000-000000000000")
	mock.ExpectQuery(`SELECT id FROM demo_profiles LIMIT 1`).WillReturnRows(rows)

	check := CheckTable(db, "demo_profiles")
	assert.True(t, check.OK)
	assert.Equal(t, "present", check.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
