package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"taarufku_backend/internals/configs"
	"taarufku_backend/internals/errs"
	authModel "taarufku_backend/internals/features/users/auth/model"
	authRepo "taarufku_backend/internals/features/users/auth/repository"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	if configs.DefaultCountry == "" {
		configs.DefaultCountry = "1"
	}
	if configs.AppDomain == "" {
		configs.AppDomain = "taarufku.app"
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.PhoneOTPModel{},
	))
	return db
}

func seedOTP(t *testing.T, db *gorm.DB, phone, code string, now time.Time) uuid.UUID {
	t.Helper()
	otp := &authModel.PhoneOTPModel{
		ID:        uuid.New(),
		Phone:     phone,
		CodeHash:  hashOTPCode(code),
		ExpiresAt: now.Add(otpTTL),
		CreatedAt: now,
	}
	require.NoError(t, authRepo.CreateOTP(db, otp))
	return otp.ID
}

func TestIssueOTPNormalizesAndStoresHash(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()

	phone, err := IssueOTP(db, "(555) 123-4567", now)
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", phone)

	otp, err := authRepo.FindActiveOTP(db, phone, now)
	require.NoError(t, err)
	assert.NotEmpty(t, otp.CodeHash)
	assert.Zero(t, otp.Attempts)
	assert.True(t, otp.ExpiresAt.After(now))
}

func TestIssueOTPInvalidPhone(t *testing.T) {
	db := setupAuthDB(t)

	_, err := IssueOTP(db, "not a phone", time.Now().UTC())
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func TestIssueOTPThrottlesPerNumber(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()

	for i := 0; i < otpThrottleMax; i++ {
		_, err := IssueOTP(db, "+15551234567", now)
		require.NoError(t, err)
	}

	_, err := IssueOTP(db, "+15551234567", now)
	require.Error(t, err)
	assert.Equal(t, errs.RateLimited, errs.KindOf(err))

	// Nomor lain tidak kena throttle
	_, err = IssueOTP(db, "+15559876543", now)
	assert.NoError(t, err)
}

func TestRedeemOTPCreatesUserOnFirstLogin(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()
	seedOTP(t, db, "+15551234567", "123456", now)

	user, err := RedeemOTP(db, "(555) 123-4567", "123456", now)
	require.NoError(t, err)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "+15551234567", *user.Phone)
	assert.Equal(t, "user.15551234567@"+configs.AppDomain, user.Email)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.Password) // password acak ter-hash, bukan kosong
}

func TestRedeemOTPReusesExistingUser(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()

	seedOTP(t, db, "+15551234567", "111111", now)
	first, err := RedeemOTP(db, "+15551234567", "111111", now)
	require.NoError(t, err)

	seedOTP(t, db, "+15551234567", "222222", now)
	second, err := RedeemOTP(db, "+15551234567", "222222", now)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestRedeemOTPWrongCode(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()
	id := seedOTP(t, db, "+15551234567", "123456", now)

	_, err := RedeemOTP(db, "+15551234567", "999999", now)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidOTP, errs.KindOf(err))

	// Percobaan gagal tercatat
	var otp authModel.PhoneOTPModel
	require.NoError(t, db.First(&otp, "id = ?", id).Error)
	assert.Equal(t, 1, otp.Attempts)
}

func TestRedeemOTPAttemptCap(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()
	seedOTP(t, db, "+15551234567", "123456", now)

	for i := 0; i < otpMaxAttempts; i++ {
		_, err := RedeemOTP(db, "+15551234567", "000000", now)
		require.Error(t, err)
		assert.Equal(t, errs.InvalidOTP, errs.KindOf(err))
	}

	// Setelah cap, kode benar pun ditolak: harus minta kode baru
	_, err := RedeemOTP(db, "+15551234567", "123456", now)
	require.Error(t, err)
	assert.Equal(t, errs.RateLimited, errs.KindOf(err))
}

func TestRedeemOTPExpired(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()
	seedOTP(t, db, "+15551234567", "123456", now)

	_, err := RedeemOTP(db, "+15551234567", "123456", now.Add(otpTTL+time.Minute))
	require.Error(t, err)
	assert.Equal(t, errs.InvalidOTP, errs.KindOf(err))
}

func TestRedeemOTPIsSingleUse(t *testing.T) {
	db := setupAuthDB(t)
	now := time.Now().UTC()
	seedOTP(t, db, "+15551234567", "123456", now)

	_, err := RedeemOTP(db, "+15551234567", "123456", now)
	require.NoError(t, err)

	_, err = RedeemOTP(db, "+15551234567", "123456", now)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidOTP, errs.KindOf(err))
}

func TestBuildNewUserPhoneIdentifier(t *testing.T) {
	setupAuthDB(t)

	user, err := buildNewUser("Ahmad", "(555) 123-4567", "secret-password")
	require.NoError(t, err)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "+15551234567", *user.Phone)
	assert.Equal(t, "user.15551234567@"+configs.AppDomain, user.Email)
	assert.NotEqual(t, "secret-password", user.Password) // bcrypt hash
}

func TestBuildNewUserEmailIdentifier(t *testing.T) {
	setupAuthDB(t)

	user, err := buildNewUser("Ahmad", "Ahmad@Example.COM", "secret-password")
	require.NoError(t, err)
	assert.Nil(t, user.Phone)
	assert.Equal(t, "ahmad@example.com", user.Email)
}
