// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "taarufku_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

// FindUserByIdentifier mencari by email ATAU phone (dua-duanya unique).
func FindUserByIdentifier(db *gorm.DB, identifier string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ? OR phone = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByPhone(db *gorm.DB, phone string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.Model(&authModel.UserModel{}).Where("id = ?", userID).Update("password", newPassword).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

// FindRefreshTokenByHash mencari token aktif (belum di-revoke, belum expired).
// Kolom token_hash menyimpan HMAC-SHA256 dari refresh token, bukan plaintext.
func FindRefreshTokenByHash(db *gorm.DB, hash []byte, now time.Time) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByHash(db *gorm.DB, hash []byte, now time.Time) error {
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func DeleteExpiredRefreshTokens(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expires_at <= ?", before).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Where("expired_at <= ?", time.Now().UTC()).Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}

/* ====================== PHONE OTP ====================== */

// FindActiveOTP mengambil OTP terbaru yang belum di-consume dan belum expired.
func FindActiveOTP(db *gorm.DB, phone string, now time.Time) (*authModel.PhoneOTPModel, error) {
	var otp authModel.PhoneOTPModel
	if err := db.
		Where("phone = ? AND consumed_at IS NULL AND expires_at > ?", phone, now).
		Order("created_at DESC").
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func CreateOTP(db *gorm.DB, otp *authModel.PhoneOTPModel) error {
	return db.Create(otp).Error
}

func IncrementOTPAttempts(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&authModel.PhoneOTPModel{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}

func ConsumeOTP(db *gorm.DB, id uuid.UUID, now time.Time) error {
	return db.Model(&authModel.PhoneOTPModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", now).Error
}

// CountRecentOTPRequests untuk throttle per-nomor di level service.
func CountRecentOTPRequests(db *gorm.DB, phone string, since time.Time) (int64, error) {
	var n int64
	err := db.Model(&authModel.PhoneOTPModel{}).
		Where("phone = ? AND created_at > ?", phone, since).
		Count(&n).Error
	return n, err
}

func DeleteExpiredOTPs(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expires_at <= ?", before).Delete(&authModel.PhoneOTPModel{})
	return res.RowsAffected, res.Error
}
