// internals/features/users/auth/service/otp_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"taarufku_backend/internals/configs"
	"taarufku_backend/internals/errs"
	authHelper "taarufku_backend/internals/features/users/auth/helper"
	authModel "taarufku_backend/internals/features/users/auth/model"
	authRepo "taarufku_backend/internals/features/users/auth/repository"
	helpers "taarufku_backend/internals/helpers"
)

const (
	otpTTL            = 5 * time.Minute
	otpMaxAttempts    = 5
	otpThrottleWindow = 5 * time.Minute
	otpThrottleMax    = 3
)

/* ==========================
   HTTP HANDLERS
========================== */

// POST /api/auth/otp/request
func RequestPhoneOTP(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	phone, err := IssueOTP(db, input.Phone, nowUTC())
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return helpers.JsonOK(c, "OTP terkirim", fiber.Map{
		"phone":       phone,
		"expires_in":  int(otpTTL.Seconds()),
		"retry_after": int(otpThrottleWindow.Seconds()),
	})
}

// POST /api/auth/otp/verify
func VerifyPhoneOTP(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := RedeemOTP(db, input.Phone, input.Code, nowUTC())
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   CORE (tanpa fiber, dipakai handler & test)
========================== */

// IssueOTP: normalisasi nomor, throttle per-nomor, simpan kode hashed.
// Pengiriman SMS di luar scope; kode di-log untuk integrasi gateway.
func IssueOTP(db *gorm.DB, rawPhone string, now time.Time) (string, error) {
	phone := helpers.NormalizePhoneE164(rawPhone, configs.DefaultCountry)
	if phone == "" {
		return "", errs.New(errs.InvalidInput, "Nomor telepon tidak valid")
	}

	recent, err := authRepo.CountRecentOTPRequests(db, phone, now.Add(-otpThrottleWindow))
	if err != nil {
		return "", errs.Wrap("Failed to check OTP throttle", err)
	}
	if recent >= otpThrottleMax {
		return "", errs.New(errs.RateLimited, "Terlalu banyak permintaan OTP, coba lagi nanti")
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", errs.Wrap("Failed to generate OTP", err)
	}

	if err := authRepo.CreateOTP(db, &authModel.PhoneOTPModel{
		ID:        uuid.New(),
		Phone:     phone,
		CodeHash:  hashOTPCode(code),
		ExpiresAt: now.Add(otpTTL),
		CreatedAt: now,
	}); err != nil {
		return "", errs.Wrap("Failed to store OTP", err)
	}

	// TODO: ganti dengan panggilan SMS gateway; sementara kode ke log saja.
	log.Printf("🔔 [%s] OTP untuk %s: %s (berlaku %s)", configs.SMSSenderID, phone, code, otpTTL)

	return phone, nil
}

// RedeemOTP memverifikasi kode lalu find-or-create user nomor tersebut.
func RedeemOTP(db *gorm.DB, rawPhone, code string, now time.Time) (*authModel.UserModel, error) {
	phone := helpers.NormalizePhoneE164(rawPhone, configs.DefaultCountry)
	if phone == "" {
		return nil, errs.New(errs.InvalidInput, "Nomor telepon tidak valid")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.New(errs.InvalidOTP, "Kode OTP wajib diisi")
	}

	otp, err := authRepo.FindActiveOTP(db, phone, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.New(errs.InvalidOTP, "Kode OTP salah atau kadaluarsa")
		}
		return nil, errs.Wrap("Failed to look up OTP", err)
	}

	if otp.Attempts >= otpMaxAttempts {
		return nil, errs.New(errs.RateLimited, "Terlalu banyak percobaan, minta kode baru")
	}

	if subtle.ConstantTimeCompare(otp.CodeHash, hashOTPCode(code)) != 1 {
		if err := authRepo.IncrementOTPAttempts(db, otp.ID); err != nil {
			log.Printf("[WARN] increment OTP attempts %s: %v", otp.ID, err)
		}
		return nil, errs.New(errs.InvalidOTP, "Kode OTP salah atau kadaluarsa")
	}

	if err := authRepo.ConsumeOTP(db, otp.ID, now); err != nil {
		return nil, errs.Wrap("Failed to consume OTP", err)
	}

	return findOrCreatePhoneUser(db, phone, now)
}

// findOrCreatePhoneUser: login OTP pertama kali otomatis membuat akun
// dengan synthetic email + password acak (hanya bisa login via OTP sampai
// user set password lewat change-password).
func findOrCreatePhoneUser(db *gorm.DB, phone string, now time.Time) (*authModel.UserModel, error) {
	user, err := authRepo.FindUserByPhone(db, phone)
	if err == nil {
		if !user.IsActive {
			return nil, errs.New(errs.Unauthenticated, "Akun Anda telah dinonaktifkan. Hubungi admin.")
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Wrap("Failed to look up user", err)
	}

	newUser := &authModel.UserModel{
		ID:        uuid.New(),
		UserName:  "user_" + helpers.PhoneDigits(phone),
		Email:     syntheticEmail(phone),
		Phone:     &phone,
		Password:  generateRandomPasswordHash(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := authRepo.CreateUser(db, newUser); err != nil {
		// race: request paralel sudah membuat user yang sama
		if errs.Classify(err) == errs.Conflict {
			return authRepo.FindUserByPhone(db, phone)
		}
		return nil, errs.Wrap("Failed to create user", err)
	}
	return newUser, nil
}

/* ==========================
   UTIL
========================== */

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashOTPCode(code string) []byte {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return sum[:]
}

func generateRandomPasswordHash() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	hash, _ := authHelper.HashPassword(fmt.Sprintf("%x", buf))
	return hash
}
