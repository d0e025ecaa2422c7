package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"taarufku_backend/internals/configs"
	"taarufku_backend/internals/errs"
	profileService "taarufku_backend/internals/features/matchmaking/profiles/service"
	authHelper "taarufku_backend/internals/features/users/auth/helper"
	authModel "taarufku_backend/internals/features/users/auth/model"
	authRepo "taarufku_backend/internals/features/users/auth/repository"
	helpers "taarufku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// syntheticEmail membentuk email placeholder untuk akun telepon supaya
// kolom users.email (unique, not null) tetap konsisten.
func syntheticEmail(phone string) string {
	return "user." + helpers.PhoneDigits(phone) + "@" + configs.AppDomain
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName   string `json:"user_name"`
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := buildNewUser(input.UserName, input.Identifier, input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pre-check identifier; akun telepon memakai synthetic email sehingga
	// satu lookup email mencakup keduanya. Race tetap ditangkap Conflict di bawah.
	if _, err := authRepo.FindUserByEmail(db, user.Email); err == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau nomor telepon sudah terdaftar")
	}

	if err := authRepo.CreateUser(db, user); err != nil {
		if errs.Classify(err) == errs.Conflict {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau nomor telepon sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"phone": user.Phone,
	})
}

// buildNewUser: identifier telepon → normalisasi E.164 + synthetic email;
// identifier email dipakai apa adanya (lowercase).
func buildNewUser(userName, identifier, password string) (*authModel.UserModel, error) {
	passwordHash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, errors.New("password hashing failed")
	}

	now := nowUTC()
	user := &authModel.UserModel{
		ID:        uuid.New(),
		UserName:  strings.TrimSpace(userName),
		Password:  passwordHash,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if helpers.IsPhoneIdentifier(identifier) {
		phone := helpers.NormalizePhoneE164(identifier, configs.DefaultCountry)
		if phone == "" {
			return nil, errors.New("nomor telepon tidak valid")
		}
		user.Phone = &phone
		user.Email = syntheticEmail(phone)
	} else {
		user.Email = strings.ToLower(identifier)
	}

	return user, nil
}

/* ==========================
   LOGIN (email/phone + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Identifier telepon dinormalisasi dulu supaya cocok dengan kolom phone.
	identifier := input.Identifier
	if helpers.IsPhoneIdentifier(identifier) {
		if normalized := helpers.NormalizePhoneE164(identifier, configs.DefaultCountry); normalized != "" {
			identifier = normalized
		}
	} else {
		identifier = strings.ToLower(identifier)
	}

	user, err := authRepo.FindUserByIdentifier(db, identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user authModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	// has_profile: probe ringan, client pakai untuk routing onboarding
	hasProfile := profileService.HasProfile(db, user.ID)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":          user.ID,
			"user_name":   user.UserName,
			"email":       user.Email,
			"phone":       user.Phone,
			"has_profile": hasProfile,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := strings.TrimSpace(c.Get("Authorization"))
	accessToken = strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))
	if accessToken == "" {
		accessToken = strings.TrimSpace(c.Cookies("access_token"))
	}

	// Blacklist access token (idempotent)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookies (idempotent)")
	}

	// Revoke refresh token jika ada di cookie
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshTokenByHash(db, computeRefreshHash(rt, refreshSecret), nowUTC())
		}
	}

	// Hapus cookies
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}
