// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "taarufku_backend/internals/features/users/auth/controller"
	rateLimiter "taarufku_backend/internals/middlewares"
	authMw "taarufku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/otp/request", rateLimiter.OTPRequestRateLimiter(), authController.RequestPhoneOTP)
	baseAuth.Post("/otp/verify", rateLimiter.LoginRateLimiter(), authController.VerifyPhoneOTP)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// Logout idempotent: tanpa sesi pun cookie tetap dibersihkan
	baseAuth.Post("/logout", authController.Logout)

	// 🔒 Protected
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/change-password", authController.ChangePassword)
	protected.Get("/me", authController.Me)
}
