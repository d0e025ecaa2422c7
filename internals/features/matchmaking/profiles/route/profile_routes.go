// file: internals/features/matchmaking/profiles/route/profile_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "taarufku_backend/internals/features/matchmaking/profiles/controller"
	rateLimiter "taarufku_backend/internals/middlewares"
	authMw "taarufku_backend/internals/middlewares/auth"
)

func ProfileRoutes(app *fiber.App, db *gorm.DB) {
	profileController := controller.NewProfileController(db)

	// Base: /api/profiles
	profiles := app.Group("/api/profiles")

	// Save menerima is_demo=true tanpa sesi; profil regular tetap butuh
	// token (dicek di writer lewat principal).
	profiles.Post("/", authMw.OptionalAuthMiddleware(db), profileController.SaveProfile)

	// 🔒 Khusus sesi sendiri — didaftarkan sebelum :id supaya tidak ketangkap param
	profiles.Get("/me/complete", authMw.AuthMiddleware(db), profileController.GetMyCompleteProfile)

	// 🔓 Public read (dibatasi per IP)
	public := app.Group("/api/profiles", rateLimiter.GlobalRateLimiter())
	public.Get("/", profileController.GetAllProfiles)
	public.Get("/:id", profileController.GetProfileByID)
	public.Get("/:id/complete", profileController.GetCompleteProfile)
}
