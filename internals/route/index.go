// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileRoute "taarufku_backend/internals/features/matchmaking/profiles/route"
	schemaRoute "taarufku_backend/internals/features/system/schema/route"
	authRoute "taarufku_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up ProfileRoutes...")
	profileRoute.ProfileRoutes(app, db)

	log.Println("[INFO] Setting up SchemaRoutes...")
	schemaRoute.SchemaRoutes(app, db)
}
