// file: internals/features/system/schema/route/schema_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "taarufku_backend/internals/features/system/schema/controller"
)

func SchemaRoutes(app *fiber.App, db *gorm.DB) {
	schemaController := controller.NewSchemaController(db)

	system := app.Group("/api/system")
	system.Get("/schema-status", schemaController.SchemaStatus)
}
