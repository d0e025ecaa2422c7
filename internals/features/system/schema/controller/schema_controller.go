package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taarufku_backend/internals/features/system/schema/service"
	helpers "taarufku_backend/internals/helpers"
)

type SchemaController struct {
	DB *gorm.DB
}

func NewSchemaController(db *gorm.DB) *SchemaController {
	return &SchemaController{DB: db}
}

// GET /api/system/schema-status
func (sc *SchemaController) SchemaStatus(c *fiber.Ctx) error {
	status := service.EnsureDatabaseSetup(sc.DB)
	if !status.AllPresent {
		// 200 tetap dipakai: ini laporan diagnostik, bukan kegagalan request
		return helpers.JsonOK(c, "Sebagian tabel belum tersedia", status)
	}
	return helpers.JsonOK(c, "Semua tabel tersedia", status)
}
