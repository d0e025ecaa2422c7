// internals/features/matchmaking/profiles/controller/profile_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"taarufku_backend/internals/errs"
	dto "taarufku_backend/internals/features/matchmaking/profiles/dto"
	"taarufku_backend/internals/features/matchmaking/profiles/service"
	helpers "taarufku_backend/internals/helpers"
	authMw "taarufku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

type saveProfileRequest struct {
	dto.ProfileInput
	IsDemo bool `json:"is_demo"`
}

// POST /api/profiles
// Sesi wajib untuk profil regular; is_demo=true boleh tanpa sesi
// (route memakai OptionalAuthMiddleware).
func (pc *ProfileController) SaveProfile(c *fiber.Ctx) error {
	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req.ProfileInput); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	principalID := authMw.UserIDFromLocals(c)

	result, err := service.SaveProfile(pc.DB, principalID, &req.ProfileInput, req.IsDemo, service.DefaultWriterOptions())
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return helpers.JsonCreated(c, "Profile saved", result)
}

// GET /api/profiles/:id
func (pc *ProfileController) GetProfileByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid profile id")
	}

	resolved, err := service.GetProfileByID(pc.DB, id)
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}
	if resolved.Data == nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	return helpers.JsonOK(c, "OK", resolved)
}

// GET /api/profiles/:id/complete
func (pc *ProfileController) GetCompleteProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid profile id")
	}

	complete, err := service.GetCompleteProfile(pc.DB, id)
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return helpers.JsonOK(c, "OK", complete)
}

// GET /api/profiles?page=&per_page=&source=regular|demo|all
func (pc *ProfileController) GetAllProfiles(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 100)

	source := strings.ToLower(strings.TrimSpace(c.Query("source", "regular")))
	opts := service.ListOptions{
		Limit:       paging.Limit,
		Offset:      paging.Offset,
		IncludeDemo: source == "all",
		OnlyDemo:    source == "demo",
		Fields:      parseProfileFields(c.Query("fields")),
	}

	profiles, err := service.GetAllProfiles(pc.DB, opts)
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return helpers.JsonList(c, "OK", profiles, paging, len(profiles))
}

// Kolom yang boleh diminta lewat ?fields= (whitelist, bukan passthrough ke SQL).
var allowedProfileFields = map[string]bool{
	"id": true, "user_id": true, "name": true, "date_of_birth": true, "gender": true,
	"height_cm": true, "ethnicity": true, "marital_status": true, "has_children": true,
	"number_of_children": true, "religion": true, "islamic_sect": true, "cover_head": true,
	"cover_type": true, "education_level": true, "university": true, "occupation": true,
	"company": true, "monthly_income": true, "nationality": true, "location": true,
	"profile_picture_url": true, "is_demo": true, "created_at": true, "updated_at": true,
}

func parseProfileFields(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if allowedProfileFields[f] {
			out = append(out, f)
		}
	}
	return out
}

// GET /api/profiles/me/complete
func (pc *ProfileController) GetMyCompleteProfile(c *fiber.Ctx) error {
	principalID := authMw.UserIDFromLocals(c)
	if principalID == nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Profil regular punya ID = user ID
	complete, err := service.GetCompleteProfile(pc.DB, *principalID)
	if err != nil {
		kind := errs.KindOf(err)
		return helpers.JsonErrorCode(c, errs.HTTPStatus(kind), kind.String(), err.Error())
	}

	return helpers.JsonOK(c, "OK", complete)
}
