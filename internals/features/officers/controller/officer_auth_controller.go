// internals/features/officers/controller/officer_auth_controller.go
package controller

import (
	"errors"
	"log"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/constants"
	"vanadhikar_backend/internals/features/officers/dto"
	"vanadhikar_backend/internals/features/officers/model"
	helper "vanadhikar_backend/internals/helpers"
	helperAuth "vanadhikar_backend/internals/helpers/auth"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

type OfficerAuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOfficerAuthController(db *gorm.DB) *OfficerAuthController {
	return &OfficerAuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/officer/login
// One endpoint for every tier: the requested role has to match the stored
// one, and the session lands in that tier's own cookie.
func (ctrl *OfficerAuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginOfficerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var officer model.Officer
	if err := ctrl.DB.Where("officer_login_id = ?", body.LoginID).First(&officer).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(officer.OfficerPassword), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if officer.OfficerRole != body.Role {
		return helper.Error(c, fiber.StatusForbidden, "This login does not belong to the requested tier")
	}

	cookieName := authMiddleware.CookieNameForRole(officer.OfficerRole)
	if cookieName == "" {
		return helper.Error(c, fiber.StatusForbidden, "Unrecognized officer role")
	}

	token, err := helperAuth.SignToken(jwt.MapClaims{
		"sub":         officer.OfficerID.String(),
		"role":        officer.OfficerRole,
		"name":        officer.OfficerName,
		"gp_code":     officer.OfficerGPCode,
		"subdivision": officer.OfficerSubdivision,
		"district":    officer.OfficerDistrict,
	})
	if err != nil {
		log.Printf("[ERROR] officer token sign: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	helperAuth.SetAuthCookie(c, cookieName, token)
	return helper.Success(c, "Logged in", toOfficerResponse(&officer))
}

// POST /api/auth/officer/logout
// Clears every tier cookie; the dashboards share one logout button.
func (ctrl *OfficerAuthController) Logout(c *fiber.Ctx) error {
	for _, name := range []string{
		authMiddleware.GramSabhaCookieName,
		authMiddleware.BlockOfficerCookieName,
		authMiddleware.SubdivisionCookieName,
		authMiddleware.DistrictOfficerCookieName,
		authMiddleware.SuperAdminCookieName,
	} {
		helperAuth.ClearAuthCookie(c, name)
	}
	return helper.Success(c, "Logged out", nil)
}

// POST /api/auth/officer/register (SuperAdmin only, via route middleware)
func (ctrl *OfficerAuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterOfficerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Role == constants.RoleGramSabha && body.GPCode == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Gram Sabha officers need a gp_code assignment")
	}
	if slices.Contains(constants.SubdivisionRoles, body.Role) && body.Subdivision == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Subdivision officers need a subdivision assignment")
	}
	if slices.Contains(constants.FullVisibilityRoles, body.Role) && body.GPCode != "" {
		return helper.Error(c, fiber.StatusBadRequest, "Full-visibility roles do not take a gp_code assignment")
	}

	var existing model.Officer
	if err := ctrl.DB.Where("officer_login_id = ?", body.LoginID).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "An officer with this login id already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] officer register lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	officer := model.Officer{
		OfficerName:          body.Name,
		OfficerLoginID:       body.LoginID,
		OfficerPassword:      string(hash),
		OfficerRole:          body.Role,
		OfficerDistrict:      body.District,
		OfficerSubdivision:   body.Subdivision,
		OfficerGramPanchayat: body.GramPanchayat,
		OfficerGPCode:        body.GPCode,
		OfficerVillage:       body.Village,
	}
	if err := ctrl.DB.Create(&officer).Error; err != nil {
		log.Printf("[ERROR] officer register insert: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register officer")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Officer registered", toOfficerResponse(&officer))
}

// GET /api/admin/officers (SuperAdmin only)
func (ctrl *OfficerAuthController) ListOfficers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.Officer{})
	if role := c.Query("role"); role != "" {
		if !slices.Contains(constants.AllOfficerRoles, role) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown officer role")
		}
		q = q.Where("officer_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] officer list count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	var officers []model.Officer
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&officers).Error; err != nil {
		log.Printf("[ERROR] officer list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	items := make([]dto.OfficerResponse, 0, len(officers))
	for i := range officers {
		items = append(items, toOfficerResponse(&officers[i]))
	}

	return helper.Success(c, "Officers", fiber.Map{
		"officers":   items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}

func toOfficerResponse(m *model.Officer) dto.OfficerResponse {
	return dto.OfficerResponse{
		OfficerID:     m.OfficerID.String(),
		Name:          m.OfficerName,
		LoginID:       m.OfficerLoginID,
		Role:          m.OfficerRole,
		District:      m.OfficerDistrict,
		Subdivision:   m.OfficerSubdivision,
		GramPanchayat: m.OfficerGramPanchayat,
		GPCode:        m.OfficerGPCode,
		Village:       m.OfficerVillage,
	}
}
