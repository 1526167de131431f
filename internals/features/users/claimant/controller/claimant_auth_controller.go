// internals/features/users/claimant/controller/claimant_auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/configs"
	"vanadhikar_backend/internals/features/users/claimant/dto"
	"vanadhikar_backend/internals/features/users/claimant/model"
	helper "vanadhikar_backend/internals/helpers"
	helperAuth "vanadhikar_backend/internals/helpers/auth"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

type ClaimantAuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClaimantAuthController(db *gorm.DB) *ClaimantAuthController {
	return &ClaimantAuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/claimant/register
func (ctrl *ClaimantAuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterClaimantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.Claimant
	if err := ctrl.DB.Where("claimant_aadhaar = ?", body.Aadhaar).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "A claimant with this Aadhaar number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] claimant register lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	claimant := model.Claimant{
		ClaimantName:     body.Name,
		ClaimantAadhaar:  body.Aadhaar,
		ClaimantPhone:    body.Phone,
		ClaimantEmail:    body.Email,
		ClaimantPassword: string(hash),
	}
	if err := ctrl.DB.Create(&claimant).Error; err != nil {
		log.Printf("[ERROR] claimant register insert: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered successfully", toClaimantResponse(&claimant))
}

// POST /api/auth/claimant/login
func (ctrl *ClaimantAuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginClaimantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var claimant model.Claimant
	if err := ctrl.DB.Where("claimant_aadhaar = ?", body.Aadhaar).First(&claimant).Error; err != nil {
		// Same message for unknown Aadhaar and bad password.
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(claimant.ClaimantPassword), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return ctrl.issueSession(c, &claimant)
}

// POST /api/auth/claimant/login-google
// Verifies a Google id_token and logs the linked claimant in. Filing still
// requires a registered claimant record; an unknown Google account gets a
// 404 nudge to register first.
func (ctrl *ClaimantAuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	var claimant model.Claimant
	err = ctrl.DB.Where("claimant_google_sub = ?", claimSet.Sub).First(&claimant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && claimSet.Email != "" {
		// First Google sign-in: link by verified email.
		err = ctrl.DB.Where("claimant_email = ?", strings.ToLower(claimSet.Email)).First(&claimant).Error
		if err == nil {
			sub := claimSet.Sub
			if updErr := ctrl.DB.Model(&claimant).Update("claimant_google_sub", &sub).Error; updErr != nil {
				log.Printf("[WARN] google sub link failed: %v", updErr)
			}
		}
	}
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "No claimant account for this Google account, please register first")
	}

	return ctrl.issueSession(c, &claimant)
}

// POST /api/auth/claimant/logout
func (ctrl *ClaimantAuthController) Logout(c *fiber.Ctx) error {
	helperAuth.ClearAuthCookie(c, authMiddleware.ClaimantCookieName)
	return helper.Success(c, "Logged out", nil)
}

// GET /api/auth/claimant/me
func (ctrl *ClaimantAuthController) Me(c *fiber.Ctx) error {
	claimantID, err := helper.GetClaimantIDFromToken(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Not logged in")
	}

	var claimant model.Claimant
	if err := ctrl.DB.Where("claimant_id = ?", claimantID).First(&claimant).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Claimant not found")
	}
	return helper.Success(c, "Profile", toClaimantResponse(&claimant))
}

func (ctrl *ClaimantAuthController) issueSession(c *fiber.Ctx, claimant *model.Claimant) error {
	token, err := helperAuth.SignToken(jwt.MapClaims{
		"sub":  claimant.ClaimantID.String(),
		"role": "claimant",
		"name": claimant.ClaimantName,
	})
	if err != nil {
		log.Printf("[ERROR] claimant token sign: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	helperAuth.SetAuthCookie(c, authMiddleware.ClaimantCookieName, token)
	return helper.Success(c, "Logged in", toClaimantResponse(claimant))
}

func toClaimantResponse(m *model.Claimant) dto.ClaimantResponse {
	return dto.ClaimantResponse{
		ClaimantID: m.ClaimantID.String(),
		Name:       m.ClaimantName,
		Aadhaar:    m.ClaimantAadhaar,
		Phone:      m.ClaimantPhone,
		Email:      m.ClaimantEmail,
	}
}
