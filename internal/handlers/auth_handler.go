package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/config"
	"github.com/atelierserenite/wellness-api/internal/httperr"
	"github.com/atelierserenite/wellness-api/internal/httpresp"
	"github.com/atelierserenite/wellness-api/internal/models"
	"github.com/atelierserenite/wellness-api/internal/notify"
	"github.com/atelierserenite/wellness-api/internal/validators"
)

const otpTTL = 15 * time.Minute

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mail   *notify.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, mail *notify.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, mail: mail}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.Validation(c, map[string]string{"email": "domain does not look valid"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password")
		return
	}

	user := models.User{
		Email:             email,
		PasswordHash:      string(hashed),
		Role:              "user",
		VerificationToken: uuid.NewString(),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The count above races with concurrent registrations; the unique
		// index on email is the source of truth.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			httperr.BadRequest(c, "email_already_registered")
			return
		}
		httperr.Internal(c, "failed_to_create_user")
		return
	}

	h.mail.Dispatch(notify.Message{
		To:      user.Email,
		Subject: "Confirmez votre adresse e-mail",
		Body:    "Votre lien de vérification : /auth/verify/" + user.VerificationToken,
	})

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"user":  publicUser(&user),
			"token": token,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials")
			return
		}
		httperr.Internal(c, "internal_error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  publicUser(&user),
		"token": token,
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	var user models.User
	if err := h.db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		httperr.NotFound(c, "invalid_verification_token")
		return
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_verify_email")
		return
	}

	httpresp.OK(c, gin.H{"verified": true})
}

// ForgotPassword always answers 200 so the endpoint cannot be used to
// probe which addresses exist.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		code := uuid.NewString()[:8]
		expires := time.Now().Add(otpTTL)

		user.OTPCode = code
		user.OTPExpiresAt = &expires
		if err := h.db.Save(&user).Error; err != nil {
			log.Println("otp save:", err)
		} else {
			h.mail.Dispatch(notify.Message{
				To:      user.Email,
				Subject: "Réinitialisation du mot de passe",
				Body:    "Votre code de réinitialisation : " + code,
			})
		}
	}

	httpresp.OK(c, gin.H{"sent": true})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_reset_code")
		return
	}

	if user.OTPCode == "" || user.OTPCode != req.Code ||
		user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		httperr.Unauthorized(c, "invalid_reset_code")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password")
		return
	}

	user.PasswordHash = string(hashed)
	user.OTPCode = ""
	user.OTPExpiresAt = nil
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password")
		return
	}

	httpresp.OK(c, gin.H{"reset": true})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"role":           user.Role,
		"email_verified": user.EmailVerified,
	}
}
