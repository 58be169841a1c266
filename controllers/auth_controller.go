package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

const sessionTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Activity *services.ActivityService
}

func NewAuthController(db *gorm.DB, activity *services.ActivityService) *AuthController {
	return &AuthController{DB: db, Activity: activity}
}

type adminRegisterPayload struct {
	AdminFirstName string `json:"adminFirstName" binding:"required"`
	AdminLastName  string `json:"adminLastName" binding:"required"`
	AdminEmail     string `json:"adminEmail" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	EName          string `json:"eName" binding:"required"`
	Address        string `json:"address"`
}

// AdminRegister creates an establishment and its first admin account.
func (ctrl *AuthController) AdminRegister(c *gin.Context) {
	var payload adminRegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	var admin models.Admin
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		est := models.Establishment{
			EName:   strings.TrimSpace(payload.EName),
			Address: strings.TrimSpace(payload.Address),
		}
		if err := tx.Create(&est).Error; err != nil {
			return err
		}
		admin = models.Admin{
			EstablishmentID: est.EstablishmentID,
			AdminFirstName:  strings.TrimSpace(payload.AdminFirstName),
			AdminLastName:   strings.TrimSpace(payload.AdminLastName),
			AdminEmail:      strings.ToLower(strings.TrimSpace(payload.AdminEmail)),
			Password:        hash,
		}
		return tx.Create(&admin).Error
	})
	if txErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register admin: "+txErr.Error())
		return
	}

	ctrl.Activity.Record(admin.AdminID, models.ActorAdmin, "create", "Registered admin account.")
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var admin models.Admin
	err := ctrl.DB.First(&admin, "admin_email = ?", strings.ToLower(strings.TrimSpace(payload.Email))).Error
	if err != nil || !utils.CheckPassword(admin.Password, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.AdminID, models.ActorAdmin, admin.EstablishmentID, sessionTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ctrl.setSessionCookie(c, token)

	ctrl.Activity.Record(admin.AdminID, models.ActorAdmin, "login", "Logged in.")
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"admin_id":         admin.AdminID,
		"establishment_id": admin.EstablishmentID,
		"adminFirstName":   admin.AdminFirstName,
		"adminLastName":    admin.AdminLastName,
	})
}

func (ctrl *AuthController) AdminLogout(c *gin.Context) {
	ctrl.clearSessionCookie(c)
	ctrl.Activity.Record(middleware.ActorID(c), models.ActorAdmin, "logout", "Logged out.")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// CheckAuth echoes the authenticated admin so the frontend can restore a
// session from the cookie alone.
func (ctrl *AuthController) CheckAuth(c *gin.Context) {
	var admin models.Admin
	if err := ctrl.DB.First(&admin, "admin_id = ?", middleware.ActorID(c)).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "admin not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

func (ctrl *AuthController) TenantLogin(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var tenant models.Tenant
	err := ctrl.DB.First(&tenant, "tenant_email = ?", strings.ToLower(strings.TrimSpace(payload.Email))).Error
	if err != nil || !utils.CheckPassword(tenant.Password, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(tenant.TenantID, models.ActorTenant, tenant.EstablishmentID, sessionTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ctrl.setSessionCookie(c, token)

	ctrl.Activity.Record(tenant.TenantID, models.ActorTenant, "login", "Logged in.")
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tenant_id":        tenant.TenantID,
		"establishment_id": tenant.EstablishmentID,
		"room_id":          tenant.RoomID,
		"tenantFirstName":  tenant.TenantFirstName,
		"tenantLastName":   tenant.TenantLastName,
	})
}

func (ctrl *AuthController) TenantLogout(c *gin.Context) {
	ctrl.clearSessionCookie(c)
	ctrl.Activity.Record(middleware.ActorID(c), models.ActorTenant, "logout", "Logged out.")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (ctrl *AuthController) TenantCheckAuth(c *gin.Context) {
	var tenant models.Tenant
	if err := ctrl.DB.Preload("Room").First(&tenant, "tenant_id = ?", middleware.ActorID(c)).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

type updatePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (ctrl *AuthController) UpdateAdminPassword(c *gin.Context) {
	var payload updatePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var admin models.Admin
	if err := ctrl.DB.First(&admin, "admin_id = ?", middleware.ActorID(c)).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "admin not found")
		return
	}
	if !utils.CheckPassword(admin.Password, payload.CurrentPassword) {
		utils.JSONError(c, http.StatusForbidden, "current password does not match")
		return
	}

	hash, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := ctrl.DB.Model(&admin).Update("password", hash).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update password")
		return
	}

	ctrl.Activity.Record(admin.AdminID, models.ActorAdmin, "update", "Changed account password.")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}

type forgotPasswordPayload struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword issues a one-shot reset token. Delivering it to the account
// owner is out of scope here, so the response carries the token directly.
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	reset := models.PasswordReset{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	var admin models.Admin
	if err := ctrl.DB.First(&admin, "admin_email = ?", email).Error; err == nil {
		reset.AdminID = &admin.AdminID
	} else {
		var tenant models.Tenant
		if err := ctrl.DB.First(&tenant, "tenant_email = ?", email).Error; err != nil {
			// Do not reveal whether the account exists.
			utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reset requested"})
			return
		}
		reset.TenantID = &tenant.TenantID
	}

	if err := ctrl.DB.Create(&reset).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create reset token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reset requested", "token": reset.Token})
}

type resetPasswordPayload struct {
	Password string `json:"password" binding:"required,min=6"`
}

func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	tokenStr := c.Param("token")
	var payload resetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var reset models.PasswordReset
	err := ctrl.DB.First(&reset, "token = ? AND used = ? AND expires_at > ?",
		tokenStr, false, time.Now().UTC()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusBadRequest, "invalid or expired reset token")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reset token")
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		switch {
		case reset.AdminID != nil:
			if err := tx.Model(&models.Admin{}).Where("admin_id = ?", *reset.AdminID).
				Update("password", hash).Error; err != nil {
				return err
			}
		case reset.TenantID != nil:
			if err := tx.Model(&models.Tenant{}).Where("tenant_id = ?", *reset.TenantID).
				Update("password", hash).Error; err != nil {
				return err
			}
		}
		return tx.Model(&reset).Update("used", true).Error
	})
	if txErr != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset password")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password reset"})
}

func (ctrl *AuthController) setSessionCookie(c *gin.Context, token string) {
	secure := strings.EqualFold(utils.EnvOrDefault("COOKIE_SECURE", "false"), "true")
	c.SetCookie(middleware.TokenCookie, token, int(sessionTTL.Seconds()), "/", "", secure, true)
}

func (ctrl *AuthController) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
}
