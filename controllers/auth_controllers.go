package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpValidity = 10 * time.Minute

type AuthController struct {
	DB     *gorm.DB
	Sender services.OTPSender
}

func NewAuthController(db *gorm.DB, sender services.OTPSender) *AuthController {
	return &AuthController{DB: db, Sender: sender}
}

// SendOTP attaches a fresh 5-digit code to the user keyed by email, creating
// the user if this is their first visit, and mails the code.
func (ac *AuthController) SendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("valid email is required"))
		return
	}

	code := fmt.Sprintf("%05d", rand.Intn(90000)+10000)
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	expiresAt := time.Now().Add(otpValidity)

	var user models.User
	err = ac.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:      req.Email,
			OTP:        string(hashed),
			OTPExpires: &expiresAt,
			Role:       "store_owner",
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	default:
		updates := map[string]interface{}{
			"otp":         string(hashed),
			"otp_expires": expiresAt,
		}
		if err := ac.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := ac.Sender.SendOTP(req.Email, code); err != nil {
		utils.ErrorLogger.Printf("otp delivery to %s failed: %v", req.Email, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to send email"))
		return
	}

	utils.InfoLogger.Printf("OTP sent to %s", req.Email)
	utils.RespondMessage(c, http.StatusOK, "OTP sent successfully")
}

// VerifyOTP checks the code, clears it, and issues the session cookie. The
// isNewUser flag routes users without a store to onboarding.
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid otp"))
		return
	}

	if user.OTP == "" || user.OTPExpires == nil || time.Now().After(*user.OTPExpires) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid otp"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.OTP), []byte(req.OTP)); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid otp"))
		return
	}

	cleared := map[string]interface{}{"otp": "", "otp_expires": nil}
	if err := ac.DB.Model(&user).Updates(cleared).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, user.StoreID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	isNewUser := user.StoreID == nil

	c.SetCookie(utils.SessionCookie, token, 24*60*60, "/", "", false, true)
	utils.InfoLogger.Printf("Login: %s (new=%t)", user.Email, isNewUser)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"isNewUser": isNewUser,
		"token":     token,
	})
}

// Me returns the authenticated user and their store, if any.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	var store *models.Store
	if user.StoreID != nil {
		var s models.Store
		if err := ac.DB.First(&s, *user.StoreID).Error; err == nil {
			store = &s
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "store": store})
}
