package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BijinVijayan/food-store/events"
	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StoreController struct {
	DB *gorm.DB
}

func NewStoreController(db *gorm.DB) *StoreController {
	return &StoreController{DB: db}
}

// CreateStore onboards the authenticated user: one store per owner, unique
// slug, and the user record is linked and promoted to admin.
func (sc *StoreController) CreateStore(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Logo        string `json:"logo"`
		CoverImage  string `json:"coverImage"`
		Location    string `json:"location"`
		OwnerName   string `json:"ownerName"`
		Description string `json:"description"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and slug are required"))
		return
	}

	var user models.User
	if err := sc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}
	if user.StoreID != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you already have a store"))
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var existing models.Store
	if err := sc.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("store URL is already taken"))
		return
	}

	store := models.Store{
		Name:            req.Name,
		Slug:            slug,
		OwnerID:         user.ID,
		Currency:        "AED",
		Logo:            req.Logo,
		CoverImage:      req.CoverImage,
		Location:        req.Location,
		Description:     req.Description,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		AcceptingOrders: true,
		IsActive:        true,
	}
	if err := sc.DB.Create(&store).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	userUpdates := map[string]interface{}{
		"store_id": store.ID,
		"role":     "admin",
	}
	if req.OwnerName != "" {
		userUpdates["name"] = req.OwnerName
	}
	if err := sc.DB.Model(&user).Updates(userUpdates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Store created: %s (owner=%d)", store.Slug, user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"storeId": store.ID,
		"message": "Store created successfully",
	})
}

// GetSettings resolves the single store owned by the authenticated user.
func (sc *StoreController) GetSettings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var store models.Store
	if err := sc.DB.Where("owner_id = ?", userID).First(&store).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("store not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"store": store})
}

// UpdateSettings merge-patches the whitelisted settings fields. Anything else
// in the payload is ignored outright, not merely unvalidated.
func (sc *StoreController) UpdateSettings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		Name            *string `json:"name"`
		Address         *string `json:"address"`
		Phone           *string `json:"phone"`
		Email           *string `json:"email"`
		Logo            *string `json:"logo"`
		CoverImage      *string `json:"coverImage"`
		AcceptingOrders *bool   `json:"acceptingOrders"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var store models.Store
	if err := sc.DB.Where("owner_id = ?", userID).First(&store).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("store not found"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.AcceptingOrders != nil {
		updates["accepting_orders"] = *req.AcceptingOrders
	}

	if len(updates) > 0 {
		if err := sc.DB.Model(&store).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	events.Broadcast(events.EventSettingsUpdate, store)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"store":   store,
		"message": "Settings updated successfully",
	})
}
