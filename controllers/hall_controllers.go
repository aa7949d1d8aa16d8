package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BijinVijayan/food-store/events"
	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HallController struct {
	DB      *gorm.DB
	Catalog *services.CatalogService
}

func NewHallController(db *gorm.DB) *HallController {
	return &HallController{DB: db, Catalog: services.NewCatalogService(db)}
}

// storeOf resolves the authenticated user's store; every hall operation is
// scoped to it.
func (hc *HallController) storeOf(c *gin.Context) (*models.Store, error) {
	userID := c.GetUint("user_id")

	var store models.Store
	if err := hc.DB.Where("owner_id = ?", userID).First(&store).Error; err != nil {
		return nil, errors.New("store not found")
	}
	return &store, nil
}

func (hc *HallController) GetAllHalls(c *gin.Context) {
	store, err := hc.storeOf(c)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var halls []models.Hall
	if err := hc.DB.Where("store_id = ?", store.ID).Order("created_at DESC").Find(&halls).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "halls": halls})
}

func (hc *HallController) CreateHall(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Image    string `json:"image"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("hall name is required"))
		return
	}

	store, err := hc.storeOf(c)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	hall := models.Hall{
		Name:     req.Name,
		Image:    req.Image,
		IsActive: true,
		StoreID:  store.ID,
	}
	if req.IsActive != nil {
		hall.IsActive = *req.IsActive
	}

	if err := hc.DB.Create(&hall).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventHallUpdate, hall)
	utils.InfoLogger.Printf("Hall created: %s (store=%d)", hall.Name, store.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"hall":    hall,
		"message": "Hall created successfully",
	})
}

func (hc *HallController) GetHallByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("hall_id"))

	var hall models.Hall
	if err := hc.DB.First(&hall, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("hall not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "hall": hall})
}

func (hc *HallController) UpdateHall(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("hall_id"))

	var req struct {
		Name     *string `json:"name"`
		Image    *string `json:"image"`
		IsActive *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var hall models.Hall
	if err := hc.DB.First(&hall, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("hall not found"))
		return
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Image != nil {
		hall.Image = *req.Image
	}
	if req.IsActive != nil {
		hall.IsActive = *req.IsActive
	}

	if err := hc.DB.Save(&hall).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventHallUpdate, hall)
	c.JSON(http.StatusOK, gin.H{"success": true, "hall": hall, "message": "Hall updated"})
}

// DeleteHall cascades: every table in the hall goes first.
func (hc *HallController) DeleteHall(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("hall_id"))

	if err := hc.Catalog.DeleteHallTree(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("hall not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventHallUpdate, gin.H{"id": id, "deleted": true})
	utils.InfoLogger.Printf("Hall %d deleted with tables", id)
	utils.RespondMessage(c, http.StatusOK, "Hall and associated tables deleted successfully")
}
