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

type TableController struct {
	DB          *gorm.DB
	Provisioner *services.ProvisioningService
}

func NewTableController(db *gorm.DB, provisioner *services.ProvisioningService) *TableController {
	return &TableController{DB: db, Provisioner: provisioner}
}

func (tc *TableController) GetTables(c *gin.Context) {
	hallID, _ := strconv.Atoi(c.Param("hall_id"))

	var tables []models.Table
	if err := tc.DB.Where("hall_id = ?", hallID).Order("created_at ASC").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tables": tables})
}

// CreateTable is step one of the client-orchestrated provisioning flow: the
// QR field must be non-empty, so callers pass a placeholder and patch the
// real URL in afterwards via UpdateTable.
func (tc *TableController) CreateTable(c *gin.Context) {
	hallID, _ := strconv.Atoi(c.Param("hall_id"))

	var req struct {
		Name        string `json:"name" binding:"required"`
		Seats       int    `json:"seats" binding:"required,min=1"`
		QRCodeImage string `json:"qrCodeImage" binding:"required"`
		IsAvailable *bool  `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required fields"))
		return
	}

	table := models.Table{
		Name:        req.Name,
		Seats:       req.Seats,
		QRCodeImage: req.QRCodeImage,
		HallID:      uint(hallID),
		IsOccupied:  false,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventTableCreate, table)
	c.JSON(http.StatusCreated, gin.H{"success": true, "table": table})
}

// ProvisionTable runs the whole saga server-side: placeholder row, QR render,
// blob upload, final patch — with the placeholder deleted again on failure.
func (tc *TableController) ProvisionTable(c *gin.Context) {
	hallID, _ := strconv.Atoi(c.Param("hall_id"))

	var req struct {
		Name  string `json:"name" binding:"required"`
		Seats int    `json:"seats" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required fields"))
		return
	}

	var hall models.Hall
	if err := tc.DB.First(&hall, hallID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("hall not found"))
		return
	}
	var store models.Store
	if err := tc.DB.First(&store, hall.StoreID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("store not found"))
		return
	}

	table, err := tc.Provisioner.ProvisionTable(store.Slug, hall.ID, req.Name, req.Seats)
	if err != nil {
		utils.ErrorLogger.Printf("table provisioning failed (hall=%d): %v", hall.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("table provisioning failed"))
		return
	}

	events.Broadcast(events.EventTableCreate, table)
	utils.InfoLogger.Printf("Table provisioned: %s (hall=%d, qr=%s)", table.Name, hall.ID, table.QRCodeImage)
	c.JSON(http.StatusCreated, gin.H{"success": true, "table": table})
}

// UpdateTable merge-patches any subset of the mutable fields, including the
// final QR image URL in step four of the provisioning flow.
func (tc *TableController) UpdateTable(c *gin.Context) {
	hallID, _ := strconv.Atoi(c.Param("hall_id"))
	tableID, _ := strconv.Atoi(c.Param("table_id"))

	var req struct {
		Name        *string `json:"name"`
		Seats       *int    `json:"seats"`
		IsAvailable *bool   `json:"isAvailable"`
		IsOccupied  *bool   `json:"isOccupied"`
		QRCodeImage *string `json:"qrCodeImage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Where("hall_id = ?", hallID).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Seats != nil {
		table.Seats = *req.Seats
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}
	if req.IsOccupied != nil {
		table.IsOccupied = *req.IsOccupied
	}
	if req.QRCodeImage != nil {
		table.QRCodeImage = *req.QRCodeImage
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventTableUpdate, table)
	c.JSON(http.StatusOK, gin.H{"success": true, "table": table})
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	hallID, _ := strconv.Atoi(c.Param("hall_id"))
	tableID, _ := strconv.Atoi(c.Param("table_id"))

	var table models.Table
	if err := tc.DB.Where("hall_id = ?", hallID).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventTableDelete, gin.H{"id": table.ID})
	utils.RespondMessage(c, http.StatusOK, "Table deleted")
}
