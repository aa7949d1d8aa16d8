package controllers

import (
	"errors"
	"net/http"

	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/session"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// QRController is the landing point for a scanned table code: it resolves
// the slug-hall-table payload and stamps the dining context into the
// customer's session.
type QRController struct {
	DB       *gorm.DB
	Sessions session.Store
}

func NewQRController(db *gorm.DB, sessions session.Store) *QRController {
	return &QRController{DB: db, Sessions: sessions}
}

func (qc *QRController) Scan(c *gin.Context) {
	storeSlug, hallID, tableID, err := services.ParseQRData(c.Param("data"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var store models.Store
	if err := qc.DB.Where("slug = ?", storeSlug).First(&store).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("store not found"))
		return
	}

	var table models.Table
	if err := qc.DB.Where("hall_id = ?", hallID).First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	sid := customerSessionID(c)
	state, err := qc.Sessions.Load(c.Request.Context(), sid)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	state.SetDiningContext(storeSlug, hallID, tableID)
	if err := qc.Sessions.Save(c.Request.Context(), sid, state); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("QR scan: store=%s hall=%d table=%d", storeSlug, hallID, tableID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"store":   store,
		"hallId":  hallID,
		"table":   table,
	})
}
