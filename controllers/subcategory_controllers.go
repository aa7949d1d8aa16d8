package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BijinVijayan/food-store/events"
	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubCategoryController only deletes: sub-category edits flow through the
// parent category's update call.
type SubCategoryController struct {
	Catalog *services.CatalogService
}

func NewSubCategoryController(db *gorm.DB) *SubCategoryController {
	return &SubCategoryController{Catalog: services.NewCatalogService(db)}
}

// DeleteSubCategory cascades: products first, then the sub-category.
func (scc *SubCategoryController) DeleteSubCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("sub_id"))

	if err := scc.Catalog.DeleteSubCategoryTree(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("sub-category not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCategoryUpdate, gin.H{"subCategoryId": id, "deleted": true})
	utils.RespondMessage(c, http.StatusOK, "Sub-category and associated products deleted")
}
