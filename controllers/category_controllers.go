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

type CategoryController struct {
	DB      *gorm.DB
	Catalog *services.CatalogService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Catalog: services.NewCatalogService(db)}
}

// GetAllCategories returns every category enriched with product counts and
// its sub-categories.
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	overviews, err := cc.Catalog.ListCategoryOverviews()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": overviews,
	})
}

// CreateCategory persists the category first, then bulk-inserts the supplied
// sub-category drafts under it.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name          string                      `json:"name" binding:"required"`
		Image         string                      `json:"image"`
		SubCategories []services.SubCategoryInput `json:"subCategories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category name is required"))
		return
	}

	category := models.Category{
		Name:        req.Name,
		Image:       req.Image,
		IsAvailable: true,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	subCats, err := cc.Catalog.CreateSubCategories(category.ID, req.SubCategories)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCategoryUpdate, category)
	utils.InfoLogger.Printf("Category created: %s (%d sub-categories)", category.Name, len(subCats))
	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"category":      category,
		"subCategories": subCats,
		"message":       "Category created successfully",
	})
}

// GetCategoryByID returns one category with its sub-categories, for the edit
// page pre-fill.
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var subCategories []models.SubCategory
	if err := cc.DB.Where("category_id = ?", id).Find(&subCategories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":      category,
		"subCategories": subCategories,
	})
}

// UpdateCategory updates the category's own fields unconditionally, then
// upserts the supplied sub-category list. Sub-categories omitted from the
// payload are kept; deleting one is an explicit separate call.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	var req struct {
		Name          string                      `json:"name"`
		Image         string                      `json:"image"`
		SubCategories []services.SubCategoryInput `json:"subCategories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := cc.DB.Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  req.Name,
			"image": req.Image,
		}).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.Catalog.SyncSubCategories(uint(id), req.SubCategories); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCategoryUpdate, gin.H{"id": id})
	utils.RespondMessage(c, http.StatusOK, "Category updated")
}

// DeleteCategory cascades: products, then sub-categories, then the category.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	if err := cc.Catalog.DeleteCategoryTree(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventCategoryUpdate, gin.H{"id": id, "deleted": true})
	utils.InfoLogger.Printf("Category %d deleted with descendants", id)
	utils.RespondMessage(c, http.StatusOK, "Category and all associated data deleted successfully")
}
