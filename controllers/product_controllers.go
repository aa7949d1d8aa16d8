package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BijinVijayan/food-store/events"
	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts lists products newest-first with category and sub-category
// references resolved to their records.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	err := pc.DB.Preload("Category").Preload("SubCategory").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// CreateProduct rejects missing name/sellingPrice/categoryId before any
// write occurs.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		Name          string   `json:"name" binding:"required"`
		Description   string   `json:"description"`
		MRP           float64  `json:"mrp"`
		SellingPrice  float64  `json:"sellingPrice" binding:"required"`
		CategoryID    uint     `json:"categoryId" binding:"required"`
		SubCategoryID *uint    `json:"subCategoryId"`
		Images        []string `json:"images"`
		IsVeg         bool     `json:"isVeg"`
		StockQuantity int      `json:"stockQuantity"`
		InStock       bool     `json:"inStock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing required fields"))
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		MRP:           req.MRP,
		SellingPrice:  req.SellingPrice,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Images:        req.Images,
		IsVeg:         req.IsVeg,
		StockQuantity: req.StockQuantity,
		InStock:       req.InStock,
		IsActive:      true,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventProductUpdate, product)
	utils.InfoLogger.Printf("Product created: %s (category=%d)", product.Name, product.CategoryID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": product,
		"message": "Product created successfully",
	})
}

// GetProductByID serves the edit page pre-fill.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct is a merge-patch: a partial payload succeeds, untouched
// fields keep their values.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var req struct {
		Name          *string   `json:"name"`
		Description   *string   `json:"description"`
		MRP           *float64  `json:"mrp"`
		SellingPrice  *float64  `json:"sellingPrice"`
		CategoryID    *uint     `json:"categoryId"`
		SubCategoryID *uint     `json:"subCategoryId"`
		Images        *[]string `json:"images"`
		IsVeg         *bool     `json:"isVeg"`
		StockQuantity *int      `json:"stockQuantity"`
		InStock       *bool     `json:"inStock"`
		IsActive      *bool     `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.MRP != nil {
		product.MRP = *req.MRP
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.SubCategoryID != nil {
		product.SubCategoryID = req.SubCategoryID
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.IsVeg != nil {
		product.IsVeg = *req.IsVeg
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventProductUpdate, product)
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct is an unconditional delete; a product has no children to
// cascade into.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	if err := pc.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Broadcast(events.EventProductUpdate, gin.H{"id": id, "deleted": true})
	utils.RespondMessage(c, http.StatusOK, "Product Deleted")
}
