package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BijinVijayan/food-store/controllers"
	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/utils"
)

func setupTestDBForCategories(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Category{}, &models.SubCategory{}, &models.Product{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	categoryCtrl := controllers.NewCategoryController(db)
	subCategoryCtrl := controllers.NewSubCategoryController(db)
	router.GET("/categories", categoryCtrl.GetAllCategories)
	router.POST("/categories", categoryCtrl.CreateCategory)
	router.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
	router.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
	router.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)
	router.DELETE("/subcategories/:sub_id", subCategoryCtrl.DeleteSubCategory)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryRequiresName(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	w := doJSON(t, router, "POST", "/categories", map[string]interface{}{
		"image": "http://example.com/pizza.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateCategoryWithSubCategories(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	w := doJSON(t, router, "POST", "/categories", map[string]interface{}{
		"name":  "Pizza",
		"image": "http://example.com/pizza.png",
		"subCategories": []map[string]interface{}{
			{"name": "Classic"},
			{"name": "Sourdough", "image": "http://example.com/sour.png"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var subCats []models.SubCategory
	db.Find(&subCats)
	assert.Len(t, subCats, 2)
	for _, sub := range subCats {
		assert.NotZero(t, sub.CategoryID)
		assert.True(t, sub.IsAvailable)
	}
}

// An update supplying [A-renamed, C-new] must leave the omitted B untouched:
// the sub-category sync is additive, never subtractive.
func TestUpdateCategoryUpsertIsAdditive(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	category := models.Category{Name: "Drinks", IsAvailable: true}
	db.Create(&category)
	subA := models.SubCategory{Name: "Hot", CategoryID: category.ID, IsAvailable: true}
	subB := models.SubCategory{Name: "Cold", CategoryID: category.ID, IsAvailable: true}
	db.Create(&subA)
	db.Create(&subB)

	w := doJSON(t, router, "PUT", "/categories/1", map[string]interface{}{
		"name":  "Beverages",
		"image": "",
		"subCategories": []map[string]interface{}{
			{"id": subA.ID, "name": "Hot Drinks"},
			{"name": "Smoothies"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Category
	db.First(&updated, category.ID)
	assert.Equal(t, "Beverages", updated.Name)

	var subCats []models.SubCategory
	db.Order("id ASC").Find(&subCats)
	assert.Len(t, subCats, 3)
	assert.Equal(t, "Hot Drinks", subCats[0].Name)
	assert.Equal(t, "Cold", subCats[1].Name) // omitted from payload, must survive
	assert.Equal(t, "Smoothies", subCats[2].Name)
	assert.Equal(t, category.ID, subCats[2].CategoryID)
}

// Deleting "Pizza" must take the "Classic" sub-category and the "Margherita"
// product with it, and the list view must omit the category afterwards.
func TestDeleteCategoryCascades(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	pizza := models.Category{Name: "Pizza", IsAvailable: true}
	db.Create(&pizza)
	classic := models.SubCategory{Name: "Classic", CategoryID: pizza.ID, IsAvailable: true}
	db.Create(&classic)
	margherita := models.Product{
		Name:          "Margherita",
		SellingPrice:  25,
		CategoryID:    pizza.ID,
		SubCategoryID: &classic.ID,
		InStock:       true,
		IsActive:      true,
	}
	db.Create(&margherita)

	w := doJSON(t, router, "DELETE", "/categories/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var productCount, subCount, catCount int64
	db.Model(&models.Product{}).Where("category_id = ?", pizza.ID).Count(&productCount)
	db.Model(&models.SubCategory{}).Where("category_id = ?", pizza.ID).Count(&subCount)
	db.Model(&models.Category{}).Where("id = ?", pizza.ID).Count(&catCount)
	assert.Equal(t, int64(0), productCount)
	assert.Equal(t, int64(0), subCount)
	assert.Equal(t, int64(0), catCount)

	w = doJSON(t, router, "GET", "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	categories := resp["categories"].([]interface{})
	assert.Empty(t, categories)
}

func TestDeleteCategoryNotFoundLeavesOthersAlone(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	other := models.Category{Name: "Burgers", IsAvailable: true}
	db.Create(&other)

	w := doJSON(t, router, "DELETE", "/categories/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetAllCategoriesCounts(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	cat := models.Category{Name: "Pizza", IsAvailable: true}
	db.Create(&cat)
	sub := models.SubCategory{Name: "Classic", CategoryID: cat.ID, IsAvailable: true}
	db.Create(&sub)
	db.Create(&models.Product{Name: "Margherita", SellingPrice: 25, CategoryID: cat.ID, SubCategoryID: &sub.ID})
	db.Create(&models.Product{Name: "Pepperoni", SellingPrice: 30, CategoryID: cat.ID})

	w := doJSON(t, router, "GET", "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	categories := resp["categories"].([]interface{})
	assert.Len(t, categories, 1)

	row := categories[0].(map[string]interface{})
	assert.Equal(t, "2 Products", row["count"])
	subRows := row["subCategories"].([]interface{})
	assert.Len(t, subRows, 1)
	assert.Equal(t, "1 items", subRows[0].(map[string]interface{})["count"])
}
