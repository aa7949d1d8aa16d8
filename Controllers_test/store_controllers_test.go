package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BijinVijayan/food-store/controllers"
	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/utils"
)

func setupTestDBForStores(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.User{}, &models.Store{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupStoreRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	storeCtrl := controllers.NewStoreController(db)
	router.POST("/stores", fakeAuth(userID), storeCtrl.CreateStore)
	router.GET("/settings", fakeAuth(userID), storeCtrl.GetSettings)
	router.PUT("/settings", fakeAuth(userID), storeCtrl.UpdateSettings)
	return router
}

func seedOwner(db *gorm.DB, email string) models.User {
	user := models.User{Email: email, Role: "store_owner"}
	db.Create(&user)
	return user
}

func TestCreateStoreOnboarding(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	owner := seedOwner(db, "owner@example.com")
	router := setupStoreRouter(db, owner.ID)

	w := doJSON(t, router, "POST", "/stores", map[string]interface{}{
		"name":      "Nawab",
		"slug":      "  Nawab-Dubai ",
		"ownerName": "Bijin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var store models.Store
	assert.NoError(t, db.First(&store).Error)
	assert.Equal(t, "nawab-dubai", store.Slug) // trimmed and lowercased
	assert.Equal(t, "AED", store.Currency)
	assert.True(t, store.AcceptingOrders)
	assert.Equal(t, owner.ID, store.OwnerID)

	var user models.User
	db.First(&user, owner.ID)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "Bijin", user.Name)
	if assert.NotNil(t, user.StoreID) {
		assert.Equal(t, store.ID, *user.StoreID)
	}
}

func TestCreateStoreRejectsSecondStore(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	owner := seedOwner(db, "owner@example.com")
	router := setupStoreRouter(db, owner.ID)

	w := doJSON(t, router, "POST", "/stores", map[string]interface{}{"name": "Nawab", "slug": "nawab"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/stores", map[string]interface{}{"name": "Second", "slug": "second"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "you already have a store", resp["error"])
}

func TestCreateStoreRejectsDuplicateSlug(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	first := seedOwner(db, "first@example.com")
	second := seedOwner(db, "second@example.com")

	w := doJSON(t, setupStoreRouter(db, first.ID), "POST", "/stores", map[string]interface{}{
		"name": "Nawab", "slug": "nawab",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, setupStoreRouter(db, second.ID), "POST", "/stores", map[string]interface{}{
		"name": "Other Nawab", "slug": "NAWAB",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "store URL is already taken", resp["error"])
}

func TestGetSettingsWithoutStore(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	owner := seedOwner(db, "owner@example.com")
	router := setupStoreRouter(db, owner.ID)

	w := doJSON(t, router, "GET", "/settings", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Fields outside the settings whitelist, ownerId and slug included, must be
// ignored by the merge-patch.
func TestUpdateSettingsWhitelist(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	owner := seedOwner(db, "owner@example.com")
	router := setupStoreRouter(db, owner.ID)

	store := models.Store{
		Name: "Nawab", Slug: "nawab", OwnerID: owner.ID,
		Currency: "AED", Phone: "0501234567", AcceptingOrders: true, IsActive: true,
	}
	db.Create(&store)

	w := doJSON(t, router, "PUT", "/settings", map[string]interface{}{
		"name":            "Nawab Express",
		"acceptingOrders": false,
		"ownerId":         99,
		"slug":            "hijacked",
		"currency":        "USD",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Store
	db.First(&updated, store.ID)
	assert.Equal(t, "Nawab Express", updated.Name)
	assert.False(t, updated.AcceptingOrders)
	assert.Equal(t, "0501234567", updated.Phone) // untouched field survives
	assert.Equal(t, "nawab", updated.Slug)
	assert.Equal(t, "AED", updated.Currency)
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestUpdateSettingsEmptyPatch(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStores(t)
	owner := seedOwner(db, "owner@example.com")
	router := setupStoreRouter(db, owner.ID)

	store := models.Store{Name: "Nawab", Slug: "nawab", OwnerID: owner.ID, Currency: "AED", AcceptingOrders: true}
	db.Create(&store)

	w := doJSON(t, router, "PUT", "/settings", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	var unchanged models.Store
	db.First(&unchanged, store.ID)
	assert.Equal(t, "Nawab", unchanged.Name)
}
