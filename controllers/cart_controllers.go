package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/session"
	"github.com/BijinVijayan/food-store/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerCookie identifies the anonymous customer session.
const customerCookie = "cart_session"

// customerSessionID reads the session-id cookie, minting one on first touch.
func customerSessionID(c *gin.Context) string {
	sid, err := c.Cookie(customerCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(customerCookie, sid, 24*60*60, "/", "", false, true)
	}
	return sid
}

// CartController serves the customer cart and wishlist on top of the
// session state store.
type CartController struct {
	DB       *gorm.DB
	Sessions session.Store
}

func NewCartController(db *gorm.DB, sessions session.Store) *CartController {
	return &CartController{DB: db, Sessions: sessions}
}

func (cc *CartController) load(c *gin.Context) (string, *session.State, bool) {
	sid := customerSessionID(c)
	state, err := cc.Sessions.Load(c.Request.Context(), sid)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return "", nil, false
	}
	return sid, state, true
}

func (cc *CartController) save(c *gin.Context, sid string, state *session.State) bool {
	if err := cc.Sessions.Save(c.Request.Context(), sid, state); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

func (cc *CartController) GetCart(c *gin.Context) {
	_, state, ok := cc.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"cart":     state.Cart,
		"wishlist": state.Wishlist,
		"total":    state.Total(),
		"context": gin.H{
			"storeSlug": state.StoreSlug,
			"hallId":    state.HallID,
			"tableId":   state.TableID,
		},
	})
}

// AddCartItem snapshots the product's name/price into the cart line; repeat
// adds merge by incrementing quantity.
func (cc *CartController) AddCartItem(c *gin.Context) {
	var req struct {
		ProductID uint `json:"productId" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("productId is required"))
		return
	}

	var product models.Product
	if err := cc.DB.First(&product, req.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if !product.InStock || !product.IsActive {
		utils.RespondError(c, http.StatusBadRequest, errors.New("product is unavailable"))
		return
	}

	sid, state, ok := cc.load(c)
	if !ok {
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	state.AddItem(session.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.SellingPrice,
		Image:     image,
	}, req.Quantity)

	if !cc.save(c, sid, state) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": state.Cart, "total": state.Total()})
}

func (cc *CartController) RemoveCartItem(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))

	sid, state, ok := cc.load(c)
	if !ok {
		return
	}

	state.RemoveItem(uint(productID))
	if !cc.save(c, sid, state) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": state.Cart, "total": state.Total()})
}

func (cc *CartController) ToggleWishlist(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := cc.DB.First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	sid, state, ok := cc.load(c)
	if !ok {
		return
	}

	wishlisted := state.ToggleWishlist(uint(productID))
	if !cc.save(c, sid, state) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "wishlisted": wishlisted, "wishlist": state.Wishlist})
}
