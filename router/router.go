package router

import (
	"github.com/BijinVijayan/food-store/config"
	"github.com/BijinVijayan/food-store/controllers"
	"github.com/BijinVijayan/food-store/middlewares"
	"github.com/BijinVijayan/food-store/services"
	"github.com/BijinVijayan/food-store/session"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Shared infrastructure
	blobs := services.NewLocalBlobStore(config.UploadDir(), config.BaseURL())
	provisioner := services.NewProvisioningService(db, services.DefaultQRGenerator{}, blobs, config.BaseURL())

	var sender services.OTPSender = services.LogOTPSender{}
	if smtp := config.SMTP(); smtp.Host != "" {
		sender = services.NewMailer(smtp)
	}

	var sessions session.Store = session.NewMemoryStore()
	if addr := config.RedisAddr(); addr != "" {
		sessions = session.NewRedisStore(addr)
	}

	authCtrl := controllers.NewAuthController(db, sender)
	storeCtrl := controllers.NewStoreController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	subCategoryCtrl := controllers.NewSubCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	hallCtrl := controllers.NewHallController(db)
	tableCtrl := controllers.NewTableController(db, provisioner)
	uploadCtrl := controllers.NewUploadController(blobs)
	qrCtrl := controllers.NewQRController(db, sessions)
	cartCtrl := controllers.NewCartController(db, sessions)

	// Uploaded blobs (product images, rendered QR codes)
	r.Static("/uploads", config.UploadDir())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	authGroup := r.Group("/auth")
	authGroup.Use(middlewares.NewStrictRateLimiter())
	{
		authGroup.POST("/send-otp", authCtrl.SendOTP)
		authGroup.POST("/verify-otp", authCtrl.VerifyOTP)
	}

	// Customer browsing, no session required
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/products", productCtrl.GetAllProducts)

	// QR scan landing and the session cart
	r.GET("/qr/:data", qrCtrl.Scan)
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddCartItem)
	r.DELETE("/cart/items/:product_id", cartCtrl.RemoveCartItem)
	r.POST("/wishlist/:product_id", cartCtrl.ToggleWishlist)

	// Onboarding (requires a verified session, happens before a store exists)
	stores := r.Group("/stores")
	stores.Use(middlewares.AuthMiddleware())
	{
		stores.POST("", storeCtrl.CreateStore)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())

	admin.GET("/me", authCtrl.Me)

	admin.GET("/settings", storeCtrl.GetSettings)
	admin.PUT("/settings", storeCtrl.UpdateSettings)

	admin.POST("/categories", categoryCtrl.CreateCategory)
	admin.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
	admin.PUT("/categories/:cat_id", categoryCtrl.UpdateCategory)
	admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	admin.DELETE("/subcategories/:sub_id", subCategoryCtrl.DeleteSubCategory)

	admin.POST("/products", productCtrl.CreateProduct)
	admin.GET("/products/:product_id", productCtrl.GetProductByID)
	admin.PUT("/products/:product_id", productCtrl.UpdateProduct)
	admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	admin.GET("/halls", hallCtrl.GetAllHalls)
	admin.POST("/halls", hallCtrl.CreateHall)
	admin.GET("/halls/:hall_id", hallCtrl.GetHallByID)
	admin.PUT("/halls/:hall_id", hallCtrl.UpdateHall)
	admin.DELETE("/halls/:hall_id", hallCtrl.DeleteHall)

	admin.GET("/tables/:hall_id", tableCtrl.GetTables)
	admin.POST("/tables/:hall_id", tableCtrl.CreateTable)
	admin.POST("/tables/:hall_id/provision", tableCtrl.ProvisionTable)
	admin.PUT("/tables/:hall_id/:table_id", tableCtrl.UpdateTable)
	admin.DELETE("/tables/:hall_id/:table_id", tableCtrl.DeleteTable)

	admin.POST("/upload", uploadCtrl.Upload)

	admin.GET("/ws", controllers.DashboardEventsHandler)

	return r
}
