package routes

import (
	"net/http"

	"canteen-api/config"
	"canteen-api/controllers"
	"canteen-api/middleware"
	"canteen-api/repositories"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires the full stack over the shared connection pool.
func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)
	menuRepo := repositories.NewMenuRepository(config.DB)

	cfg := config.AppConfig
	authSvc := services.NewAuthService(userRepo, services.NewMailer(), cfg.PinHashing, cfg.AppEnv != "production")
	orderSvc := services.NewOrderService(orderRepo)
	menuSvc := services.NewMenuService(menuRepo)
	adminSvc := services.NewAdminService(orderRepo)

	Register(router,
		controllers.NewAuthController(authSvc),
		controllers.NewMenuController(menuSvc),
		controllers.NewOrderController(orderSvc),
		controllers.NewAdminController(menuSvc, orderSvc, adminSvc),
	)
}

// Register mounts the route table on already-constructed controllers.
func Register(router *gin.Engine, authCtrl *controllers.AuthController, menuCtrl *controllers.MenuController, orderCtrl *controllers.OrderController, adminCtrl *controllers.AdminController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Cans & Teens backend is running"})
	})

	router.POST("/auth/request-pin", authCtrl.RequestPin)
	router.POST("/auth/verify-pin", authCtrl.VerifyPin)
	router.GET("/auth/me", middleware.Auth(), authCtrl.Me)

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/categories/list", menuCtrl.GetCategories)
	router.GET("/menu/:id", menuCtrl.GetMenuItem)

	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/email/:email", orderCtrl.GetOrdersByEmail)
	router.GET("/orders/:orderId", orderCtrl.GetOrder)
	router.GET("/orders", middleware.AdminKey(), orderCtrl.GetAllOrders)
	router.PATCH("/orders/:orderId/status", middleware.AdminKey(), orderCtrl.UpdateOrderStatus)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminKey())
	{
		admin.GET("/analytics", adminCtrl.GetAnalytics)

		admin.GET("/menu", adminCtrl.GetMenu)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)
		admin.POST("/menu/:id/image", adminCtrl.UploadMenuImage)

		admin.GET("/orders", adminCtrl.GetOrders)
	}

	router.Static("/uploads", "./uploads")

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
