package main

import (
	"log"
	"os"

	"canteen-api/config"
	_ "canteen-api/docs"
	"canteen-api/middleware"
	"canteen-api/routes"

	"github.com/gin-gonic/gin"
)

// @title Cans & Teens Canteen API
// @version 1.0
// @description Campus canteen ordering backend: menu, orders and email/PIN student verification.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	if config.AppConfig.SeedMenu {
		config.SeedMenu()
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
