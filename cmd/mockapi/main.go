package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/streetbazaar/storefront/internal/mockapi"
	"github.com/streetbazaar/storefront/pkg/global"
)

func main() {

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := mockapi.New()
	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Mock StreetBazaar API is running on port %s", port)

	if err := server.Engine().Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
