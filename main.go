package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fitcoach/booking-app/config"
	"github.com/fitcoach/booking-app/repository"
	"github.com/fitcoach/booking-app/router"
	"github.com/fitcoach/booking-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	store := repository.NewGormBookingStore(db)
	if err := store.Migrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(store, config.StaticRoot())

	port := config.Port()
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
