package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/social-media-api/internal/config"
	"github.com/yukikurage/social-media-api/internal/database"
	"github.com/yukikurage/social-media-api/internal/router"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Build router and start server
	r := router.Setup(cfg, database.GetDB())

	addr := ":" + cfg.Port
	log.Println("Server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
