package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/projetvet/projetvet-go/internal/api/middleware"
	"github.com/projetvet/projetvet-go/internal/api/routes"
	"github.com/projetvet/projetvet-go/internal/application"
	"github.com/projetvet/projetvet-go/internal/config"
	"github.com/projetvet/projetvet-go/internal/config/db"
	"github.com/projetvet/projetvet-go/internal/filestore"
)

// @title Projetvet API
// @version 1.0
// @description Veterinary training activity log and workflow service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	deps := application.Deps{}
	store, err := filestore.Init()
	if err != nil {
		log.Printf("Warning: file store unavailable, filemanager fields render empty: %v", err)
	} else {
		deps.Files = store
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, deps)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
