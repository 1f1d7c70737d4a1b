package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rasoilink/backend/config"
	httpDelivery "github.com/rasoilink/backend/internal/delivery/http"
	"github.com/rasoilink/backend/internal/infrastructure/cache"
	"github.com/rasoilink/backend/internal/infrastructure/catalog"
	"github.com/rasoilink/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting RasoiLink Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Catalog cache TTL: %s", cfg.Cache.TTL)

	catalogClient := catalog.NewClient(cfg.Firestore.ProjectID, cfg.Firestore.APIKey, cfg.Firestore.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	log.Printf("Catalog store: %s (project: %s)", cfg.Firestore.BaseURL, cfg.Firestore.ProjectID)

	// Initialize usecase layer
	orderService := usecase.NewVoiceOrderService(
		memoryCache,
		catalogClient,
		usecase.VoiceOrderServiceConfig{
			CatalogCacheTTL:    cfg.Cache.TTL,
			MaxEditDistance:    cfg.Matching.MaxEditDistance,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: max edit distance=%d, debug=%v",
		cfg.Matching.MaxEditDistance, cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(orderService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
