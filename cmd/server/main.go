package main

import (
	"log"
	"net/http"

	"turismo_api/internal/config"
	"turismo_api/internal/logger"
	"turismo_api/internal/middleware"
	"turismo_api/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg := config.Load()

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(cfg, db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, handler))
}
