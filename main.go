package main

import (
	"os"

	"salsac-engine/internal/config"
	"salsac-engine/internal/server"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		config.NewLogger(os.Getenv("LOG_LEVEL")).Fatalf("Failed to load config: %v", err)
	}

	log := config.NewLogger(cfg.LogLevel)
	if err := server.Run(cfg, log); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
