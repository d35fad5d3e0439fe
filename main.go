package main

import (
	"log"

	"github.com/joho/godotenv"

	"cin7export/cmd"
	"cin7export/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// The full configuration (including account API keys) is validated per
	// command; here only the logging settings are needed.
	if err := logger.Setup(logger.FromEnv()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}
