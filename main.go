package main

import (
	"embed"
	"log"

	"godraft/adapters/docx"
	"godraft/app"
	"godraft/domain/contract"
	"godraft/internal/config"
	"godraft/ui"

	"github.com/joho/godotenv"
)

//go:embed ui/templates/* ui/notes.md
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Wire the generation pipeline
	normalizer := contract.NewNormalizer(contract.NewDateFieldSet(appConfig.Generate.DateColumns))
	renderer := docx.NewRenderer()
	service := app.NewGenerateService(normalizer, renderer, appConfig.Generate.IDColumn)

	// Initialize web server
	server, err := ui.NewServer(appConfig, service, embeddedFiles)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting godraft server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
