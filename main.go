package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Reshmasriram29/AudioProcessor/internal/answer"
	"github.com/Reshmasriram29/AudioProcessor/internal/api"
	"github.com/Reshmasriram29/AudioProcessor/internal/config"
	"github.com/Reshmasriram29/AudioProcessor/internal/logger"
	"github.com/Reshmasriram29/AudioProcessor/internal/scrape"
	"github.com/Reshmasriram29/AudioProcessor/internal/search"
	"github.com/Reshmasriram29/AudioProcessor/internal/speech"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	searchClient := search.NewClient(cfg.SerpAPIKey, zl.Named("search"))
	fetcher := scrape.NewFetcher(cfg.SiteURL, zl.Named("scrape"))
	responder := answer.NewService(searchClient, fetcher, zl.Named("answer"))
	speechService := speech.NewService(cfg.OpenAIKey, cfg.TempDir, zl.Named("speech"))

	handlers := api.NewHandler(responder, speechService, cfg.StaticDir, zl.Named("api"))

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"*"},
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	handlers.RegisterRoutes(router)

	zl.Info("server listening", zap.String("addr", cfg.ServerAddress))
	if err := router.Run(cfg.ServerAddress); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
