/*
Copyright © 2025 ShaikM36
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ShaikM36/tds-virtual-ta/config"
	"github.com/ShaikM36/tds-virtual-ta/handler"
	"github.com/ShaikM36/tds-virtual-ta/middleware"
	"github.com/ShaikM36/tds-virtual-ta/repository"
	"github.com/ShaikM36/tds-virtual-ta/service"
	"github.com/ShaikM36/tds-virtual-ta/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the virtual TA API server",
	Long:  `Starts the HTTP server that answers student questions against the course knowledge base`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		knowledgeRepo := repository.NewKnowledgeRepo()
		loadScrapedData(knowledgeRepo, cfg.DataFile)

		knowledgeService := service.NewKnowledgeService(knowledgeRepo)
		answerService := service.NewAnswerService(aiService)
		imageService := service.NewImageService()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		answerHandler := handler.NewAnswerHandler(knowledgeService, answerService, imageService)
		healthHandler := handler.NewHealthHandler()

		// Setup Gin router
		router := gin.New()
		router.Use(gin.Logger())

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.Recovery())

		router.GET("/", healthHandler.HandleRoot)
		router.GET("/health", healthHandler.HandleHealth)
		router.POST("/api/", answerHandler.HandleQuestion)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService selects the completion provider. OpenAI is the default;
// Gemini is the alternate behind the same interface.
func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "openai", "":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		return service.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}

// loadScrapedData merges a previous scrape run into the discourse
// collection. This happens once, before the repo is shared with handlers;
// a missing file just means the server runs on the seed data alone.
func loadScrapedData(repo repository.KnowledgeRepo, dataFile string) {
	posts, err := store.NewJSONFileStore().Load(dataFile)
	if err != nil {
		log.Printf("No scraped data loaded from %s: %v", dataFile, err)
		return
	}
	repo.AddScrapedPosts(posts)
	log.Printf("Loaded %d scraped posts into the knowledge base", len(posts))
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
