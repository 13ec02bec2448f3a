package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/a3lachi/searchbiz/internal/domain/service"
	"github.com/a3lachi/searchbiz/internal/handler"
	"github.com/a3lachi/searchbiz/internal/infrastructure/maps"
	"github.com/a3lachi/searchbiz/internal/repository"
	"github.com/a3lachi/searchbiz/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: GOOGLE_MAPS_API_KEY")
		log.Fatal("Environment variables not set")
	}

	// 依存関係の組み立て
	provider := maps.NewGooglePlacesProvider(apiKey)
	searchService := service.NewPlaceSearchService(provider)
	enrichService := service.NewPlaceEnrichService(provider)
	exportRepo := repository.NewFileExportRepository(os.Getenv("OUTPUT_DIR"))
	scrapeUseCase := usecase.NewPlaceScrapeUseCase(searchService, enrichService, exportRepo)
	placesHandler := handler.NewPlacesHandler(scrapeUseCase)

	// ルーティングの設定
	r := gin.Default()
	r.GET("/api/health", placesHandler.Health)
	r.POST("/api/search", placesHandler.SearchPlaces)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("searchbiz server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
