package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/a3lachi/searchbiz/internal/domain/model"
	"github.com/a3lachi/searchbiz/internal/domain/service"
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
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	query := loadQueryFromEnv()
	provider := maps.NewGooglePlacesProvider(apiKey)
	ctx := context.Background()

	fmt.Println("Validating API key...")
	if err := provider.ValidateAPIKey(ctx); err != nil {
		log.Fatalf("APIキーの検証に失敗: %v", err)
	}
	fmt.Println("✅ API key validated successfully!")

	searchService := service.NewPlaceSearchService(provider)
	enrichService := service.NewPlaceEnrichService(provider)
	exportRepo := repository.NewFileExportRepository(os.Getenv("OUTPUT_DIR"))
	scrapeUseCase := usecase.NewPlaceScrapeUseCase(searchService, enrichService, exportRepo)

	result, err := scrapeUseCase.ScrapePlaces(ctx, query)
	if err != nil {
		// 1件も回収できなかった場合のみ非ゼロ終了
		log.Fatalf("スクレイピングに失敗: %v", err)
	}

	printSummary(&result.Summary)
}

// loadQueryFromEnv 環境変数から検索条件を組み立てる（未設定はデフォルト値）
func loadQueryFromEnv() *model.SearchQuery {
	query := &model.SearchQuery{
		PlaceType:    model.PlaceTypeBusiness,
		Location:     "La Défense",
		Radius:       model.DefaultRadius,
		FetchDetails: true,
	}

	if placeType := os.Getenv("PLACE_TYPE"); placeType != "" {
		query.PlaceType = placeType
	}
	if location := os.Getenv("LOCATION"); location != "" {
		query.Location = location
	}
	if radiusStr := os.Getenv("RADIUS"); radiusStr != "" {
		if radius, err := strconv.Atoi(radiusStr); err == nil {
			query.Radius = radius
		} else {
			fmt.Printf("Warning: RADIUS の値が不正です (%s)、デフォルト値を使用します\n", radiusStr)
		}
	}
	if detailsStr := os.Getenv("FETCH_DETAILS"); detailsStr != "" {
		if fetchDetails, err := strconv.ParseBool(detailsStr); err == nil {
			query.FetchDetails = fetchDetails
		}
	}

	return query
}

// printSummary 実行結果のサマリーを人間可読な形式で出力する
func printSummary(summary *model.ScrapeSummary) {
	fmt.Println("\nScraping completed!")
	fmt.Printf("取得: %d件 / 詳細付与: %d件 / 出力レコード: %d件 (%s in %s)\n",
		summary.FetchedCount, summary.EnrichedCount, summary.RecordCount,
		summary.PlaceType, summary.Location)

	for _, file := range summary.ExportedFiles {
		fmt.Printf("✓ %s\n", file)
	}

	if summary.ErrorCategory != "" {
		fmt.Printf("⚠️  実行中にエラーが発生しました (分類: %s)、結果は部分的です\n", summary.ErrorCategory)
	}
}
