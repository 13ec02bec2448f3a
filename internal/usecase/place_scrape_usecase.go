package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/a3lachi/searchbiz/internal/domain/model"
	"github.com/a3lachi/searchbiz/internal/domain/repository"
	"github.com/a3lachi/searchbiz/internal/domain/service"
)

// PlaceScrapeUseCase 検索→詳細付与→エクスポートの一連のワークフローを提供する
type PlaceScrapeUseCase interface {
	// ScrapePlaces 検索条件に基づいてプレイスを収集し、CSV/JSONにエクスポートする
	// 部分的な結果が回収できた場合はエラーを返さず、サマリーにエラー分類を記録する
	ScrapePlaces(ctx context.Context, query *model.SearchQuery) (*model.ScrapeResult, error)
}

// placeScrapeUseCaseImpl PlaceScrapeUseCaseの実装
type placeScrapeUseCaseImpl struct {
	searchService service.PlaceSearchService
	enrichService service.PlaceEnrichService
	exportRepo    repository.ExportRepository
}

// NewPlaceScrapeUseCase 新しいPlaceScrapeUseCaseインスタンスを作成
func NewPlaceScrapeUseCase(
	searchService service.PlaceSearchService,
	enrichService service.PlaceEnrichService,
	exportRepo repository.ExportRepository,
) PlaceScrapeUseCase {
	return &placeScrapeUseCaseImpl{
		searchService: searchService,
		enrichService: enrichService,
		exportRepo:    exportRepo,
	}
}

// ScrapePlaces 検索条件に基づいてプレイスを収集し、CSV/JSONにエクスポートする
func (u *placeScrapeUseCaseImpl) ScrapePlaces(ctx context.Context, query *model.SearchQuery) (*model.ScrapeResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("検索条件の検証に失敗: %w", err)
	}

	runID := uuid.New().String()
	log.Printf("🚀 スクレイピング開始 (run: %s, %s in %s)",
		runID, model.GetPlaceTypeJapaneseName(query.PlaceType), query.Location)

	// Step 1: ページングしながら検索結果を収集
	places, searchErr := u.searchService.SearchPlaces(ctx, query)
	if searchErr != nil {
		log.Printf("⚠️ 検索が途中で終了しました (%d件回収済み): %v", len(places), searchErr)
	}

	summary := model.ScrapeSummary{
		RunID:         runID,
		PlaceType:     query.PlaceType,
		Location:      query.Location,
		FetchedCount:  len(places),
		ErrorCategory: categorizeError(searchErr),
	}

	// 1件も回収できずに終端エラーとなった場合は実行全体を失敗とする
	if len(places) == 0 && searchErr != nil {
		return &model.ScrapeResult{Summary: summary}, searchErr
	}

	// Step 2: 詳細付与・正規化・重複除去
	enriched := u.enrichService.EnrichPlaces(ctx, places, query.FetchDetails)
	summary.EnrichedCount = enriched.EnrichedCount
	summary.RecordCount = len(enriched.Records)

	// Step 3: CSVとJSONへエクスポート
	exportErr := u.exportRecords(enriched.Records, query, &summary)
	if exportErr != nil {
		return &model.ScrapeResult{Summary: summary}, exportErr
	}

	log.Printf("🎉 スクレイピング完了 (run: %s): 取得%d件 / 詳細%d件 / 出力%d件",
		runID, summary.FetchedCount, summary.EnrichedCount, summary.RecordCount)

	return &model.ScrapeResult{
		Summary: summary,
		Records: enriched.Records,
	}, nil
}

// exportRecords CSVとJSONの両形式へ書き出す
// 片方の失敗は警告にとどめ、両方失敗した場合のみ致命的エラーとして返す
func (u *placeScrapeUseCaseImpl) exportRecords(records []model.PlaceRecord, query *model.SearchQuery, summary *model.ScrapeSummary) error {
	var failures []error

	jsonPath, err := u.exportRepo.ExportJSON(records, query)
	if err != nil {
		log.Printf("⚠️ JSONエクスポートに失敗: %v", err)
		failures = append(failures, err)
	} else {
		summary.ExportedFiles = append(summary.ExportedFiles, jsonPath)
	}

	csvPath, err := u.exportRepo.ExportCSV(records, query)
	if err != nil {
		log.Printf("⚠️ CSVエクスポートに失敗: %v", err)
		failures = append(failures, err)
	} else {
		summary.ExportedFiles = append(summary.ExportedFiles, csvPath)
	}

	if len(failures) == 2 {
		summary.ErrorCategory = model.ErrorCategoryExport
		return fmt.Errorf("全形式のエクスポートに失敗: %w", failures[0])
	}
	if len(failures) == 1 && summary.ErrorCategory == "" {
		summary.ErrorCategory = model.ErrorCategoryExport
	}

	return nil
}

// categorizeError エラーをサマリー用の分類名に変換する
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	var configErr *model.ConfigError
	var netErr *model.NetworkError
	var apiErr *model.APIError
	var validationErr *model.ValidationError
	var exportErr *model.ExportError

	switch {
	case errors.As(err, &configErr):
		return model.ErrorCategoryConfig
	case errors.As(err, &apiErr):
		return model.ErrorCategoryAPI
	case errors.As(err, &netErr):
		return model.ErrorCategoryNetwork
	case errors.As(err, &validationErr):
		return model.ErrorCategoryValidation
	case errors.As(err, &exportErr):
		return model.ErrorCategoryExport
	default:
		return model.ErrorCategoryNetwork
	}
}
