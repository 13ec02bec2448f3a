package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/a3lachi/searchbiz/internal/domain/helper"
	"github.com/a3lachi/searchbiz/internal/domain/model"
	"github.com/a3lachi/searchbiz/internal/domain/repository"
)

// EnrichResult 詳細付与・正規化の結果
type EnrichResult struct {
	Records       []model.PlaceRecord // 重複除去済みの最終レコード
	EnrichedCount int                 // 詳細取得に成功した件数
	SkippedCount  int                 // 形状不備で除外した件数
}

// PlaceEnrichService 生データの詳細付与と正規化を提供するサービス
type PlaceEnrichService interface {
	// EnrichPlaces 各プレイスを正規化し、fetchDetailsが有効なら詳細情報をマージする
	// 個別の詳細取得失敗は致命的ではなく、該当レコードは任意項目なしで出力される
	EnrichPlaces(ctx context.Context, places []model.RawPlace, fetchDetails bool) *EnrichResult
}

// placeEnrichServiceImpl PlaceEnrichServiceの実装
type placeEnrichServiceImpl struct {
	provider     repository.PlacesProvider
	maxRetries   int
	requestDelay time.Duration
	retryBackoff time.Duration
}

// NewPlaceEnrichService PlaceEnrichServiceの新しいインスタンスを作成
func NewPlaceEnrichService(provider repository.PlacesProvider) PlaceEnrichService {
	return &placeEnrichServiceImpl{
		provider:     provider,
		maxRetries:   3,
		requestDelay: model.RequestDelay,
		retryBackoff: time.Second,
	}
}

// EnrichPlaces 各プレイスを正規化し、fetchDetailsが有効なら詳細情報をマージする
func (s *placeEnrichServiceImpl) EnrichPlaces(ctx context.Context, places []model.RawPlace, fetchDetails bool) *EnrichResult {
	result := &EnrichResult{
		Records: make([]model.PlaceRecord, 0, len(places)),
	}

	for i := range places {
		place := &places[i]
		log.Printf("🏢 処理中 %d/%d: %s", i+1, len(places), place.Name)

		var details *model.PlaceDetails
		if fetchDetails && place.PlaceID != "" {
			fetched, err := s.fetchDetailsWithRetry(ctx, place.PlaceID)
			if err != nil {
				// 1件の失敗でバッチ全体を止めない
				log.Printf("⚠️ 詳細取得に失敗 (%s)、任意項目なしで継続: %v", place.PlaceID, err)
			} else {
				details = fetched
				result.EnrichedCount++
			}

			// レート制限対策の小休止
			if err := sleepWithContext(ctx, s.requestDelay); err != nil {
				log.Printf("⚠️ 処理が中断されました: %v", err)
			}
		}

		record, err := helper.ExtractPlaceRecord(place, details)
		if err != nil {
			log.Printf("⚠️ 不正なレコードを除外: %v", err)
			result.SkippedCount++
			continue
		}

		result.Records = append(result.Records, *record)
	}

	result.Records = helper.DeduplicateRecords(result.Records)
	return result
}

// fetchDetailsWithRetry 詳細取得を実行する
// NetworkErrorの場合のみ、バックオフを倍増させながら上限回数まで再試行する
func (s *placeEnrichServiceImpl) fetchDetailsWithRetry(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	backoff := s.retryBackoff
	var lastErr error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		details, err := s.provider.PlaceDetails(ctx, placeID)
		if err == nil {
			return details, nil
		}

		var netErr *model.NetworkError
		if !errors.As(err, &netErr) {
			return nil, err
		}

		lastErr = err
		if attempt < s.maxRetries {
			if sleepErr := sleepWithContext(ctx, backoff); sleepErr != nil {
				return nil, sleepErr
			}
			backoff *= 2
		}
	}

	return nil, lastErr
}
