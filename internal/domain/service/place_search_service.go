package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/a3lachi/searchbiz/internal/domain/model"
	"github.com/a3lachi/searchbiz/internal/domain/repository"
)

// paginationState ページング処理の状態
// 終端条件（トークン欠落・エラー・ページ上限）を個別に検証できるよう明示的な状態遷移で表現する
type paginationState int

const (
	stateFetching paginationState = iota // ページ取得中
	stateWaiting                         // トークン有効化待ち
	stateError                           // 終端エラー（部分結果は維持）
	stateDone                            // 終了
)

// PlaceSearchService ページングを伴うプレイス検索を提供するサービス
type PlaceSearchService interface {
	// SearchPlaces 検索条件に基づいて全ページの生データを収集する
	// APIエラーや再試行上限に達した場合、それまでに収集した部分結果とエラーの両方を返す
	SearchPlaces(ctx context.Context, query *model.SearchQuery) ([]model.RawPlace, error)
}

// placeSearchServiceImpl PlaceSearchServiceの実装
type placeSearchServiceImpl struct {
	provider        repository.PlacesProvider
	maxPages        int
	maxRetries      int
	paginationDelay time.Duration
	retryBackoff    time.Duration
}

// NewPlaceSearchService PlaceSearchServiceの新しいインスタンスを作成
func NewPlaceSearchService(provider repository.PlacesProvider) PlaceSearchService {
	return &placeSearchServiceImpl{
		provider:        provider,
		maxPages:        model.MaxPages,
		maxRetries:      3,
		paginationDelay: model.PaginationDelay,
		retryBackoff:    time.Second,
	}
}

// SearchPlaces 検索条件に基づいて全ページの生データを収集する
func (s *placeSearchServiceImpl) SearchPlaces(ctx context.Context, query *model.SearchQuery) ([]model.RawPlace, error) {
	var places []model.RawPlace
	var runErr error
	var pageToken string
	pageCount := 0

	state := stateFetching
	for state != stateDone {
		switch state {
		case stateFetching:
			page, err := s.fetchPageWithRetry(ctx, query, pageToken)
			if err != nil {
				runErr = err
				state = stateError
				continue
			}

			pageCount++
			places = append(places, page.Results...)
			log.Printf("📄 ページ%d: %d件取得 (累計: %d件)", pageCount, len(page.Results), len(places))

			if page.Status == model.StatusZeroResults {
				log.Printf("🔍 検索結果が0件でした (%s in %s)", query.PlaceType, query.Location)
				state = stateDone
				continue
			}

			// トークンが返されないか、ページ上限に達したら正常終了
			if !page.HasNextPage() || pageCount >= s.maxPages {
				state = stateDone
				continue
			}

			pageToken = page.NextPageToken
			state = stateWaiting

		case stateWaiting:
			// 発行直後のトークンはまだ有効でないため、規定の待機を挟む
			if err := sleepWithContext(ctx, s.paginationDelay); err != nil {
				runErr = err
				state = stateError
				continue
			}
			state = stateFetching

		case stateError:
			// 部分結果を保持したまま終了する
			state = stateDone
		}
	}

	return places, runErr
}

// fetchPageWithRetry 1ページ分の取得を実行する
// NetworkErrorの場合のみ、バックオフを倍増させながら上限回数まで再試行する
func (s *placeSearchServiceImpl) fetchPageWithRetry(ctx context.Context, query *model.SearchQuery, pageToken string) (*model.SearchPage, error) {
	backoff := s.retryBackoff
	var lastErr error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		page, err := s.provider.SearchPage(ctx, query, pageToken)
		if err == nil {
			return page, nil
		}

		var netErr *model.NetworkError
		if !errors.As(err, &netErr) {
			// APIエラーなどは再試行しても解消しない
			return nil, err
		}

		lastErr = err
		if attempt < s.maxRetries {
			log.Printf("⚠️ ページ取得に失敗 (試行%d/%d)、%v後に再試行: %v", attempt, s.maxRetries, backoff, err)
			if sleepErr := sleepWithContext(ctx, backoff); sleepErr != nil {
				return nil, sleepErr
			}
			backoff *= 2
		}
	}

	return nil, lastErr
}

// sleepWithContext コンテキストのキャンセルを考慮して待機する
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
