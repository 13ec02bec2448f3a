package repository

import (
	"context"

	"github.com/a3lachi/searchbiz/internal/domain/model"
)

// PlacesProvider 外部のプレイス検索APIへのアクセスを抽象化するインターフェース
// テストではネットワークを使わないフィクスチャ実装に差し替えられる
type PlacesProvider interface {
	// SearchPage テキスト検索を1ページ分実行する
	// pageTokenが空の場合は先頭ページを取得する
	SearchPage(ctx context.Context, query *model.SearchQuery, pageToken string) (*model.SearchPage, error)

	// PlaceDetails 指定されたplace_idの詳細情報を取得する
	PlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}
