package model

// SearchQuery 1回のスクレイピング実行の検索条件（実行中は不変）
type SearchQuery struct {
	PlaceType    string `json:"place_type"`
	Location     string `json:"location"` // 都市名または "lat,lng" 形式の座標
	Radius       int    `json:"radius"`   // 検索半径（メートル、最大50000）
	FetchDetails bool   `json:"fetch_details"`
}

// Validate 検索条件の妥当性をチェックする
func (q *SearchQuery) Validate() error {
	if q.PlaceType == "" {
		return &ValidationError{Message: "place_typeが指定されていません"}
	}
	if q.Location == "" {
		return &ValidationError{Message: "locationが指定されていません"}
	}
	if q.Radius < 0 || q.Radius > DefaultRadius {
		return &ValidationError{Message: "radiusは0〜50000メートルの範囲で指定してください"}
	}
	return nil
}

// EffectiveRadius 未指定（0）の場合にデフォルト半径を返す
func (q *SearchQuery) EffectiveRadius() int {
	if q.Radius == 0 {
		return DefaultRadius
	}
	return q.Radius
}

// SearchRequest POST /api/search のリクエストボディ
type SearchRequest struct {
	PlaceType    string `json:"place_type" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Radius       int    `json:"radius"`
	FetchDetails bool   `json:"fetch_details"`
}

// ToSearchQuery リクエストをドメインの検索条件に変換
func (r *SearchRequest) ToSearchQuery() *SearchQuery {
	return &SearchQuery{
		PlaceType:    r.PlaceType,
		Location:     r.Location,
		Radius:       r.Radius,
		FetchDetails: r.FetchDetails,
	}
}

// ScrapeSummary 1回の実行結果のサマリー
type ScrapeSummary struct {
	RunID         string   `json:"run_id"`
	PlaceType     string   `json:"place_type"`
	Location      string   `json:"location"`
	FetchedCount  int      `json:"fetched_count"`  // 検索APIから取得した生データ件数
	EnrichedCount int      `json:"enriched_count"` // 詳細取得に成功した件数
	RecordCount   int      `json:"record_count"`   // 重複除去後の最終レコード件数
	ExportedFiles []string `json:"exported_files"`
	ErrorCategory string   `json:"error_category,omitempty"` // 正常終了時は空
}

// ScrapeResult 実行結果（サマリーとレコード本体）
type ScrapeResult struct {
	Summary ScrapeSummary `json:"summary"`
	Records []PlaceRecord `json:"records"`
}
