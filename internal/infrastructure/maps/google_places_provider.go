package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/a3lachi/searchbiz/internal/domain/helper"
	"github.com/a3lachi/searchbiz/internal/domain/model"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// GooglePlacesProvider はGoogle Places APIを使用したプレイス検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    placesBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchPage はテキスト検索APIを呼び出して1ページ分の結果を取得する
func (g *GooglePlacesProvider) SearchPage(ctx context.Context, query *model.SearchQuery, pageToken string) (*model.SearchPage, error) {
	reqURL := g.buildSearchURL(query, pageToken)

	var apiResp textSearchResponse
	if err := g.doGet(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	if model.IsTerminalStatus(apiResp.Status) {
		return nil, &model.APIError{Status: apiResp.Status, Message: apiResp.ErrorMessage}
	}

	return &model.SearchPage{
		Status:        apiResp.Status,
		Results:       apiResp.Results,
		NextPageToken: apiResp.NextPageToken,
	}, nil
}

// PlaceDetails は詳細取得APIを呼び出して指定プレイスの補足情報を取得する
func (g *GooglePlacesProvider) PlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("place_id", placeID)
	params.Set("fields", model.PlaceDetailFields)
	reqURL := fmt.Sprintf("%s/details/json?%s", g.baseURL, params.Encode())

	var apiResp detailsResponse
	if err := g.doGet(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	if model.IsTerminalStatus(apiResp.Status) {
		return nil, &model.APIError{Status: apiResp.Status, Message: apiResp.ErrorMessage}
	}
	if apiResp.Result == nil {
		return nil, &model.ValidationError{PlaceID: placeID, Message: "詳細レスポンスにresultが含まれていません"}
	}

	return apiResp.Result, nil
}

// ValidateAPIKey はテストリクエストを1回発行してAPIキーの有効性を確認する
// REQUEST_DENIED / OVER_QUERY_LIMIT は無効、OK / ZERO_RESULTS は有効と判定する
func (g *GooglePlacesProvider) ValidateAPIKey(ctx context.Context) error {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("query", "restaurant in New York")
	params.Set("radius", "1000")
	reqURL := fmt.Sprintf("%s/textsearch/json?%s", g.baseURL, params.Encode())

	var apiResp textSearchResponse
	if err := g.doGet(ctx, reqURL, &apiResp); err != nil {
		return err
	}

	switch apiResp.Status {
	case model.StatusRequestDenied:
		return &model.ConfigError{Message: "APIキーが無効または制限されています"}
	case model.StatusOverQueryLimit:
		return &model.ConfigError{Message: "APIキーのクォータを超過しています"}
	case model.StatusOK, model.StatusZeroResults:
		return nil
	default:
		// 不明なステータスは警告のみで通過させる（動作する可能性があるため）
		log.Printf("⚠️ APIキー検証で不明なステータス: %s", apiResp.Status)
		return nil
	}
}

// doGet はGETリクエストを実行してJSONレスポンスをパースする
// 通信断・タイムアウト・非2xx応答・パース失敗はすべて再試行可能なNetworkErrorとして返す
func (g *GooglePlacesProvider) doGet(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &model.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.NetworkError{Err: fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.NetworkError{Err: fmt.Errorf("JSONのパースに失敗: %w", err)}
	}

	return nil
}

func (g *GooglePlacesProvider) buildSearchURL(query *model.SearchQuery, pageToken string) string {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("query", helper.BuildSearchQueryText(query.PlaceType, query.Location))
	params.Set("radius", fmt.Sprintf("%d", query.EffectiveRadius()))

	// 位置が座標指定の場合はlocationパラメータで検索範囲を絞り込む
	if point, ok := helper.ParseLatLng(query.Location); ok {
		params.Set("location", helper.FormatLatLng(point))
	}

	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	return fmt.Sprintf("%s/textsearch/json?%s", g.baseURL, params.Encode())
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type textSearchResponse struct {
	Status        string           `json:"status"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	Results       []model.RawPlace `json:"results"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

type detailsResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Result       *model.PlaceDetails `json:"result"`
}
