package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3lachi/searchbiz/internal/domain/model"
)

// newTestProvider httptestサーバーに向けたプロバイダを生成する
func newTestProvider(handler http.HandlerFunc) (*GooglePlacesProvider, *httptest.Server) {
	server := httptest.NewServer(handler)
	provider := NewGooglePlacesProvider("test-api-key")
	provider.baseURL = server.URL
	return provider, server
}

func searchQuery() *model.SearchQuery {
	return &model.SearchQuery{
		PlaceType: model.PlaceTypeRestaurant,
		Location:  "Seattle, WA",
		Radius:    model.DefaultRadius,
	}
}

// TestSearchPage_OK 正常レスポンスの解析とリクエストパラメータを検証する
func TestSearchPage_OK(t *testing.T) {
	var gotQuery, gotToken, gotKey string
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotToken = r.URL.Query().Get("pagetoken")
		gotKey = r.URL.Query().Get("key")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"name": "Pike Place Chowder", "place_id": "p1",
				 "formatted_address": "1530 Post Alley",
				 "geometry": {"location": {"lat": 47.6097, "lng": -122.3422}},
				 "rating": 4.7, "user_ratings_total": 12000}
			],
			"next_page_token": "token-abc"
		}`))
	})
	defer server.Close()

	page, err := provider.SearchPage(context.Background(), searchQuery(), "prev-token")

	require.NoError(t, err)
	assert.Equal(t, "restaurant in Seattle, WA", gotQuery)
	assert.Equal(t, "prev-token", gotToken)
	assert.Equal(t, "test-api-key", gotKey)

	require.Len(t, page.Results, 1)
	place := page.Results[0]
	assert.Equal(t, "p1", place.PlaceID)
	require.NotNil(t, place.Geometry)
	assert.InDelta(t, 47.6097, place.Geometry.Location.Lat, 0.0001)
	assert.Equal(t, "token-abc", page.NextPageToken)
	assert.True(t, page.HasNextPage())
}

// TestSearchPage_CoordinateLocation 座標指定時はlocationパラメータが付与される
func TestSearchPage_CoordinateLocation(t *testing.T) {
	var gotQuery, gotLocation string
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotLocation = r.URL.Query().Get("location")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})
	defer server.Close()

	query := searchQuery()
	query.Location = "47.6062,-122.3321"
	_, err := provider.SearchPage(context.Background(), query, "")

	require.NoError(t, err)
	assert.Equal(t, "restaurant", gotQuery)
	assert.Equal(t, "47.606200,-122.332100", gotLocation)
}

// TestSearchPage_APIError OK/ZERO_RESULTS以外のステータスはAPIErrorになる
func TestSearchPage_APIError(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "error_message": "quota exceeded"}`))
	})
	defer server.Close()

	_, err := provider.SearchPage(context.Background(), searchQuery(), "")

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.StatusOverQueryLimit, apiErr.Status)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

// TestSearchPage_HTTPFailure 非2xx応答は再試行可能なNetworkErrorになる
func TestSearchPage_HTTPFailure(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer server.Close()

	_, err := provider.SearchPage(context.Background(), searchQuery(), "")

	var netErr *model.NetworkError
	require.ErrorAs(t, err, &netErr)
}

// TestSearchPage_ConnectionFailure 接続不能もNetworkErrorになる
func TestSearchPage_ConnectionFailure(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // 先に閉じて接続エラーを発生させる

	_, err := provider.SearchPage(context.Background(), searchQuery(), "")

	var netErr *model.NetworkError
	require.ErrorAs(t, err, &netErr)
}

// TestPlaceDetails_OK 詳細取得のレスポンス解析とfieldsパラメータを検証する
func TestPlaceDetails_OK(t *testing.T) {
	var gotPlaceID, gotFields string
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		gotPlaceID = r.URL.Query().Get("place_id")
		gotFields = r.URL.Query().Get("fields")

		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Pike Place Chowder",
				"formatted_phone_number": "(206) 267-2537",
				"website": "https://example.com"
			}
		}`))
	})
	defer server.Close()

	details, err := provider.PlaceDetails(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", gotPlaceID)
	assert.Equal(t, model.PlaceDetailFields, gotFields)
	assert.Equal(t, "(206) 267-2537", details.FormattedPhoneNumber)
	assert.Equal(t, "https://example.com", details.Website)
}

// TestPlaceDetails_NotFound 詳細側のエラーステータスもAPIErrorとして返す
func TestPlaceDetails_NotFound(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "INVALID_REQUEST"}`))
	})
	defer server.Close()

	_, err := provider.PlaceDetails(context.Background(), "unknown")

	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
}

// TestValidateAPIKey APIキー検証の判定をテストする
func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		wantError bool
	}{
		{"OKは有効", "OK", false},
		{"ZERO_RESULTSも有効", "ZERO_RESULTS", false},
		{"REQUEST_DENIEDは無効", "REQUEST_DENIED", true},
		{"OVER_QUERY_LIMITは無効", "OVER_QUERY_LIMIT", true},
		{"不明なステータスは警告のみで通過", "UNKNOWN_ERROR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "` + tt.status + `", "results": []}`))
			})
			defer server.Close()

			err := provider.ValidateAPIKey(context.Background())
			if tt.wantError {
				var configErr *model.ConfigError
				require.ErrorAs(t, err, &configErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestSearchPage_MalformedJSON 壊れたレスポンスボディはNetworkErrorとして扱う
func TestSearchPage_MalformedJSON(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": [`))
	})
	defer server.Close()

	_, err := provider.SearchPage(context.Background(), searchQuery(), "")

	var netErr *model.NetworkError
	require.True(t, errors.As(err, &netErr))
}
