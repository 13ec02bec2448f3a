package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a3lachi/searchbiz/internal/domain/model"
	"github.com/a3lachi/searchbiz/internal/usecase"
)

// PlacesHandler プレイス検索に関するHTTPハンドラー
type PlacesHandler struct {
	scrapeUseCase usecase.PlaceScrapeUseCase
}

// NewPlacesHandler PlacesHandlerの新しいインスタンスを作成
func NewPlacesHandler(scrapeUseCase usecase.PlaceScrapeUseCase) *PlacesHandler {
	return &PlacesHandler{
		scrapeUseCase: scrapeUseCase,
	}
}

// SearchPlaces POST /api/search - スクレイピングを同期実行して結果を返す
func (h *PlacesHandler) SearchPlaces(c *gin.Context) {
	var req model.SearchRequest

	// リクエストボディの解析（Ginが自動でContent-Type確認）
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// ユースケース層で処理
	result, err := h.scrapeUseCase.ScrapePlaces(c.Request.Context(), req.ToSearchQuery())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health GET /api/health - ヘルスチェック
func (h *PlacesHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "searchbiz",
	})
}

// respondError エラー分類に応じたステータスコードでレスポンスを返す
func (h *PlacesHandler) respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var apiErr *model.APIError
	var configErr *model.ConfigError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	case errors.As(err, &apiErr):
		// 外部プロバイダ起因のエラー
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_error",
			"message": err.Error(),
		})
	case errors.As(err, &configErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "config_error",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to scrape places: " + err.Error(),
		})
	}
}
