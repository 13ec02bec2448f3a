package model

import "fmt"

// エラー分類の名称（サマリー表示やAPIレスポンスで使用）
const (
	ErrorCategoryConfig     = "config_error"
	ErrorCategoryNetwork    = "network_error"
	ErrorCategoryAPI        = "api_error"
	ErrorCategoryValidation = "validation_error"
	ErrorCategoryExport     = "export_error"
)

// ConfigError APIキーの欠落など、リクエスト送信前に検出される設定エラー
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("設定エラー: %s", e.Message)
}

// NetworkError 接続失敗やタイムアウトなど、再試行可能な通信エラー
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("ネットワークエラー: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError プロバイダが報告する拒否・クォータ超過などの終端エラー
// 現在のページングを打ち切るが、収集済みのレコードは維持される
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("APIエラー: %s - %s", e.Status, e.Message)
	}
	return fmt.Sprintf("APIエラー: %s", e.Status)
}

// ValidationError レスポンス形状の不備（geometry欠落など）
// 該当レコードのみを除外し、バッチ全体は継続する
type ValidationError struct {
	PlaceID string
	Message string
}

func (e *ValidationError) Error() string {
	if e.PlaceID != "" {
		return fmt.Sprintf("検証エラー (%s): %s", e.PlaceID, e.Message)
	}
	return fmt.Sprintf("検証エラー: %s", e.Message)
}

// ExportError ファイル書き込みの失敗
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("エクスポートエラー (%s): %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
