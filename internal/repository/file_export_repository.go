package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/a3lachi/searchbiz/internal/domain/helper"
	"github.com/a3lachi/searchbiz/internal/domain/model"
	domainrepo "github.com/a3lachi/searchbiz/internal/domain/repository"
)

// exportTimestampFormat 出力ファイル名に埋め込むタイムスタンプの書式
const exportTimestampFormat = "20060102_150405"

// csvColumns CSV出力の固定カラム順
var csvColumns = []string{
	"name", "place_id", "address", "latitude", "longitude",
	"rating", "user_ratings_total", "phone_number", "website",
}

// FileExportRepository レコード集合をCSV/JSONファイルとして書き出すリポジトリ
type FileExportRepository struct {
	outputDir string
	now       func() time.Time
}

// NewFileExportRepository FileExportRepositoryの新しいインスタンスを作成
// outputDirが空の場合はカレントディレクトリに出力する
func NewFileExportRepository(outputDir string) domainrepo.ExportRepository {
	if outputDir == "" {
		outputDir = "."
	}
	return &FileExportRepository{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// ExportJSON レコードをJSONファイルに書き出し、生成したファイルパスを返す
func (r *FileExportRepository) ExportJSON(records []model.PlaceRecord, query *model.SearchQuery) (string, error) {
	path := r.buildFilePath(query, "json")

	// 0件でも空配列を出力する（nullにしない）
	if records == nil {
		records = []model.PlaceRecord{}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", &model.ExportError{Format: "json", Err: err}
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return "", &model.ExportError{Format: "json", Err: err}
	}

	log.Printf("💾 JSONを保存しました: %s", path)
	return path, nil
}

// ExportCSV レコードをCSVファイルに書き出し、生成したファイルパスを返す
// レコードが0件でもヘッダー行は必ず出力する
func (r *FileExportRepository) ExportCSV(records []model.PlaceRecord, query *model.SearchQuery) (string, error) {
	path := r.buildFilePath(query, "csv")

	file, err := os.Create(path)
	if err != nil {
		return "", &model.ExportError{Format: "csv", Err: err}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return "", &model.ExportError{Format: "csv", Err: err}
	}

	for i := range records {
		if err := writer.Write(recordToCSVRow(&records[i])); err != nil {
			return "", &model.ExportError{Format: "csv", Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", &model.ExportError{Format: "csv", Err: err}
	}

	log.Printf("💾 CSVを保存しました: %s", path)
	return path, nil
}

// buildFilePath プレイスタイプ・地域・タイムスタンプから衝突しないファイルパスを構築する
func (r *FileExportRepository) buildFilePath(query *model.SearchQuery, ext string) string {
	filename := fmt.Sprintf("%s_%s_%s.%s",
		helper.SanitizeFilename(query.PlaceType),
		helper.SanitizeFilename(query.Location),
		r.now().Format(exportTimestampFormat),
		ext,
	)
	return filepath.Join(r.outputDir, filename)
}

// recordToCSVRow レコードをCSVの1行に変換する（NULLABLE項目は空文字列）
func recordToCSVRow(record *model.PlaceRecord) []string {
	rating := ""
	if record.Rating != nil {
		rating = strconv.FormatFloat(*record.Rating, 'f', -1, 64)
	}
	ratingsTotal := ""
	if record.UserRatingsTotal != nil {
		ratingsTotal = strconv.Itoa(*record.UserRatingsTotal)
	}

	return []string{
		record.Name,
		record.PlaceID,
		record.Address,
		strconv.FormatFloat(record.Latitude, 'f', -1, 64),
		strconv.FormatFloat(record.Longitude, 'f', -1, 64),
		rating,
		ratingsTotal,
		record.GetPhoneNumber(),
		record.GetWebsite(),
	}
}
