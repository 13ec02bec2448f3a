package repository

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a3lachi/searchbiz/internal/domain/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

// newTestExportRepository タイムスタンプを固定したテスト用リポジトリを生成する
func newTestExportRepository(t *testing.T) *FileExportRepository {
	t.Helper()
	return &FileExportRepository{
		outputDir: t.TempDir(),
		now: func() time.Time {
			return time.Date(2025, 8, 25, 12, 30, 45, 0, time.UTC)
		},
	}
}

func exportQuery() *model.SearchQuery {
	return &model.SearchQuery{
		PlaceType: model.PlaceTypeRestaurant,
		Location:  "Seattle, WA",
		Radius:    model.DefaultRadius,
	}
}

func sampleRecords() []model.PlaceRecord {
	return []model.PlaceRecord{
		{
			Name:             "Pike Place Chowder",
			PlaceID:          "place-1",
			Address:          "1530 Post Alley",
			Latitude:         47.6097,
			Longitude:        -122.3422,
			Rating:           floatPtr(4.7),
			UserRatingsTotal: intPtr(12000),
			PhoneNumber:      strPtr("+1 206-267-2537"),
			Website:          strPtr("https://example.com"),
		},
		{
			Name:      "名無し食堂",
			PlaceID:   "place-2",
			Address:   "Somewhere",
			Latitude:  47.6,
			Longitude: -122.3,
			// 任意項目はすべて欠落
		},
	}
}

// TestExportCSV_HeaderAlwaysPresent 0件でもヘッダー行が出力されることを検証する
func TestExportCSV_HeaderAlwaysPresent(t *testing.T) {
	repo := newTestExportRepository(t)

	path, err := repo.ExportCSV(nil, exportQuery())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvColumns, rows[0])
}

// TestExportFilename ファイル名にサニタイズ済みの条件とタイムスタンプが含まれることを検証する
func TestExportFilename(t *testing.T) {
	repo := newTestExportRepository(t)

	path, err := repo.ExportJSON(nil, exportQuery())
	require.NoError(t, err)

	assert.Equal(t, "restaurant_seattle__wa_20250825_123045.json", filepath.Base(path))
}

// TestExportJSON_ZeroRecords 0件でもnullではなく空配列を出力する
func TestExportJSON_ZeroRecords(t *testing.T) {
	repo := newTestExportRepository(t)

	path, err := repo.ExportJSON(nil, exportQuery())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []model.PlaceRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

// TestExport_RoundTripEquivalence CSVとJSONが同一のplace_id集合・値を持つことを検証する
func TestExport_RoundTripEquivalence(t *testing.T) {
	repo := newTestExportRepository(t)
	records := sampleRecords()

	jsonPath, err := repo.ExportJSON(records, exportQuery())
	require.NoError(t, err)
	csvPath, err := repo.ExportCSV(records, exportQuery())
	require.NoError(t, err)

	// JSON側の読み戻し
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []model.PlaceRecord
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 2)

	// CSV側の読み戻し
	file, err := os.Open(csvPath)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // ヘッダー + 2レコード

	for i, jsonRecord := range fromJSON {
		csvRow := rows[i+1]
		assert.Equal(t, jsonRecord.Name, csvRow[0])
		assert.Equal(t, jsonRecord.PlaceID, csvRow[1])
		assert.Equal(t, jsonRecord.Address, csvRow[2])
		assert.Equal(t, jsonRecord.GetPhoneNumber(), csvRow[7])
		assert.Equal(t, jsonRecord.GetWebsite(), csvRow[8])
	}

	// 任意項目の欠落はCSVでは空文字列、JSONでは明示的なnull
	assert.Equal(t, "", rows[2][5])
	assert.Nil(t, fromJSON[1].Rating)
}

// TestExport_WriteFailure 存在しないディレクトリへの書き込みはExportErrorになる
func TestExport_WriteFailure(t *testing.T) {
	repo := &FileExportRepository{
		outputDir: filepath.Join(t.TempDir(), "no_such_dir"),
		now:       time.Now,
	}

	_, err := repo.ExportCSV(sampleRecords(), exportQuery())
	require.Error(t, err)

	var exportErr *model.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "csv", exportErr.Format)
}
