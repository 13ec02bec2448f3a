package repository

import (
	"github.com/a3lachi/searchbiz/internal/domain/model"
)

// ExportRepository レコード集合のファイル出力を抽象化するインターフェース
type ExportRepository interface {
	// ExportJSON レコードをJSONファイルに書き出し、生成したファイルパスを返す
	ExportJSON(records []model.PlaceRecord, query *model.SearchQuery) (string, error)

	// ExportCSV レコードをCSVファイルに書き出し、生成したファイルパスを返す
	// レコードが0件でもヘッダー行は必ず出力する
	ExportCSV(records []model.PlaceRecord, query *model.SearchQuery) (string, error)
}
