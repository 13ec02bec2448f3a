package helper

import (
	"github.com/a3lachi/searchbiz/internal/domain/model"
)

// ExtractPlaceRecord 検索結果の生データ（と任意の詳細情報）からフラットなレコードを生成する
// geometry.locationが欠落している場合は不正なAPIレスポンスとみなしValidationErrorを返す
func ExtractPlaceRecord(raw *model.RawPlace, details *model.PlaceDetails) (*model.PlaceRecord, error) {
	if raw.PlaceID == "" {
		return nil, &model.ValidationError{Message: "place_idが空です"}
	}
	if raw.Geometry == nil || raw.Geometry.Location == nil {
		return nil, &model.ValidationError{PlaceID: raw.PlaceID, Message: "geometry.locationが欠落しています"}
	}

	record := &model.PlaceRecord{
		Name:             raw.Name,
		PlaceID:          raw.PlaceID,
		Address:          raw.FormattedAddress,
		Latitude:         raw.Geometry.Location.Lat,
		Longitude:        raw.Geometry.Location.Lng,
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingsTotal,
	}

	// 詳細情報がある場合は上書きマージ
	if details != nil {
		mergeDetails(record, details)
	}

	return record, nil
}

// mergeDetails 詳細取得APIの結果をレコードにマージする
// 詳細側に値がある項目のみ上書きし、欠落項目は検索結果の値を維持する
func mergeDetails(record *model.PlaceRecord, details *model.PlaceDetails) {
	if details.Name != "" {
		record.Name = details.Name
	}
	if details.FormattedAddress != "" {
		record.Address = details.FormattedAddress
	}
	if details.Rating != nil {
		record.Rating = details.Rating
	}
	if details.UserRatingsTotal != nil {
		record.UserRatingsTotal = details.UserRatingsTotal
	}
	if details.Geometry != nil && details.Geometry.Location != nil {
		record.Latitude = details.Geometry.Location.Lat
		record.Longitude = details.Geometry.Location.Lng
	}

	record.SetPhoneNumber(FormatPhoneNumber(details.FormattedPhoneNumber))
	record.SetWebsite(details.Website)
}

// DeduplicateRecords place_idの重複を除去する（先勝ちポリシー）
// APIはページをまたいで同一プレイスを返すことがあるため、エクスポート前に必ず通す
func DeduplicateRecords(records []model.PlaceRecord) []model.PlaceRecord {
	seen := make(map[string]bool, len(records))
	result := make([]model.PlaceRecord, 0, len(records))

	for _, record := range records {
		if seen[record.PlaceID] {
			continue
		}
		seen[record.PlaceID] = true
		result = append(result, record)
	}

	return result
}
