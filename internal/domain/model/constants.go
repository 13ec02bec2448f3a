package model

import "time"

// StatusConstants Google Places APIが返すstatusフィールドの定数
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
)

// 検索パラメータのデフォルト値と上限
const (
	DefaultRadius = 50000 // メートル（APIの上限値）
	PageSize      = 20    // テキスト検索1ページあたりの最大件数
	MaxPages      = 3     // ページ取得の上限（最大60件）
)

// レート制限対応の待機時間
const (
	PaginationDelay = 2 * time.Second        // ページトークンが有効化されるまでの待機
	RequestDelay    = 100 * time.Millisecond // 詳細取得リクエスト間の待機
)

// PlaceDetailFields 詳細取得APIに要求するフィールド一覧
const PlaceDetailFields = "name,formatted_address,geometry,rating,user_ratings_total," +
	"formatted_phone_number,website,place_id"

// PlaceTypeConstants よく使われるプレイスタイプの定数
const (
	PlaceTypeRestaurant        = "restaurant"
	PlaceTypeCafe              = "cafe"
	PlaceTypeBar               = "bar"
	PlaceTypeHotel             = "hotel"
	PlaceTypeHospital          = "hospital"
	PlaceTypePharmacy          = "pharmacy"
	PlaceTypeBank              = "bank"
	PlaceTypeStore             = "store"
	PlaceTypeSupermarket       = "supermarket"
	PlaceTypeGym               = "gym"
	PlaceTypeSchool            = "school"
	PlaceTypeBusiness          = "business"
	PlaceTypeTouristAttraction = "tourist_attraction"
)

// PlaceTypeNameMap プレイスタイプIDから日本語名へのマッピング
var PlaceTypeNameMap = map[string]string{
	PlaceTypeRestaurant:        "レストラン",
	PlaceTypeCafe:              "カフェ",
	PlaceTypeBar:               "バー",
	PlaceTypeHotel:             "ホテル",
	PlaceTypeHospital:          "病院",
	PlaceTypePharmacy:          "薬局",
	PlaceTypeBank:              "銀行",
	PlaceTypeStore:             "店舗",
	PlaceTypeSupermarket:       "スーパー",
	PlaceTypeGym:               "ジム",
	PlaceTypeSchool:            "学校",
	PlaceTypeBusiness:          "ビジネス",
	PlaceTypeTouristAttraction: "観光スポット",
}

// GetPlaceTypeJapaneseName プレイスタイプIDから日本語名を取得する
func GetPlaceTypeJapaneseName(placeType string) string {
	if name, ok := PlaceTypeNameMap[placeType]; ok {
		return name
	}
	return placeType // デフォルトはそのまま返す
}

// GetCommonPlaceTypes サポートする代表的なプレイスタイプの一覧を取得する
func GetCommonPlaceTypes() []string {
	return []string{
		PlaceTypeRestaurant,
		PlaceTypeCafe,
		PlaceTypeBar,
		PlaceTypeHotel,
		PlaceTypeHospital,
		PlaceTypePharmacy,
		PlaceTypeBank,
		PlaceTypeStore,
		PlaceTypeSupermarket,
		PlaceTypeGym,
		PlaceTypeSchool,
		PlaceTypeBusiness,
		PlaceTypeTouristAttraction,
	}
}

// IsTerminalStatus ページング継続が不可能なステータスかチェック
// OK と ZERO_RESULTS 以外はすべてAPIエラーとして扱う
func IsTerminalStatus(status string) bool {
	return status != StatusOK && status != StatusZeroResults
}
