package model

// LatLng 緯度経度を表す基本的な型（座標指定の検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RawGeometry Google Places APIレスポンスのgeometryフィールド
type RawGeometry struct {
	Location *LatLng `json:"location"` // 位置情報（欠落検出のためポインタ）
}

// RawPlace テキスト検索APIが返す1件分の生データ
// フィールドの形状は外部APIが管理するため、必要な項目のみ写し取る
type RawPlace struct {
	Name             string       `json:"name"`
	PlaceID          string       `json:"place_id"`
	FormattedAddress string       `json:"formatted_address"`
	Geometry         *RawGeometry `json:"geometry"`
	Rating           *float64     `json:"rating,omitempty"`             // 評価値（NULLABLE）
	UserRatingsTotal *int         `json:"user_ratings_total,omitempty"` // 評価件数（NULLABLE）
}

// PlaceDetails 詳細取得APIが返す補足情報
type PlaceDetails struct {
	Name                 string       `json:"name"`
	FormattedAddress     string       `json:"formatted_address"`
	Geometry             *RawGeometry `json:"geometry"`
	Rating               *float64     `json:"rating,omitempty"`
	UserRatingsTotal     *int         `json:"user_ratings_total,omitempty"`
	FormattedPhoneNumber string       `json:"formatted_phone_number"`
	Website              string       `json:"website"`
}

// SearchPage テキスト検索APIの1ページ分の結果
type SearchPage struct {
	Status        string     `json:"status"`
	Results       []RawPlace `json:"results"`
	NextPageToken string     `json:"next_page_token"` // 空文字列はページング終了を意味する
}

// HasNextPage 続きのページが存在するかチェック
func (p *SearchPage) HasNextPage() bool {
	return p.NextPageToken != ""
}

// PlaceRecord エクスポート対象となるフラットなレコード
// place_idは1回の実行内で一意（重複はエクスポート前に除去される）
type PlaceRecord struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Rating           *float64 `json:"rating"`             // 評価値（NULLABLE）
	UserRatingsTotal *int     `json:"user_ratings_total"` // 評価件数（NULLABLE）
	PhoneNumber      *string  `json:"phone_number"`       // 電話番号（詳細取得時のみ）
	Website          *string  `json:"website"`            // ウェブサイト（詳細取得時のみ）
}

// ToLatLng レコードの位置情報をLatLng型に変換
func (r *PlaceRecord) ToLatLng() LatLng {
	return LatLng{Lat: r.Latitude, Lng: r.Longitude}
}

// GetPhoneNumber 電話番号が存在する場合は値を、存在しない場合は空文字列を返す
func (r *PlaceRecord) GetPhoneNumber() string {
	if r.PhoneNumber != nil {
		return *r.PhoneNumber
	}
	return ""
}

// SetPhoneNumber 電話番号を設定する（空文字列の場合はnilのまま保持）
func (r *PlaceRecord) SetPhoneNumber(phone string) {
	if phone != "" {
		r.PhoneNumber = &phone
	}
}

// GetWebsite ウェブサイトが存在する場合は値を、存在しない場合は空文字列を返す
func (r *PlaceRecord) GetWebsite() string {
	if r.Website != nil {
		return *r.Website
	}
	return ""
}

// SetWebsite ウェブサイトを設定する（空文字列の場合はnilのまま保持）
func (r *PlaceRecord) SetWebsite(website string) {
	if website != "" {
		r.Website = &website
	}
}

// HasContactInfo 電話番号またはウェブサイトが設定されているかチェック
func (r *PlaceRecord) HasContactInfo() bool {
	return (r.PhoneNumber != nil && *r.PhoneNumber != "") ||
		(r.Website != nil && *r.Website != "")
}
