package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ParseLatLng "lat,lng" 形式の文字列をorb.Pointとして解析する
// 座標として解釈できない場合は ok=false を返す（都市名などの自由文字列）
func ParseLatLng(location string) (orb.Point, bool) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return orb.Point{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, false
	}

	// orb.Pointは[経度, 緯度]の順
	point := orb.Point{lng, lat}
	if point.Lat() < -90 || point.Lat() > 90 || point.Lon() < -180 || point.Lon() > 180 {
		return orb.Point{}, false
	}

	return point, true
}

// FormatLatLng orb.Pointを "lat,lng" 形式の文字列に変換する（APIパラメータ用）
func FormatLatLng(point orb.Point) string {
	return fmt.Sprintf("%f,%f", point.Lat(), point.Lon())
}

// BuildSearchQueryText テキスト検索用のクエリ文字列を構築する
// 位置が座標指定の場合はプレイスタイプのみを返す（座標はlocationパラメータで渡す）
func BuildSearchQueryText(placeType, location string) string {
	if _, ok := ParseLatLng(location); ok {
		return placeType
	}
	return fmt.Sprintf("%s in %s", placeType, location)
}

// SanitizeFilename 文字列をファイル名として安全な形式に変換する
func SanitizeFilename(text string) string {
	// 問題になりやすい文字をアンダースコアに置換
	sanitized := strings.NewReplacer(" ", "_", ",", "_", "/", "_").Replace(text)

	// 英数字・アンダースコア・ハイフン以外を除去
	var b strings.Builder
	for _, c := range sanitized {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}

	return strings.ToLower(b.String())
}

// FormatPhoneNumber 電話番号の表記を統一する
// 国際表記（+始まり）はそのまま、それ以外は区切り文字を除去する
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	if strings.HasPrefix(phone, "+") {
		return phone
	}

	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}
