package catalog

import (
	"sort"
	"time"

	"github.com/jelllllllllll/F1s/internal/domain/model"

	"github.com/araddon/dateparse"
)

// Sortは指定キーで並べ替えたコピーを返す。
// キー無指定・不明キーは在庫合計の多い順。
func Sort(products []model.Product, key string) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	switch key {
	case "price-low":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case "price-high":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case "newest":
		sort.SliceStable(sorted, func(i, j int) bool {
			return releaseTime(sorted[i]).After(releaseTime(sorted[j]))
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StockTotal > sorted[j].StockTotal
		})
	}
	return sorted
}

// release_dateが無い・読めない商品は最古扱い。
func releaseTime(p model.Product) time.Time {
	if p.ReleaseDate == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(p.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
