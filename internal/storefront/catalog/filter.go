package catalog

import (
	"slices"

	"github.com/jelllllllllll/F1s/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Facetsはカタログの絞り込み条件。空のファセットは「制限なし」。
type Facets struct {
	Channels   []string // vendor_type: official / creator
	Teams      []string
	Categories []string
	PriceBand  string // "", "0-50", "50-100", "100-200", "200+"
}

// Filterは選択ファセットの積で絞り込む。並び順は入力のまま。
func Filter(products []model.Product, f Facets) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if len(f.Channels) > 0 && !slices.Contains(f.Channels, p.VendorType) {
			continue
		}
		if len(f.Teams) > 0 && !slices.Contains(f.Teams, p.Team) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if !inPriceBand(p.Price, f.PriceBand) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// 価格帯は固定の4バンド。両端を含む。
func inPriceBand(price decimal.Decimal, band string) bool {
	switch band {
	case "0-50":
		return price.LessThanOrEqual(decimal.NewFromInt(50))
	case "50-100":
		return price.GreaterThanOrEqual(decimal.NewFromInt(50)) &&
			price.LessThanOrEqual(decimal.NewFromInt(100))
	case "100-200":
		return price.GreaterThanOrEqual(decimal.NewFromInt(100)) &&
			price.LessThanOrEqual(decimal.NewFromInt(200))
	case "200+":
		return price.GreaterThanOrEqual(decimal.NewFromInt(200))
	default:
		return true
	}
}

// Teamsは絞り込みUIに出すチーム名の一覧（重複除去、出現順）。
func Teams(products []model.Product) []string {
	var teams []string
	for _, p := range products {
		if p.Team == "" || slices.Contains(teams, p.Team) {
			continue
		}
		teams = append(teams, p.Team)
	}
	return teams
}

// Relatedは同じチームまたは同じカテゴリの商品を最大max件返す。自分は除く。
func Related(products []model.Product, p model.Product, max int) []model.Product {
	var out []model.Product
	for _, q := range products {
		if q.Code == p.Code {
			continue
		}
		if q.Team != p.Team && q.Category != p.Category {
			continue
		}
		out = append(out, q)
		if len(out) == max {
			break
		}
	}
	return out
}
