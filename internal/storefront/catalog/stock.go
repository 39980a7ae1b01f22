package catalog

// 在庫表示のステータス
const (
	StockHigh   = "in stock"
	StockMedium = "limited"
	StockLow    = "low"
)

// StockStatusは在庫合計だけで決まる。21以上で在庫あり、5〜20は残りわずか。
func StockStatus(stockTotal int64) string {
	switch {
	case stockTotal > 20:
		return StockHigh
	case stockTotal >= 5:
		return StockMedium
	default:
		return StockLow
	}
}
