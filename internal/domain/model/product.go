package model

import "github.com/shopspring/decimal"

// Variantはサイズ等の購入単位。在庫はバリアントごとに持つ。
type Variant struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Stock int64  `json:"stock"`
}

// Productは商品。
// 外部キーはCode（JSONでは"id"）。DBの主キーIDは外に出さない。
type Product struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	Code           string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"id"`
	Title          string          `gorm:"type:varchar(255)" json:"title"`
	VendorType     string          `gorm:"type:varchar(20)" json:"vendor_type"`
	Team           string          `gorm:"type:varchar(100)" json:"team"`
	CreatorName    string          `gorm:"type:varchar(100)" json:"creator_name,omitempty"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Currency       string          `gorm:"type:varchar(8)" json:"currency"`
	Images         []string        `gorm:"serializer:json" json:"images"`
	Variants       []Variant       `gorm:"serializer:json" json:"variants"`
	StockTotal     int64           `json:"stock_total"`
	Description    string          `gorm:"type:text" json:"description"`
	Badges         []string        `gorm:"serializer:json" json:"badges"`
	Category       string          `gorm:"type:varchar(50)" json:"category"`
	SKU            string          `gorm:"type:varchar(64)" json:"sku"`
	ReleaseDate    string          `gorm:"type:varchar(32)" json:"release_date,omitempty"`
	RoyaltyPercent float64         `json:"royalty_percent,omitempty"`
}
