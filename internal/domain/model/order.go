package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "Pending"

// Customerは注文時の連絡先・住所。
type Customer struct {
	Email    string `gorm:"type:varchar(255)" json:"email"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	FullName string `gorm:"type:varchar(255)" json:"fullName"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	Zip      string `gorm:"type:varchar(20)" json:"zip"`
	State    string `gorm:"type:varchar(100)" json:"state"`
	Country  string `gorm:"type:varchar(100)" json:"country"`
}

// Orderはチェックアウト1回につき1件。作成後は更新も削除もしない。
// Itemsはクライアントが表示時に解釈するだけなので、そのまま保存する。
type Order struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderNumber    string          `gorm:"type:varchar(64);index" json:"orderNumber"`
	Customer       Customer        `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items          json.RawMessage `gorm:"serializer:json" json:"items"`
	PaymentMethod  string          `gorm:"type:varchar(50)" json:"paymentMethod"`
	ShippingMethod string          `gorm:"type:varchar(50)" json:"shippingMethod"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"totalAmount"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	OrderDate      time.Time       `gorm:"not null;index" json:"orderDate"`
}
