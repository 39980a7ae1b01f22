package checkout

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/storefront/cart"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 注文番号の固定プレフィックス
const orderNumberPrefix = "F1M-"

// 注文を受けるAPI
type OrderAPI interface {
	CreateOrder(ctx context.Context, o model.Order) (model.Order, error)
}

// Flowはカートとフォームから注文を1件組み立てて送る。
// リトライも冪等性キーも無い。失敗したらカートはそのまま残す。
type Flow struct {
	cart *cart.Manager
	api  OrderAPI
	now  func() time.Time
}

func NewFlow(c *cart.Manager, api OrderAPI) *Flow {
	return &Flow{cart: c, api: api, now: time.Now}
}

// Confirmationは注文成立画面に出す内容。
// TrackingCodeはクライアント生成の飾りで、どこにも保存されない。
type Confirmation struct {
	OrderNumber  string
	TrackingCode string
	TotalPaid    decimal.Decimal
}

// Submitはローカル検証→注文送信→成功時のみカートを空にする。
func (f *Flow) Submit(ctx context.Context, form Form) (Confirmation, error) {
	if err := form.Validate(); err != nil {
		// ここで止まれば通信は一切発生しない
		return Confirmation{}, err
	}

	items, err := json.Marshal(f.cart.Items())
	if err != nil {
		return Confirmation{}, err
	}

	state := strings.TrimSpace(form.State)
	if state == "" {
		state = "NA"
	}
	shipping := form.ShippingMethod
	if shipping == "" {
		shipping = "standard"
	}

	order := model.Order{
		OrderNumber: orderNumberPrefix + strconv.FormatInt(f.now().UnixMilli(), 10),
		Customer: model.Customer{
			Email:    form.Email,
			Phone:    form.Phone,
			FullName: form.FullName,
			Address:  form.Address,
			City:     form.City,
			Zip:      form.Zip,
			State:    state,
			Country:  form.Country,
		},
		Items:          items,
		PaymentMethod:  form.PaymentMethod,
		ShippingMethod: shipping,
		TotalAmount:    f.cart.Total(),
	}

	created, err := f.api.CreateOrder(ctx, order)
	if err != nil {
		zap.S().Errorf("checkout failed: %v", err)
		return Confirmation{}, err
	}

	if err := f.cart.Clear(); err != nil {
		// 注文自体は通っているので、ここは警告だけ
		zap.S().Warnf("cart clear after checkout failed: %v", err)
	}

	return Confirmation{
		OrderNumber:  created.OrderNumber,
		TrackingCode: trackingCode(),
		TotalPaid:    created.TotalAmount,
	}, nil
}

const trackingChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func trackingCode() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = trackingChars[rand.Intn(len(trackingChars))]
	}
	return "TRK" + strings.ToUpper(string(b))
}
