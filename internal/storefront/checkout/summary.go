package checkout

import "github.com/shopspring/decimal"

// Summaryは注文サマリー欄の表示用の内訳。
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

var (
	freeShippingOver = decimal.NewFromInt(100)
	shippingFee      = decimal.NewFromFloat(9.99)
	taxRate          = decimal.NewFromFloat(0.08)
)

// Summarizeは小計から送料（100超で無料）と税8%を積む。表示専用で、
// 注文のtotalAmountには使わない。
func Summarize(subtotal decimal.Decimal) Summary {
	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
