package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// Formはチェックアウト画面の入力。
type Form struct {
	Email    string
	Phone    string
	FullName string
	Address  string
	City     string
	Zip      string
	State    string // 任意。空なら"NA"で送る
	Country  string

	PaymentMethod  string
	ShippingMethod string // 任意。空なら"standard"
}

// 必須は「空でないこと」だけ。形式チェックは提出条件にしない。
func (f Form) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"email", f.Email},
		{"phone", f.Phone},
		{"fullName", f.FullName},
		{"address", f.Address},
		{"city", f.City},
		{"zip", f.Zip},
		{"country", f.Country},
		{"paymentMethod", f.PaymentMethod},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldValidは項目単位の形式チェック（入力中の警告表示用）。
// Validateからは呼ばれない。
func FieldValid(name string, value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	switch name {
	case "email":
		return emailPattern.MatchString(v)
	case "phone":
		return len(v) >= 10
	default:
		return true
	}
}
