package helper

import (
	"testing"

	"confgive/dto/model"
)

func TestNormalizePaymentType(t *testing.T) {
	cases := map[string]string{
		model.PaymentTypeCreditCard: "credit_card",
		model.PaymentTypeApplePay:   "apple_pay",
		model.PaymentTypeGooglePay:  "google_pay",
		model.PaymentTypeSamsungPay: "samsung_pay",
		"":                          "credit_card",
	}
	for input, want := range cases {
		if got := NormalizePaymentType(input); got != want {
			t.Fatalf("NormalizePaymentType(%q) = %q, want %q", input, got, want)
		}
	}
}
