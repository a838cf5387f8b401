package helper

import (
	"strings"

	"confgive/dto/model"
)

// NormalizePaymentType maps the form value to the underscored tag the
// settlement API expects. An empty or unknown value falls back to
// credit_card, matching the form default.
func NormalizePaymentType(paymentType string) string {
	if paymentType == "" {
		paymentType = model.PaymentTypeCreditCard
	}
	return strings.ReplaceAll(paymentType, "-", "_")
}

// PaymentTypeLabel returns the human label used on the status pages.
func PaymentTypeLabel(paymentType string) string {
	switch paymentType {
	case model.PaymentTypeApplePay:
		return "Apple Pay"
	case model.PaymentTypeGooglePay:
		return "Google Pay"
	case model.PaymentTypeSamsungPay:
		return "Samsung Pay"
	case model.PaymentTypeCreditCard:
		return "Credit Card"
	}
	return paymentType
}
