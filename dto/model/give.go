package model

import (
	"time"
)

// Payment types as selected on the form. The settlement payload carries the
// underscored variant (credit_card, apple_pay, ...).
const (
	PaymentTypeCreditCard = "credit-card"
	PaymentTypeApplePay   = "apple-pay"
	PaymentTypeGooglePay  = "google-pay"
	PaymentTypeSamsungPay = "samsung-pay"
)

// GiveStatus is the donor-facing session outcome. A session starts at form
// and ends at success or fail; there is no way back without a new session.
const (
	GiveStatusForm    = "form"
	GiveStatusSuccess = "success"
	GiveStatusFail    = "fail"
)

// GiveForm is the donor form snapshot taken at submit time.
type GiveForm struct {
	Amount        int    `json:"amount" validate:"required,gt=0"`
	Email         string `json:"email" validate:"required"`
	CountryCode   string `json:"countryCode" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	PaymentType   string `json:"paymentType" validate:"required,oneof=credit-card apple-pay google-pay samsung-pay"`
	Name          string `json:"name"`
	ReceiptName   string `json:"receiptName"`
	NationalID    string `json:"nationalid"`
	Company       string `json:"company"`
	TaxID         string `json:"taxid"`
	Upload        bool   `json:"upload"`
	Note          string `json:"note" validate:"max=200"`
	PrivacyPolicy bool   `json:"privacyPolicy"`
}

// DefaultGiveForm returns a form with the mount-time defaults.
func DefaultGiveForm() GiveForm {
	return GiveForm{
		Amount:      1000,
		CountryCode: "886",
		Note:        "",
		Upload:      false,
	}
}

// GiveAttempt is the operational audit row for one payment attempt. It never
// stores the prime, only the masked last four digits of the card.
type GiveAttempt struct {
	ID              string     `gorm:"size:50;primaryKey" json:"id"`
	SessionToken    string     `gorm:"type:VARCHAR(50)" json:"session_token"`
	PaymentType     string     `gorm:"type:VARCHAR(30)" json:"payment_type"`
	Amount          int        `gorm:"type:INTEGER" json:"amount"`
	Email           string     `gorm:"type:VARCHAR(255)" json:"email"`
	Phone           string     `gorm:"type:VARCHAR(25)" json:"phone"`
	CardLastFour    string     `gorm:"type:VARCHAR(4)" json:"card_lastfour"`
	Status          string     `gorm:"type:VARCHAR(10)" json:"status"`
	FailReason      string     `gorm:"type:VARCHAR(255)" json:"fail_reason"`
	DeviceClass     string     `gorm:"type:VARCHAR(10)" json:"device_class"`
	UserIP          string     `gorm:"type:VARCHAR(45)" json:"user_ip"`
	RequestDate     *time.Time `json:"request_date"`
	SettlementDate  *time.Time `json:"settlement_date"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentMethod is a catalog entry describing one selectable payment method.
// Stored in mongo when a catalog database is configured, with built-in
// defaults otherwise.
type PaymentMethod struct {
	Slug        string `bson:"slug" json:"slug"`
	DisplayName string `bson:"display_name" json:"display_name"`
	Enabled     bool   `bson:"enabled" json:"enabled"`
	MinAmount   int    `bson:"min_amount" json:"min_amount"`
}
