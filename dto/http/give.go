package http

import "confgive/dto/model"

// CreateSessionRequest starts a give session. The user agent is taken from
// the request header; the body may override it for embedded webviews that
// forward the original agent.
type CreateSessionRequest struct {
	UserAgent string `json:"user_agent,omitempty"`
}

// CreateSessionResponse reports the probed defaults for the new session.
type CreateSessionResponse struct {
	Token             string         `json:"token"`
	DefaultPayment    string         `json:"default_payment"`
	DeviceClass       string         `json:"device_class"`
	Form              model.GiveForm `json:"form"`
	ConfiguredWallets []string       `json:"configured_wallets"`
}

// CardFieldStatus carries the card SDK status codes for the three hosted
// fields: 0 ok, 1 empty, 2 or 3 invalid.
type CardFieldStatus struct {
	Number int `json:"number"`
	Expiry int `json:"expiry"`
	CCV    int `json:"ccv"`
}

// ReadinessRequest re-evaluates provider readiness for a session.
type ReadinessRequest struct {
	Token      string          `json:"token" validate:"required"`
	Form       model.GiveForm  `json:"form"`
	CardFields CardFieldStatus `json:"card_fields"`
}

// ReadinessResponse mirrors the three readiness flags plus any provider
// alert raised while setting up the selected wallet.
type ReadinessResponse struct {
	ApplePayReady   bool           `json:"apple_pay_ready"`
	GooglePayReady  bool           `json:"google_pay_ready"`
	SamsungPayReady bool           `json:"samsung_pay_ready"`
	Alert           *ProviderAlert `json:"alert,omitempty"`
}

// PayRequest submits the form snapshot for settlement.
type PayRequest struct {
	Token      string          `json:"token" validate:"required"`
	Form       model.GiveForm  `json:"form"`
	CardFields CardFieldStatus `json:"card_fields"`
}

// PayResponse reports the terminal state of the attempt. RedirectURL and
// RedirectDelaySeconds are only set on success.
type PayResponse struct {
	Status               string            `json:"status"`
	RedirectURL          string            `json:"redirect_url,omitempty"`
	RedirectDelaySeconds int               `json:"redirect_delay_seconds,omitempty"`
	FieldErrors          map[string]string `json:"field_errors,omitempty"`
	Alert                *ProviderAlert    `json:"alert,omitempty"`
}

// ProviderAlert is the bilingual modal message shown when a provider cannot
// be used on this device. The form stays usable.
type ProviderAlert struct {
	Message   string `json:"message"`
	EnMessage string `json:"en_message"`
}

// Cardholder is the settlement payload contact block, field names fixed by
// the backend endpoint.
type Cardholder struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneCode   string `json:"phoneCode"`
	PhoneNumber string `json:"phone_number"`
	Receipt     bool   `json:"receipt"`
	PaymentType string `json:"paymentType"`
	Upload      bool   `json:"upload"`
	ReceiptName string `json:"receiptName"`
	NationalID  string `json:"nationalid"`
	Company     string `json:"company"`
	TaxID       string `json:"taxid"`
	Note        string `json:"note"`
}

// SettlementRequest is the JSON body posted to the payment API.
type SettlementRequest struct {
	Prime      string     `json:"prime"`
	Amount     int        `json:"amount"`
	Cardholder Cardholder `json:"cardholder"`
}

// SettlementResponse is the payment API reply. Status zero means the token
// was redeemed; anything else is a failure.
type SettlementResponse struct {
	Status     int    `json:"status"`
	Message    string `json:"msg,omitempty"`
	RecTradeID string `json:"rec_trade_id,omitempty"`
}
