package lib

import (
	"context"

	dtohttp "confgive/dto/http"
)

// Availability is the two-flag result of a wallet availability check:
// Supported means the device/browser can run the wallet at all, Payable
// means an active card is present.
type Availability struct {
	Supported bool
	Payable   bool
}

// TokenResult is a one-time payment token plus the masked card suffix. The
// prime is handed straight to the settlement submitter and never stored.
type TokenResult struct {
	Prime    string
	LastFour string
}

// Provider is the uniform adapter contract. PrepareRequest must be called
// before CheckAvailability or AcquireToken.
type Provider interface {
	Name() string
	PrepareRequest(amount int) interface{}
	CheckAvailability(ctx context.Context) (Availability, error)
	AcquireToken(ctx context.Context) (TokenResult, error)
}

// AlertError carries the bilingual message shown to the donor when a
// provider cannot be used. The session stays on the form.
type AlertError struct {
	Message   string
	EnMessage string
}

func (e *AlertError) Error() string {
	return e.EnMessage
}

// Alert converts the error to its response shape.
func (e *AlertError) Alert() *dtohttp.ProviderAlert {
	return &dtohttp.ProviderAlert{Message: e.Message, EnMessage: e.EnMessage}
}

// Provider alert messages, verbatim from the donor-facing dialogs.
var (
	ErrApplePayNotConfigured = &AlertError{
		Message:   "Apple Pay 尚未設定，請改用其他付款方式",
		EnMessage: "Apple Pay is not configured for this environment. Please choose another payment method.",
	}
	ErrApplePayUnsupported = &AlertError{
		Message:   "此裝置不支援 Apple Pay",
		EnMessage: "This device does not support Apple Pay",
	}
	ErrNoActiveCard = &AlertError{
		Message:   "此裝置沒有支援的卡片可以付款",
		EnMessage: "This device does not have a supported card for payment",
	}
	ErrGooglePayUnsupported = &AlertError{
		Message:   "此裝置不支援 Google Pay",
		EnMessage: "This device does not support Google Pay",
	}
	ErrSamsungPayUnsupported = &AlertError{
		Message:   "此裝置不支援 Samsung Pay",
		EnMessage: "This device does not support Samsung Pay",
	}
)
