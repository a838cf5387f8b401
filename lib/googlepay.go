package lib

import (
	"context"
	"log"
	"strconv"
)

// GooglePayRequest is the payment request for Google Pay.
type GooglePayRequest struct {
	AllowedNetworks []string `json:"allowed_networks"`
	Price           string   `json:"price"`
	Currency        string   `json:"currency"`
}

// GooglePayProvider wraps the Google Pay surface. Requires a configured
// merchant identifier; a negative availability result resets readiness the
// same way the Apple Pay path does.
type GooglePayProvider struct {
	client      *TapPayClient
	merchantID  string
	deviceClass string

	request GooglePayRequest
}

func NewGooglePayProvider(client *TapPayClient, merchantID, deviceClass string) *GooglePayProvider {
	return &GooglePayProvider{client: client, merchantID: merchantID, deviceClass: deviceClass}
}

func (p *GooglePayProvider) Name() string { return "google-pay" }

func (p *GooglePayProvider) PrepareRequest(amount int) interface{} {
	p.request = GooglePayRequest{
		AllowedNetworks: []string{"AMEX", "JCB", "MASTERCARD", "VISA"},
		Price:           strconv.Itoa(amount),
		Currency:        "TWD",
	}
	return p.request
}

func (p *GooglePayProvider) CheckAvailability(ctx context.Context) (Availability, error) {
	if p.merchantID == "" {
		return Availability{}, ErrGooglePayUnsupported
	}

	resp, err := p.client.CheckAvailability(ctx, AvailabilityRequest{
		PaymentType:        "google_pay",
		MerchantIdentifier: p.merchantID,
		DeviceClass:        p.deviceClass,
		SupportedNetworks:  p.request.AllowedNetworks,
	})
	if err != nil {
		log.Println("google pay availability error:", err)
		return Availability{}, ErrGooglePayUnsupported
	}

	if !resp.BrowserSupportPaymentRequest {
		return Availability{}, ErrGooglePayUnsupported
	}
	if !resp.CanMakePaymentWithActiveCard {
		return Availability{Supported: true}, ErrNoActiveCard
	}

	return Availability{Supported: true, Payable: true}, nil
}

// AcquireToken returns the prime alone; Google Pay does not report a masked
// card suffix.
func (p *GooglePayProvider) AcquireToken(ctx context.Context) (TokenResult, error) {
	resp, err := p.client.GetPrime(ctx, "google_pay", p.request)
	if err != nil {
		log.Println("google pay getPrime error:", err)
		return TokenResult{}, ErrGooglePayUnsupported
	}

	if resp.Status != 0 || resp.Prime == "" {
		return TokenResult{}, ErrGooglePayUnsupported
	}

	return TokenResult{Prime: resp.Prime}, nil
}
