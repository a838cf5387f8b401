package lib

import (
	"context"
	"log"
	"strconv"
)

// PaymentItemAmount is the currency/value pair used by the wallet request
// shapes. Values are decimal strings per the SDK contract.
type PaymentItemAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// PaymentItem labels one line of a wallet payment sheet.
type PaymentItem struct {
	Label  string            `json:"label"`
	Amount PaymentItemAmount `json:"amount"`
}

// ApplePayRequest is the payment sheet request for Apple Pay.
type ApplePayRequest struct {
	SupportedNetworks []string      `json:"supported_networks"`
	SupportedMethods  []string      `json:"supported_methods"`
	DisplayItems      []PaymentItem `json:"display_items"`
	Total             PaymentItem   `json:"total"`
}

// ApplePayProvider wraps the payment-request surface for Apple Pay. A
// configured merchant identifier is required; without one the adapter
// reports not-ready immediately and never calls the gateway.
type ApplePayProvider struct {
	client      *TapPayClient
	merchantID  string
	deviceClass string

	request ApplePayRequest
	// token acquisition is only bound after a positive availability
	// result, replacing the old fixed-delay button binding
	bound bool
}

func NewApplePayProvider(client *TapPayClient, merchantID, deviceClass string) *ApplePayProvider {
	return &ApplePayProvider{client: client, merchantID: merchantID, deviceClass: deviceClass}
}

func (p *ApplePayProvider) Name() string { return "apple-pay" }

func (p *ApplePayProvider) PrepareRequest(amount int) interface{} {
	value := strconv.Itoa(amount)
	p.request = ApplePayRequest{
		SupportedNetworks: []string{"AMEX", "JCB", "MASTERCARD", "VISA"},
		SupportedMethods:  []string{"apple_pay"},
		DisplayItems: []PaymentItem{
			{Label: "TapPay", Amount: PaymentItemAmount{Currency: "TWD", Value: value}},
		},
		Total: PaymentItem{Label: "付給 TapPay", Amount: PaymentItemAmount{Currency: "TWD", Value: value}},
	}
	return p.request
}

// CheckAvailability verifies configuration, device support and an active
// card, in that order. Any negative resets the binding.
func (p *ApplePayProvider) CheckAvailability(ctx context.Context) (Availability, error) {
	p.bound = false

	if p.merchantID == "" {
		return Availability{}, ErrApplePayNotConfigured
	}

	resp, err := p.client.CheckAvailability(ctx, AvailabilityRequest{
		PaymentType:        "apple_pay",
		MerchantIdentifier: p.merchantID,
		DeviceClass:        p.deviceClass,
		SupportedNetworks:  p.request.SupportedNetworks,
	})
	if err != nil {
		log.Println("apple pay availability error:", err)
		return Availability{}, ErrApplePayUnsupported
	}

	if !resp.BrowserSupportPaymentRequest {
		return Availability{}, ErrApplePayUnsupported
	}
	if !resp.CanMakePaymentWithActiveCard {
		return Availability{Supported: true}, ErrNoActiveCard
	}

	p.bound = true
	return Availability{Supported: true, Payable: true}, nil
}

func (p *ApplePayProvider) AcquireToken(ctx context.Context) (TokenResult, error) {
	if !p.bound {
		return TokenResult{}, ErrApplePayUnsupported
	}

	resp, err := p.client.GetPrime(ctx, "apple_pay", p.request)
	if err != nil {
		log.Println("apple pay getPrime error:", err)
		return TokenResult{}, ErrApplePayUnsupported
	}

	prime := resp.Prime
	if prime == "" {
		prime = resp.Card.Prime
	}
	if prime == "" {
		return TokenResult{}, ErrApplePayUnsupported
	}

	return TokenResult{Prime: prime, LastFour: resp.Card.LastFour}, nil
}
