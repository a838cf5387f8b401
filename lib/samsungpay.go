package lib

import (
	"context"
	"log"
	"strconv"
)

// SamsungPayRequest is the payment request for Samsung Pay.
type SamsungPayRequest struct {
	SupportedNetworks []string    `json:"supported_networks"`
	Total             PaymentItem `json:"total"`
}

// SamsungPayProvider wraps the Samsung Pay surface. Samsung Pay needs no
// merchant identifier, only a supported handset.
type SamsungPayProvider struct {
	client      *TapPayClient
	deviceClass string

	request SamsungPayRequest
}

func NewSamsungPayProvider(client *TapPayClient, deviceClass string) *SamsungPayProvider {
	return &SamsungPayProvider{client: client, deviceClass: deviceClass}
}

func (p *SamsungPayProvider) Name() string { return "samsung-pay" }

func (p *SamsungPayProvider) PrepareRequest(amount int) interface{} {
	p.request = SamsungPayRequest{
		SupportedNetworks: []string{"MASTERCARD", "VISA"},
		Total: PaymentItem{
			Label:  "The Hope",
			Amount: PaymentItemAmount{Currency: "TWD", Value: strconv.Itoa(amount)},
		},
	}
	return p.request
}

func (p *SamsungPayProvider) CheckAvailability(ctx context.Context) (Availability, error) {
	resp, err := p.client.CheckAvailability(ctx, AvailabilityRequest{
		PaymentType:       "samsung_pay",
		DeviceClass:       p.deviceClass,
		SupportedNetworks: p.request.SupportedNetworks,
	})
	if err != nil {
		log.Println("samsung pay availability error:", err)
		return Availability{}, ErrSamsungPayUnsupported
	}

	if !resp.BrowserSupportPaymentRequest {
		return Availability{}, ErrSamsungPayUnsupported
	}
	if !resp.CanMakePaymentWithActiveCard {
		return Availability{Supported: true}, ErrNoActiveCard
	}

	return Availability{Supported: true, Payable: true}, nil
}

func (p *SamsungPayProvider) AcquireToken(ctx context.Context) (TokenResult, error) {
	resp, err := p.client.GetPrime(ctx, "samsung_pay", p.request)
	if err != nil {
		log.Println("samsung pay getPrime error:", err)
		return TokenResult{}, ErrSamsungPayUnsupported
	}

	if resp.Status != 0 {
		return TokenResult{}, ErrSamsungPayUnsupported
	}

	prime := resp.Prime
	if prime == "" {
		prime = resp.Card.Prime
	}
	if prime == "" {
		return TokenResult{}, ErrSamsungPayUnsupported
	}

	return TokenResult{Prime: prime, LastFour: resp.Card.LastFour}, nil
}
