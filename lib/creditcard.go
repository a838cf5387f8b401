package lib

import (
	"context"
	"errors"
	"log"

	"confgive/helper"
)

// ErrCardTokenFailed means the card SDK rejected the prime request after the
// fields already passed validation. This one is terminal: the session moves
// to fail.
var ErrCardTokenFailed = errors.New("card token acquisition failed")

// FieldStatusError aborts a credit card submission before any network call,
// carrying the per-field messages to render inline.
type FieldStatusError struct {
	Messages map[string]string
}

func (e *FieldStatusError) Error() string {
	return "credit card fields are not valid"
}

// CreditCardRequest is the prepared request for a hosted-fields charge.
type CreditCardRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// CreditCardProvider wraps the hosted card fields surface of the SDK. Field
// statuses are pushed in from the client on every update and re-checked
// synchronously at submit time.
type CreditCardProvider struct {
	client  *TapPayClient
	request CreditCardRequest

	number int
	expiry int
	ccv    int
}

func NewCreditCardProvider(client *TapPayClient) *CreditCardProvider {
	return &CreditCardProvider{client: client}
}

func (p *CreditCardProvider) Name() string { return "credit-card" }

// UpdateFieldStatus records the latest hosted-field status codes.
func (p *CreditCardProvider) UpdateFieldStatus(number, expiry, ccv int) {
	p.number = number
	p.expiry = expiry
	p.ccv = ccv
}

// FieldMessages returns the current inline messages for the three fields.
func (p *CreditCardProvider) FieldMessages() map[string]string {
	return helper.CardFieldMessages(p.number, p.expiry, p.ccv)
}

func (p *CreditCardProvider) PrepareRequest(amount int) interface{} {
	p.request = CreditCardRequest{Amount: amount, Currency: "TWD"}
	return p.request
}

// CheckAvailability always reports payable: the card form itself is the
// availability surface, there is no separate ready gesture.
func (p *CreditCardProvider) CheckAvailability(ctx context.Context) (Availability, error) {
	return Availability{Supported: true, Payable: true}, nil
}

// AcquireToken re-checks the field statuses and only then asks for a prime.
// Invalid fields abort without a network call.
func (p *CreditCardProvider) AcquireToken(ctx context.Context) (TokenResult, error) {
	if !helper.CardFieldsValid(p.number, p.expiry, p.ccv) {
		return TokenResult{}, &FieldStatusError{Messages: p.FieldMessages()}
	}

	resp, err := p.client.GetPrime(ctx, "credit_card", p.request)
	if err != nil {
		log.Println("credit card getPrime error:", err)
		return TokenResult{}, ErrCardTokenFailed
	}

	if resp.Status != 0 || resp.Card.Prime == "" {
		log.Printf("credit card getPrime rejected: status=%d msg=%s", resp.Status, resp.Msg)
		return TokenResult{}, ErrCardTokenFailed
	}

	return TokenResult{Prime: resp.Card.Prime, LastFour: resp.Card.LastFour}, nil
}
