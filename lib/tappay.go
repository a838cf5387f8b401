package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"go.elastic.co/apm"
	"go.elastic.co/apm/module/apmhttp"

	"confgive/config"
)

// TapPayClient talks to the payment SDK gateway: availability checks per
// wallet and prime acquisition per provider. One client is shared by all
// adapters.
type TapPayClient struct {
	BaseURL    string
	AppID      int
	AppKey     string
	Env        string
	HTTPClient *http.Client
}

// NewTapPayClient builds the shared gateway client from settings.
func NewTapPayClient(settings config.PaymentSettings) *TapPayClient {
	return &TapPayClient{
		BaseURL: settings.TapPayBaseURL,
		AppID:   settings.TapPayAppID,
		AppKey:  settings.TapPayAppKey,
		Env:     settings.TapPayEnv,
		HTTPClient: apmhttp.WrapClient(&http.Client{
			Timeout: 30 * time.Second,
		}),
	}
}

// AvailabilityRequest asks the gateway whether a wallet can be presented on
// the probed device.
type AvailabilityRequest struct {
	PaymentType        string   `json:"payment_type"`
	MerchantIdentifier string   `json:"merchant_identifier,omitempty"`
	DeviceClass        string   `json:"device_class"`
	SupportedNetworks  []string `json:"supported_networks,omitempty"`
}

// AvailabilityResponse mirrors the SDK's two availability flags.
type AvailabilityResponse struct {
	Status                       int  `json:"status"`
	BrowserSupportPaymentRequest bool `json:"browser_support_payment_request"`
	CanMakePaymentWithActiveCard bool `json:"can_make_payment_with_active_card"`
}

// PrimeResponse covers the response shapes the SDK uses: credit card and
// samsung report {status, card:{prime,lastfour}} or {status, prime,
// card:{lastfour}}, google pay reports the prime alone.
type PrimeResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg,omitempty"`
	Prime  string `json:"prime,omitempty"`
	Card   struct {
		Prime    string `json:"prime,omitempty"`
		LastFour string `json:"lastfour,omitempty"`
	} `json:"card"`
}

// CheckAvailability posts an availability request for one wallet.
func (t *TapPayClient) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	var resp AvailabilityResponse
	if err := t.post(ctx, "/tpc/payment-request/availability", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPrime asks the gateway for a one-time token for the prepared request.
func (t *TapPayClient) GetPrime(ctx context.Context, paymentType string, request interface{}) (*PrimeResponse, error) {
	body := map[string]interface{}{
		"payment_type":    paymentType,
		"payment_request": request,
	}

	var resp PrimeResponse
	if err := t.post(ctx, "/tpc/payment-request/prime", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (t *TapPayClient) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	span, ctx := apm.StartSpan(ctx, "TapPay"+path, "external")
	defer span.End()

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling request body: %v", err)
	}

	url := fmt.Sprintf("%s%s", strings.TrimRight(t.BaseURL, "/"), path)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", t.AppKey)

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	log.Printf("tappay %s took %s status=%d", path, time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tappay gateway responded with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("error decoding response: %v", err)
	}

	return nil
}
