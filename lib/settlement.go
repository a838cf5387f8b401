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
	dtohttp "confgive/dto/http"
	"confgive/dto/model"
	"confgive/helper"
)

// RedirectDelaySeconds is how long the success view waits before navigating
// to the results page.
const RedirectDelaySeconds = 3

// SettlementResult is the reconciled outcome of one settlement call.
type SettlementResult struct {
	Success    bool
	FailReason string
}

// SettlementSubmitter posts an acquired prime to the backend payment API
// and reconciles the response. No automatic retry: a failure is terminal
// for the session.
type SettlementSubmitter struct {
	APIURL     string
	HTTPClient *http.Client
}

func NewSettlementSubmitter(settings config.PaymentSettings) *SettlementSubmitter {
	return &SettlementSubmitter{
		APIURL: settings.PaymentAPIURL,
		HTTPClient: apmhttp.WrapClient(&http.Client{
			Timeout: 30 * time.Second,
		}),
	}
}

// BuildPayload assembles the settlement request from the form snapshot and
// an acquired token. The prime is carried through here once and discarded.
func BuildPayload(prime string, form model.GiveForm) dtohttp.SettlementRequest {
	name := form.Name
	if strings.TrimSpace(name) == "" {
		name = "未填寫"
	}

	return dtohttp.SettlementRequest{
		Prime:  prime,
		Amount: form.Amount,
		Cardholder: dtohttp.Cardholder{
			Name:        name,
			Email:       form.Email,
			PhoneCode:   helper.ComposePhoneCode(form.CountryCode),
			PhoneNumber: form.PhoneNumber,
			Receipt:     true,
			PaymentType: helper.NormalizePaymentType(form.PaymentType),
			Upload:      form.Upload,
			ReceiptName: form.ReceiptName,
			NationalID:  form.NationalID,
			Company:     form.Company,
			TaxID:       form.TaxID,
			Note:        form.Note,
		},
	}
}

// Submit posts the payload. Success requires a 2xx status AND a JSON body
// with status zero; every other combination, including transport errors,
// reconciles to fail.
func (s *SettlementSubmitter) Submit(ctx context.Context, payload dtohttp.SettlementRequest) SettlementResult {
	span, ctx := apm.StartSpan(ctx, "SettlementSubmit", "external")
	defer span.End()

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		log.Println("settlement marshal error:", err)
		return SettlementResult{FailReason: "payload marshal error"}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.APIURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Println("settlement request error:", err)
		return SettlementResult{FailReason: "request build error"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		log.Println("settlement network error:", err)
		return SettlementResult{FailReason: "network error"}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("settlement read error:", err)
		return SettlementResult{FailReason: "response read error"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("settlement responded with status %d", resp.StatusCode)
		return SettlementResult{FailReason: fmt.Sprintf("payment API responded with status %d", resp.StatusCode)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		preview := string(respBody)
		if len(preview) > 100 {
			preview = preview[:100]
		}
		log.Println("settlement unexpected response format:", preview)
		return SettlementResult{FailReason: "unexpected response format"}
	}

	var settlementResp dtohttp.SettlementResponse
	if err := json.Unmarshal(respBody, &settlementResp); err != nil {
		log.Println("settlement invalid JSON:", err)
		return SettlementResult{FailReason: "payment API returned invalid JSON"}
	}

	if settlementResp.Status != 0 {
		log.Printf("settlement rejected: status=%d msg=%s", settlementResp.Status, settlementResp.Message)
		return SettlementResult{FailReason: fmt.Sprintf("settlement status %d", settlementResp.Status)}
	}

	return SettlementResult{Success: true}
}
