package lib

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dtohttp "confgive/dto/http"
	"confgive/dto/model"
)

func newSubmitter(url string) *SettlementSubmitter {
	return &SettlementSubmitter{
		APIURL:     url,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestBuildPayload(t *testing.T) {
	form := model.GiveForm{
		Amount:      1000,
		Email:       "donor@example.com",
		CountryCode: "+886",
		PhoneNumber: "912345678",
		PaymentType: model.PaymentTypeApplePay,
		Note:        "for the building fund",
	}

	payload := BuildPayload("prime-abc", form)

	if payload.Prime != "prime-abc" {
		t.Fatalf("prime = %q", payload.Prime)
	}
	if payload.Amount != 1000 {
		t.Fatalf("amount = %d", payload.Amount)
	}
	if payload.Cardholder.Name != "未填寫" {
		t.Fatalf("empty name should default, got %q", payload.Cardholder.Name)
	}
	if payload.Cardholder.PhoneCode != "+886" {
		t.Fatalf("phoneCode = %q", payload.Cardholder.PhoneCode)
	}
	if payload.Cardholder.PaymentType != "apple_pay" {
		t.Fatalf("paymentType = %q, want apple_pay", payload.Cardholder.PaymentType)
	}
	if !payload.Cardholder.Receipt {
		t.Fatal("receipt should always be requested")
	}
}

func TestSubmitSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dtohttp.SettlementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if req.Prime != "prime-ok" {
			t.Fatalf("prime = %q", req.Prime)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dtohttp.SettlementResponse{Status: 0, RecTradeID: "D2024xxxx"})
	}))
	defer server.Close()

	result := newSubmitter(server.URL).Submit(context.Background(), dtohttp.SettlementRequest{Prime: "prime-ok", Amount: 1000})
	if !result.Success {
		t.Fatalf("expected success, got fail reason %q", result.FailReason)
	}
}

func TestSubmitNonZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dtohttp.SettlementResponse{Status: 1, Message: "card declined"})
	}))
	defer server.Close()

	result := newSubmitter(server.URL).Submit(context.Background(), dtohttp.SettlementRequest{Prime: "prime-bad"})
	if result.Success {
		t.Fatal("status 1 must reconcile to fail even on HTTP 200")
	}
}

func TestSubmitHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dtohttp.SettlementResponse{Status: 0})
	}))
	defer server.Close()

	result := newSubmitter(server.URL).Submit(context.Background(), dtohttp.SettlementRequest{Prime: "prime-500"})
	if result.Success {
		t.Fatal("HTTP 500 must reconcile to fail regardless of the body")
	}
}

func TestSubmitNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>misconfigured proxy</html>"))
	}))
	defer server.Close()

	result := newSubmitter(server.URL).Submit(context.Background(), dtohttp.SettlementRequest{Prime: "prime-html"})
	if result.Success {
		t.Fatal("non-JSON content type must reconcile to fail")
	}
	if result.FailReason != "unexpected response format" {
		t.Fatalf("fail reason = %q", result.FailReason)
	}
}

func TestSubmitNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result := newSubmitter(server.URL).Submit(context.Background(), dtohttp.SettlementRequest{Prime: "prime-net"})
	if result.Success {
		t.Fatal("network error must reconcile to fail")
	}
}
