package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCalculateTaxesRegularRate(t *testing.T) {
	srv := &Server{}

	router := newTestRouter()
	router.POST("/api/taxes/calculate", srv.CalculateTaxes)

	req := httptest.NewRequest(http.MethodPost, "/api/taxes/calculate", strings.NewReader(`{"sale_price":450000}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Data struct {
			RecordationTax float64 `json:"recordation_tax"`
			TransferTax    float64 `json:"transfer_tax"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Data.RecordationTax != 6525 {
		t.Fatalf("expected recordation tax 6525, got %v", body.Data.RecordationTax)
	}
	if body.Data.TransferTax != 6525 {
		t.Fatalf("expected transfer tax 6525, got %v", body.Data.TransferTax)
	}
}

func TestCalculateTaxesFirstTimeBuyer(t *testing.T) {
	srv := &Server{}

	router := newTestRouter()
	router.POST("/api/taxes/calculate", srv.CalculateTaxes)

	req := httptest.NewRequest(http.MethodPost, "/api/taxes/calculate", strings.NewReader(`{"sale_price":450000,"first_time_buyer":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Data struct {
			RecordationTax        float64 `json:"recordation_tax"`
			FirstTimeBuyerSavings float64 `json:"first_time_buyer_savings"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Data.RecordationTax != 3262.5 {
		t.Fatalf("expected reduced recordation tax 3262.5, got %v", body.Data.RecordationTax)
	}
	if body.Data.FirstTimeBuyerSavings != 3262.5 {
		t.Fatalf("expected savings 3262.5, got %v", body.Data.FirstTimeBuyerSavings)
	}
}

func TestCalculateTaxesRejectsBadPrice(t *testing.T) {
	srv := &Server{}

	router := newTestRouter()
	router.POST("/api/taxes/calculate", srv.CalculateTaxes)

	for _, payload := range []string{`{"sale_price":"abc"}`, `{"sale_price":-5}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/taxes/calculate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("payload %q: expected status 400, got %d", payload, resp.Code)
		}
	}
}
