package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"

	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

func TestLinkDocument(t *testing.T) {
	url := "https://drive.google.com/file/d/abc123/view"
	provider := documentdomain.ProviderGoogleDrive
	linked := documentdomain.Document{
		ID:               snowflake.ID(601),
		Status:           documentdomain.StatusLinked,
		ExternalURL:      &url,
		ExternalProvider: &provider,
	}
	srv := &Server{
		txsvc: &fakeTxService{tx: &txdomain.Transaction{ID: snowflake.ID(10)}, role: txdomain.RoleBuyer},
		documentsvc: &fakeDocumentService{
			docs: []documentdomain.Document{{ID: snowflake.ID(601)}},
			doc:  &linked,
		},
	}

	router := newTestRouter()
	router.POST("/api/transactions/:id/documents/:documentID/link", asUser(snowflake.ID(42)), srv.LinkDocument)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/10/documents/601/link", bytes.NewBufferString(`{"url":"`+url+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "google_drive") {
		t.Fatalf("expected inferred provider, got %s", resp.Body.String())
	}
}

func TestLinkDocumentOutsideVisibleSetReturns404(t *testing.T) {
	srv := &Server{
		txsvc: &fakeTxService{tx: &txdomain.Transaction{ID: snowflake.ID(10)}, role: txdomain.RoleSeller},
		documentsvc: &fakeDocumentService{
			docs: []documentdomain.Document{{ID: snowflake.ID(601)}},
		},
	}

	router := newTestRouter()
	router.POST("/api/transactions/:id/documents/:documentID/link", asUser(snowflake.ID(42)), srv.LinkDocument)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/10/documents/999/link", bytes.NewBufferString(`{"url":"https://dropbox.com/s/x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestLinkDocumentRejectsPlainHTTP(t *testing.T) {
	srv := &Server{
		txsvc: &fakeTxService{tx: &txdomain.Transaction{ID: snowflake.ID(10)}, role: txdomain.RoleBuyer},
		documentsvc: &fakeDocumentService{
			docs: []documentdomain.Document{{ID: snowflake.ID(601)}},
			err:  documentdomain.ErrInvalidURL,
		},
	}

	router := newTestRouter()
	router.POST("/api/transactions/:id/documents/:documentID/link", asUser(snowflake.ID(42)), srv.LinkDocument)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/10/documents/601/link", bytes.NewBufferString(`{"url":"http://insecure.example/doc"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_document_url") {
		t.Fatalf("expected invalid_document_url code, got %s", resp.Body.String())
	}
}

func TestUnlinkDocument(t *testing.T) {
	reset := documentdomain.Document{ID: snowflake.ID(601), Status: documentdomain.StatusMissing}
	srv := &Server{
		txsvc: &fakeTxService{tx: &txdomain.Transaction{ID: snowflake.ID(10)}, role: txdomain.RoleBuyer},
		documentsvc: &fakeDocumentService{
			docs: []documentdomain.Document{{ID: snowflake.ID(601)}},
			doc:  &reset,
		},
	}

	router := newTestRouter()
	router.DELETE("/api/transactions/:id/documents/:documentID/link", asUser(snowflake.ID(42)), srv.UnlinkDocument)

	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/10/documents/601/link", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "missing") {
		t.Fatalf("expected slot back to missing, got %s", resp.Body.String())
	}
}
