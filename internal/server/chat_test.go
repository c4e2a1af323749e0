package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/internal/assistant"
	"github.com/districtclose/districtclose/internal/config"
	"github.com/districtclose/districtclose/internal/ratelimit"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Generate(ctx context.Context, systemPrompt string, messages []assistant.Message) (string, error) {
	_ = ctx
	_ = messages
	g.lastPrompt = systemPrompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestChatReturnsReply(t *testing.T) {
	gen := &stubGenerator{reply: "TOPA gives tenants a right of first refusal."}
	srv := &Server{assistantsvc: assistant.NewService(gen)}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"messages":[{"role":"user","content":"What is TOPA?"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "right of first refusal") {
		t.Fatalf("expected reply in body, got %s", resp.Body.String())
	}
}

func TestChatIncludesTransactionContext(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	srv := &Server{
		assistantsvc: assistant.NewService(gen),
		txsvc: &fakeTxService{
			tx: &txdomain.Transaction{
				ID:              snowflake.ID(10),
				PropertyAddress: "1600 Pennsylvania Ave NW",
				SalePrice:       450000,
				IsTenanted:      true,
			},
			role: txdomain.RoleSeller,
		},
	}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}],"transaction_id":"10"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(gen.lastPrompt, "1600 Pennsylvania Ave NW") {
		t.Fatal("expected property address in system prompt")
	}
	if !strings.Contains(gen.lastPrompt, "SELLER") {
		t.Fatal("expected uppercased role in system prompt")
	}
}

func TestChatNotConfiguredReturns503(t *testing.T) {
	srv := &Server{assistantsvc: assistant.NewService(nil)}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestChatEmptyMessageReturns400(t *testing.T) {
	srv := &Server{assistantsvc: assistant.NewService(&stubGenerator{reply: "ok"})}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"messages":[{"role":"user","content":"   "}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestChatRateLimitReturns429WhenDrained(t *testing.T) {
	mr := miniredis.RunT(t)

	limiter := ratelimit.NewChatLimiter(config.Config{
		RateLimit: config.RateLimitConfig{
			Enabled:   true,
			RedisAddr: mr.Addr(),
			ChatRate:  0.1,
			ChatBurst: 1,
		},
	})

	srv := &Server{
		assistantsvc: assistant.NewService(&stubGenerator{reply: "ok"}),
		chatLimiter:  limiter,
	}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.ChatRateLimit(), srv.Chat)

	body := `{"messages":[{"role":"user","content":"hi"}]}`

	first := httptest.NewRecorder()
	reqOne := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	reqOne.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(first, reqOne)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	reqTwo := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	reqTwo.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(second, reqTwo)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestChatRateLimitSkippedWhenDisabled(t *testing.T) {
	srv := &Server{
		assistantsvc: assistant.NewService(&stubGenerator{reply: "ok"}),
		chatLimiter:  ratelimit.NewChatLimiter(config.Config{}),
	}

	router := newTestRouter()
	router.POST("/api/chat", asUser(snowflake.ID(42)), srv.ChatRateLimit(), srv.Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
