package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradepipe/config"
	"tradepipe/internal/market/alert"
	"tradepipe/internal/market/ingest"
	"tradepipe/internal/market/window"

	"go.uber.org/zap"
)

func newTestServer() *Server {
	w := window.New(100, 1000)
	ev := alert.NewEvaluator(map[string]alert.Thresholds{
		"NVDA": {High: 500, Low: 400},
	}, 2.0)
	ing := ingest.New(w, ev, nil, []string{"NVDA"}, zap.NewNop())
	return New(config.ServerConfig{Addr: ":0"}, ing, nil, zap.NewNop())
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// go test -v --run TestWebhookAcceptsBatch
func TestWebhookAcceptsBatch(t *testing.T) {
	s := newTestServer()

	body := `{"type":"trade","data":[
		{"s":"NVDA","p":450.25,"v":1000,"t":1634567890000},
		{"s":"AAPL","p":180,"v":50,"t":1634567890000}
	]}`

	rec := doRequest(s, http.MethodPost, "/api/webhook", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status    string          `json:"status"`
		Processed int             `json:"processed_trades"`
		Trades    []window.Trade  `json:"trades"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Processed != 1 {
		t.Errorf("processed = %d, want 1 (AAPL is untracked)", resp.Processed)
	}
	if len(resp.Trades) != 1 || resp.Trades[0].Symbol != "NVDA" {
		t.Errorf("unexpected trades: %+v", resp.Trades)
	}
}

// go test -v --run TestWebhookPartialFailure
func TestWebhookPartialFailure(t *testing.T) {
	s := newTestServer()

	body := `{"type":"trade","data":[
		{"s":"NVDA","p":450,"v":100,"t":1634567890000},
		{"s":"NVDA","p":451,"v":-5,"t":1634567890000},
		{"s":"NVDA","p":452,"v":100,"t":1634567890000}
	]}`

	rec := doRequest(s, http.MethodPost, "/api/webhook", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Processed int `json:"processed_trades"`
		Skipped   []struct {
			Index  int    `json:"index"`
			Reason string `json:"reason"`
		} `json:"skipped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Processed != 2 {
		t.Errorf("processed = %d, want 2", resp.Processed)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0].Index != 1 {
		t.Errorf("unexpected skipped: %+v", resp.Skipped)
	}
}

// go test -v --run TestWebhookRejectsBadBody
func TestWebhookRejectsBadBody(t *testing.T) {
	s := newTestServer()

	rec := doRequest(s, http.MethodPost, "/api/webhook", "not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// go test -v --run TestStatsEndpoint
func TestStatsEndpoint(t *testing.T) {
	s := newTestServer()

	// Empty window first
	rec := doRequest(s, http.MethodGet, "/api/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no trades data available") {
		t.Errorf("expected empty-window message, got %s", rec.Body.String())
	}

	doRequest(s, http.MethodPost, "/api/webhook",
		`{"type":"trade","data":[{"s":"NVDA","p":450,"v":1000,"t":1634567890000}]}`)

	rec = doRequest(s, http.MethodGet, "/api/stats", "")
	var resp struct {
		TotalTrades int     `json:"total_trades"`
		TotalVolume int64   `json:"total_volume"`
		LatestPrice float64 `json:"latest_price"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.TotalTrades != 1 || resp.TotalVolume != 1000 || resp.LatestPrice != 450 {
		t.Errorf("unexpected stats: %+v", resp)
	}
}

// go test -v --run TestRecentTradesEndpoint
func TestRecentTradesEndpoint(t *testing.T) {
	s := newTestServer()

	doRequest(s, http.MethodPost, "/api/webhook",
		`{"type":"trade","data":[
			{"s":"NVDA","p":450,"v":1,"t":1634567890000},
			{"s":"NVDA","p":451,"v":1,"t":1634567891000},
			{"s":"NVDA","p":452,"v":1,"t":1634567892000}
		]}`)

	rec := doRequest(s, http.MethodGet, "/api/recent_trades?limit=2", "")
	var resp struct {
		Trades         []window.Trade `json:"trades"`
		Count          int            `json:"count"`
		TotalAvailable int            `json:"total_available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 2 || resp.TotalAvailable != 3 {
		t.Errorf("count = %d, total = %d, want 2 and 3", resp.Count, resp.TotalAvailable)
	}
	if resp.Trades[0].Price != 451 || resp.Trades[1].Price != 452 {
		t.Errorf("expected chronological order, got %+v", resp.Trades)
	}
}

// go test -v --run TestHealthEndpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"healthy"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}
