package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New("http://localhost:8080/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base URL: %q", c.baseURL)
	}
}

func TestChat_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Message != "a 555 timer" || req.Limit != 5 {
			t.Errorf("unexpected request body: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Mode:   "llm",
			Answer: "Found 1 matching part(s).",
			Products: []Product{
				{PartNumber: "NE555P", Score: 90, StockStatus: "High Stock"},
			},
		})
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp, err := c.Chat(context.Background(), "a 555 timer", 5)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.Mode != "llm" || len(resp.Products) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Products[0].PartNumber != "NE555P" {
		t.Fatalf("unexpected product: %+v", resp.Products[0])
	}
}

func TestChat_SendsBearerToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer ts.Close()

	c, err := New(ts.URL, WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Chat(context.Background(), "caps", 0); err != nil {
		t.Fatalf("Chat: %v", err)
	}
}

func TestChat_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "validation_failed", "message": "text is required"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Chat(context.Background(), "", 0)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != "validation_failed" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatal("400 must not match ErrUnavailable")
	}
}

func TestChat_UnavailableSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code": "catalog_unavailable", "message": "catalog store unavailable"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Chat(context.Background(), "caps", 0)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable match, got %v", err)
	}
}

func TestChat_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Chat(context.Background(), "caps", 0)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != "unknown" || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestSearch_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Source: "direct",
			Query:  "NE555P",
		})
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp, err := c.Search(context.Background(), "NE555P", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if resp.Source != "direct" || resp.Query != "NE555P" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHealth_DegradedReturnsReportAndError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "degraded",
			Checks: map[string]string{"database": "error"},
		})
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := c.Health(context.Background())
	if report == nil || report.Status != "degraded" {
		t.Fatalf("expected degraded report, got %+v", report)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHealth_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "ok",
			Checks: map[string]string{"database": "ok"},
		})
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if report.Status != "ok" {
		t.Fatalf("unexpected status: %q", report.Status)
	}
}
