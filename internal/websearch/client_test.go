package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestShouldSearch(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"what's the difference between lab and natural diamonds", true},
		{"gold price today", true},
		{"GIA certification explained", true},
		{"what's the weather like", false},
		{"", false},
		{"how to hack a jewelry store", false},
	}
	for _, tt := range tests {
		if got := ShouldSearch(tt.query); got != tt.want {
			t.Errorf("ShouldSearch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestClient_Enabled(t *testing.T) {
	if NewClient("", nil).Enabled() {
		t.Error("client without key must report disabled")
	}
	if !NewClient("tvly-key", nil).Enabled() {
		t.Error("client with key must report enabled")
	}
}

func TestSearch_DisabledClientErrors(t *testing.T) {
	c := NewClient("", nil)
	if _, err := c.Search(context.Background(), "diamond rings", 3); err == nil {
		t.Error("expected error from disabled client")
	}
}

func TestSearch_NonJewelryQuerySkipsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := NewClient("tvly-key", nil)
	c.endpoint = srv.URL

	results, err := c.Search(context.Background(), "weather tomorrow", 3)
	if err != nil || results != nil {
		t.Errorf("off-topic query should yield nothing: %v, %v", results, err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("off-topic query must not hit the API, got %d hits", hits)
	}
}

func TestSearch_RequestAndResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.APIKey != "tvly-key" {
			t.Errorf("api_key = %q", req.APIKey)
		}
		if req.SearchDepth != "basic" {
			t.Errorf("search_depth = %q", req.SearchDepth)
		}
		if len(req.IncludeDomains) == 0 {
			t.Error("include_domains must restrict the search")
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []Result{
			{Title: "4 Cs", URL: "https://gia.edu/4cs", Content: "cut, color, clarity, carat"},
		}})
	}))
	defer srv.Close()

	c := NewClient("tvly-key", nil)
	c.endpoint = srv.URL

	results, err := c.Search(context.Background(), "diamond clarity explained", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "4 Cs" {
		t.Errorf("results = %+v", results)
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key", nil)
	c.endpoint = srv.URL

	if _, err := c.Search(context.Background(), "diamond rings", 3); err == nil {
		t.Error("expected error on non-200 response")
	}
}
