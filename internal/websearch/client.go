// Package websearch wraps the Tavily search API for jewelry-related lookups.
// Search is gated: only jewelry-topic queries go out, guarded queries are
// refused, and results are restricted to a fixed domain allow-list.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jewelryboxai/assistant/pkg/logging"
)

const (
	defaultEndpoint = "https://api.tavily.com/search"
	defaultTimeout  = 10 * time.Second
)

// allowedDomains is the jewelry-focused allow-list search is restricted to.
var allowedDomains = []string{
	"thediamondfamily.com",
	"jewelryboxai.com",
	"gia.edu",
	"americangemsociety.org",
	"jewelersofamerica.org",
	"diamonds.pro",
	"pricescope.com",
	"bluenile.com",
	"jamesallen.com",
	"brilliantearth.com",
}

var disallowedKeywords = []string{
	"hack", "porn", "malware", "torrent", "crack",
	"pirate", "illegal", "drugs", "violence", "weapon",
}

// jewelryKeywords gate which queries are worth a web search at all.
var jewelryKeywords = []string{
	"diamond", "ring", "engagement", "wedding", "jewelry", "gemstone",
	"gold", "platinum", "silver", "earrings", "necklace", "bracelet",
	"watch", "appraisal", "certification", "gia", "carat", "clarity",
	"cut", "color", "setting", "band", "pendant", "gem",
}

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Client calls the Tavily search API. A client with an empty API key is
// valid but always reports search as unavailable.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient creates a Tavily search client.
func NewClient(apiKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if apiKey == "" {
		logger.Warn("websearch: TAVILY_API_KEY missing, web search disabled")
	}
	return &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Enabled reports whether the client holds an API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// ShouldSearch reports whether the query is jewelry-related enough to send
// to the search API.
func ShouldSearch(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range disallowedKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range jewelryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

type searchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeDomains []string `json:"include_domains"`
	MaxResults     int      `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs a gated Tavily query. Failures degrade to an error the caller
// can treat as "no results"; nothing here blocks the chat reply.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if !c.Enabled() {
		return nil, errors.New("websearch: search disabled, no API key")
	}
	if !ShouldSearch(query) {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = 3
	}

	body, err := json.Marshal(searchRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "basic",
		IncludeDomains: allowedDomains,
		MaxResults:     maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("websearch: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("websearch: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("websearch: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("websearch: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return nil, fmt.Errorf("websearch: status %d: %s", resp.StatusCode, msg)
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("websearch: unmarshal response: %w", err)
	}
	return parsed.Results, nil
}
