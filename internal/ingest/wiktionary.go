package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://en.wiktionary.org/w/api.php"

// Client fetches rendered page HTML from the Wiktionary action API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientParams configures a Client. An empty BaseURL targets the English
// Wiktionary.
type ClientParams struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a Wiktionary API client.
func NewClient(params ClientParams) *Client {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type parseResponse struct {
	Parse struct {
		Text struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
	Error struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchPageHTML returns the rendered HTML of the page with the given title.
func (c *Client) FetchPageHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("format", "json")
	params.Set("prop", "text")
	params.Set("contentmodel", "wikitext")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching page %q", resp.StatusCode, title)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page %q: %w", title, err)
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode page %q: %w", title, err)
	}
	if parsed.Error.Code != "" {
		return "", fmt.Errorf("wiktionary error for page %q: %s", title, parsed.Error.Info)
	}
	if parsed.Parse.Text.Content == "" {
		return "", fmt.Errorf("page %q has no content", title)
	}

	return parsed.Parse.Text.Content, nil
}
