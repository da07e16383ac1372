package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// ErrNullBody is returned when a collection endpoint answers with a JSON
// null instead of an array.
var ErrNullBody = errors.New("response body is null")

// Client provides access to the menu REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API rooted at baseURL. A nil
// httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Categories fetches the full category collection.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.getJSON(ctx, c.baseURL+"/categories", &out); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("fetching categories: decoding response: %w", ErrNullBody)
	}
	return out, nil
}

// Items fetches the items belonging to one category.
func (c *Client) Items(ctx context.Context, categoryID string) ([]Item, error) {
	endpoint := fmt.Sprintf("%s/smoothies?category=%s", c.baseURL, url.QueryEscape(categoryID))

	var out []Item
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("fetching items for category %s: %w", categoryID, err)
	}
	if out == nil {
		return nil, fmt.Errorf("fetching items for category %s: decoding response: %w", categoryID, ErrNullBody)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
