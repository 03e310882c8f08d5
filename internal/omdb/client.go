package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/juhi0109/movie-recommender/internal/models"
)

// TransportError reports that a catalog request could not be completed:
// a network failure, a timeout, or a non-success HTTP status. It is not
// retried by the client.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("omdb %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client is the OMDb API client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new OMDb API client with a fixed per-call timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// searchResponse is the OMDb search envelope. OMDb signals "nothing
// found" with Response=False and no Search field rather than an error
// status.
type searchResponse struct {
	Search       []models.SearchResult `json:"Search"`
	TotalResults string                `json:"totalResults"`
	Response     string                `json:"Response"`
	Error        string                `json:"Error"`
}

// Search runs a movie keyword search. A response without results yields
// an empty slice, not an error.
func (c *Client) Search(ctx context.Context, keyword string) ([]models.SearchResult, error) {
	reqURL := fmt.Sprintf(
		"%s/?apikey=%s&s=%s&type=movie",
		c.baseURL, c.apiKey, url.QueryEscape(keyword),
	)

	slog.Debug("fetching OMDb search", "keyword", keyword)
	resp, err := c.doGet(ctx, "search", reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return result.Search, nil
}

// GetDetail fetches the full record for one movie by its catalog ID.
func (c *Client) GetDetail(ctx context.Context, imdbID string) (*models.RawDetail, error) {
	reqURL := fmt.Sprintf(
		"%s/?apikey=%s&i=%s",
		c.baseURL, c.apiKey, url.QueryEscape(imdbID),
	)

	slog.Debug("fetching OMDb detail", "imdb_id", imdbID)
	resp, err := c.doGet(ctx, "detail", reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.RawDetail
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode detail response: %w", err)
	}
	// Some records omit the ID field; keep the one we queried with.
	if result.ImdbID == "" {
		result.ImdbID = imdbID
	}
	return &result, nil
}

func (c *Client) doGet(ctx context.Context, op, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &TransportError{
			Op:  op,
			Err: fmt.Errorf("OMDb API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}
	return resp, nil
}
