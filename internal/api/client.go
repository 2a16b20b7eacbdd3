// Package api is a typed client for the scraper/RAG backend HTTP API.
// All interesting work (scraping, chunking, retrieval, generation)
// happens server-side; this package only speaks the JSON contract and
// sorts failures into transport errors and application errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is where the backend listens when run locally.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL. A zero timeout leaves
// request lifetime entirely to the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base URL this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the success/error wrapper the backend puts around most
// 2xx responses.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (e envelope) appErr(fallback string) error {
	if e.Error != "" {
		return &APIError{Message: e.Error}
	}
	return &APIError{Message: fallback}
}

// detailBody is the FastAPI error shape attached to non-2xx responses.
type detailBody struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(respBody))
		var d detailBody
		if json.Unmarshal(respBody, &d) == nil && d.Detail != "" {
			detail = d.Detail
		}
		return &StatusError{Code: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		// A 2xx body that does not match the contract is treated as an
		// application error rather than a decode panic downstream.
		return &APIError{Message: fmt.Sprintf("unexpected response from backend: %v", err)}
	}
	return nil
}

// Health fetches the backend health report.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// IndexedSources lists every source currently in the RAG index.
func (c *Client) IndexedSources(ctx context.Context) ([]Source, error) {
	var resp struct {
		envelope
		Sources []Source `json:"sources"`
		Total   int      `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/indexed-sources", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("listing sources failed")
	}
	return resp.Sources, nil
}

// ScrapeAndIndex scrapes the URL server-side and adds it to the index.
func (c *Client) ScrapeAndIndex(ctx context.Context, pageURL string) (*IndexResult, error) {
	var resp struct {
		envelope
		Data *IndexResult `json:"data"`
	}
	req := map[string]string{"url": pageURL}
	if err := c.do(ctx, http.MethodPost, "/scrape-and-index", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, resp.appErr("indexing failed")
	}
	return resp.Data, nil
}

// DeleteSource removes every chunk of the given source from the index.
func (c *Client) DeleteSource(ctx context.Context, sourceURL string) (*DeleteResult, error) {
	var resp struct {
		envelope
		DeletedChunks int `json:"deleted_chunks"`
	}
	path := "/delete-source?source_url=" + url.QueryEscape(sourceURL)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("deleting source failed")
	}
	return &DeleteResult{DeletedChunks: resp.DeletedChunks}, nil
}

// ClearIndex removes all indexed content.
func (c *Client) ClearIndex(ctx context.Context) error {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/clear-index", nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return resp.appErr("clearing index failed")
	}
	return nil
}

// Query asks the RAG system a question over the indexed content.
func (c *Client) Query(ctx context.Context, question string, nResults int) (*QueryResult, error) {
	var resp struct {
		envelope
		Answer     string        `json:"answer"`
		Sources    []QuerySource `json:"sources"`
		ChunksUsed int           `json:"chunks_used"`
	}
	req := map[string]any{"question": question, "n_results": nResults}
	if err := c.do(ctx, http.MethodPost, "/query", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("query failed")
	}
	return &QueryResult{Answer: resp.Answer, Sources: resp.Sources, ChunksUsed: resp.ChunksUsed}, nil
}

// Scrape extracts a single page without indexing it.
func (c *Client) Scrape(ctx context.Context, pageURL string) (*ScrapeResult, error) {
	var resp struct {
		envelope
		Data *ScrapeResult `json:"data"`
	}
	req := map[string]string{"url": pageURL}
	if err := c.do(ctx, http.MethodPost, "/scrape", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, resp.appErr("scraping failed")
	}
	return resp.Data, nil
}

// Scrapes pages through the server-side scrape history.
func (c *Client) Scrapes(ctx context.Context, limit, skip int) ([]StoredScrape, error) {
	var resp struct {
		envelope
		Scrapes []StoredScrape `json:"scrapes"`
		Count   int            `json:"count"`
	}
	path := fmt.Sprintf("/scrapes?limit=%d&skip=%d", limit, skip)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("listing scrapes failed")
	}
	return resp.Scrapes, nil
}

// ScrapeByID fetches one stored scrape, including its full data.
func (c *Client) ScrapeByID(ctx context.Context, id string) (*StoredScrape, error) {
	var resp struct {
		envelope
		Scrape *StoredScrape `json:"scrape"`
	}
	if err := c.do(ctx, http.MethodGet, "/scrapes/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Scrape == nil {
		return nil, resp.appErr("scrape not found")
	}
	return resp.Scrape, nil
}

// DeleteScrape removes one stored scrape from the history.
func (c *Client) DeleteScrape(ctx context.Context, id string) error {
	var resp envelope
	if err := c.do(ctx, http.MethodDelete, "/scrapes/"+url.PathEscape(id), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return resp.appErr("deleting scrape failed")
	}
	return nil
}

// ReindexScrape re-indexes a stored scrape into the RAG index.
func (c *Client) ReindexScrape(ctx context.Context, id string) (*IndexResult, error) {
	var resp struct {
		envelope
		Data *IndexResult `json:"data"`
	}
	path := "/scrapes/" + url.PathEscape(id) + "/reindex"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("reindexing failed")
	}
	if resp.Data == nil {
		resp.Data = &IndexResult{}
	}
	return resp.Data, nil
}

// SearchScrapes searches the scrape history by URL or title.
func (c *Client) SearchScrapes(ctx context.Context, query string) ([]StoredScrape, error) {
	var resp struct {
		envelope
		Results []StoredScrape `json:"results"`
		Count   int            `json:"count"`
	}
	path := "/scrapes/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("search failed")
	}
	return resp.Results, nil
}

// ScrapeStoreStats fetches counters for the server-side scrape store.
func (c *Client) ScrapeStoreStats(ctx context.Context) (*StoreStats, error) {
	var resp struct {
		envelope
		Stats StoreStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/scrapes/stats", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("fetching scrape stats failed")
	}
	return &resp.Stats, nil
}

// AnalyzeSentiment classifies the sentiment of arbitrary text.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error) {
	var resp struct {
		envelope
		Data *Sentiment `json:"data"`
	}
	req := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/sentiment/analyze", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, resp.appErr("sentiment analysis failed")
	}
	return resp.Data, nil
}

// ScrapeSentiment analyzes the sentiment of one stored scrape.
func (c *Client) ScrapeSentiment(ctx context.Context, id string) (*ScrapeSentiment, error) {
	var resp struct {
		envelope
		Sentiment *ScrapeSentiment `json:"sentiment"`
	}
	path := "/scrapes/" + url.PathEscape(id) + "/sentiment"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Sentiment == nil {
		return nil, resp.appErr("sentiment lookup failed")
	}
	return resp.Sentiment, nil
}

// SentimentStats aggregates sentiment across the scrape store.
func (c *Client) SentimentStats(ctx context.Context) (*SentimentStats, error) {
	var resp struct {
		envelope
		Stats SentimentStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/sentiment/stats", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, resp.appErr("fetching sentiment stats failed")
	}
	return &resp.Stats, nil
}
