// Package client is a client for the wky-report HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/rs/zerolog"
)

// Uploads are parsed synchronously by the server
const requestTimeout = 2 * time.Minute

// Client communicates with the wky-report API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a new API client. A trailing slash of the base URL is ignored.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log.With().Str("component", "api_client").Logger(),
	}
}

// Unclassified returns the transactions without a category.
func (c *Client) Unclassified(ctx context.Context, q UnclassifiedQuery) ([]Transaction, error) {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Branch != "" {
		values.Set("branch", q.Branch)
	}
	if q.Suggest {
		values.Set("suggest", "true")
	}

	path := "/transactions/unclassified"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var transactions []Transaction
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Categories returns all categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category or updates the fixed flag of the
// category with the same name.
func (c *Client) CreateCategory(ctx context.Context, name string, isFixed bool) (Category, error) {
	payload := struct {
		Name    string `json:"name"`
		IsFixed bool   `json:"is_fixed"`
	}{name, isFixed}

	var category Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", payload, &category); err != nil {
		return Category{}, err
	}
	return category, nil
}

// Categorize assigns a category to transactions and returns the number of
// updated transactions.
func (c *Client) Categorize(ctx context.Context, r CategorizeRequest) (int, error) {
	var response struct {
		Updated int `json:"updated"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/categorize/manual", r, &response); err != nil {
		return 0, err
	}
	return response.Updated, nil
}

// Branches returns the names of all branches.
func (c *Client) Branches(ctx context.Context) ([]string, error) {
	var branches []string
	if err := c.doJSON(ctx, http.MethodGet, "/meta/branches", nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// Report returns the report for the query.
func (c *Client) Report(ctx context.Context, q report.Query) (report.Response, error) {
	var response report.Response
	if err := c.doJSON(ctx, http.MethodPost, "/reports", q, &response); err != nil {
		return report.Response{}, err
	}
	return response, nil
}

// Upload uploads a bank export. If branch is not empty, it is used for all
// transactions of the file.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, branch string) (UploadResult, error) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	if branch != "" {
		if err := mw.WriteField("branch", branch); err != nil {
			return UploadResult{}, fmt.Errorf("failed to write form: %w", err)
		}
	}

	w, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to write form: %w", err)
	}

	if _, err := io.Copy(w, content); err != nil {
		return UploadResult{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := mw.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("failed to write form: %w", err)
	}

	var result UploadResult
	if err := c.do(ctx, http.MethodPost, "/uploads/file", body, mw.FormDataContentType(), &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

// doJSON sends the payload as JSON body, unless it is nil.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, target any) error {
	if payload == nil {
		return c.do(ctx, method, path, nil, "", target)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	return c.do(ctx, method, path, bytes.NewReader(body), "application/json", target)
}

// do sends the request and decodes the response body into target.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, target any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if target == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
