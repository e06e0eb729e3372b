package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fleetra/site/config"
)

var ErrNotConfigured = errors.New("spreadsheet API not configured")

// Client appends rows through a spreadsheet "append" HTTP API.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
}

// appendRequest is the body posted to the append endpoint.
type appendRequest struct {
	Sheet  string  `json:"sheet"`
	Values [][]any `json:"values"`
}

// APIError is a non-2xx reply from the spreadsheet API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("spreadsheet API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("spreadsheet API error: %d %s", e.StatusCode, e.Body)
}

// NewClient creates a client from the environment configuration.
func NewClient() (*Client, error) {
	return New(config.SheetAPIURL, config.SheetAPIToken, config.UpstreamTimeout)
}

func New(endpoint, token string, timeout time.Duration) (*Client, error) {
	if endpoint == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// AppendRow appends one row of ordered values to the named sheet.
func (c *Client) AppendRow(ctx context.Context, sheet string, row []any) error {
	body, err := json.Marshal(appendRequest{Sheet: sheet, Values: [][]any{row}})
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(excerpt))}
	}

	log.Printf("[SHEET] Appended %d values to %q", len(row), sheet)
	return nil
}
