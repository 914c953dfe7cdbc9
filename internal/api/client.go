package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the transactions API on behalf of the dashboard.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Transaction mirrors the server's listing row shape.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Date          *string         `json:"date"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Gender        string          `json:"gender"`
	Age           *int            `json:"age"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	Region        string          `json:"region"`
	ProductID     string          `json:"productId"`
	Employee      string          `json:"employee"`
}

type ListResult struct {
	Data       []Transaction `json:"data"`
	TotalPages int64         `json:"totalPages"`
}

// Stats carries the aggregate sums; nil means the server summed zero rows.
type Stats struct {
	TotalUnits  *decimal.Decimal `json:"total_units"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	TotalFinal  *decimal.Decimal `json:"total_final"`
}

// ListTransactions fetches one page of the filtered listing.
func (c *Client) ListTransactions(ctx context.Context, q Query) (*ListResult, error) {
	var result ListResult
	if err := c.get(ctx, "/api/transactions", q.Values(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Stats fetches the aggregate sums for the same filter set.
func (c *Client) Stats(ctx context.Context, q Query) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/api/transactions/stats", q.FilterValues(), &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	target := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}
