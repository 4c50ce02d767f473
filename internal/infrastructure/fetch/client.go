package fetch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PageResult is the shape the external fetch boundary returns. Fetching
// itself (timeouts, HTTPS enforcement, domain allow-listing, per-IP rate
// limiting) is that service's responsibility, not ours.
type PageResult struct {
	HTML   string `json:"html"`
	URL    string `json:"url"`
	Status int    `json:"status"`
}

// Client talks to the page-fetch service.
type Client struct {
	client *resty.Client
}

// NewClient creates a fetch-boundary client.
func NewClient(cfg *config.FetchConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// Health checks the fetch service's health endpoint. The import driver
// treats a failure here as fatal before starting a batch.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("fetch service unreachable: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("fetch service unhealthy: status %d", resp.StatusCode())
	}
	return nil
}

// Fetch retrieves one page through the fetch boundary. Non-2xx page
// statuses come back as fetch failures.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*PageResult, error) {
	var result PageResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("url", pageURL).
		SetResult(&result).
		Get("/fetch")
	if err != nil {
		return nil, common.ErrFetchFailed.WithCause(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, common.ErrFetchFailed.WithCause(
			fmt.Errorf("fetch service returned status %d", resp.StatusCode()))
	}

	if result.Status < 200 || result.Status > 299 {
		return nil, common.ErrFetchFailed.WithCause(
			fmt.Errorf("page returned status %d", result.Status))
	}

	common.LogDebug("page fetched",
		zap.String("url", pageURL),
		zap.Int("status", result.Status),
		zap.Int("html_length", len(result.HTML)),
	)

	return &result, nil
}
