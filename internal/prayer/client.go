package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches official timings from an Aladhan-compatible API.
// Any failure is reported to the caller, who falls back to the local
// calculation; there is no retry policy.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for tests with httptest.
	BaseURL string
}

// NewClient creates a timings API client with sensible defaults.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings APITimings `json:"timings"`
	} `json:"data"`
}

// FetchTimings requests the six prayer timings for a date and coordinate.
func (c *Client) FetchTimings(ctx context.Context, date time.Time, loc Location) (*APITimings, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", loc.Lat))
	params.Set("longitude", fmt.Sprintf("%f", loc.Lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", endpoint, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timings request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timings API returned status %d", resp.StatusCode)
	}

	var apiResp timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode timings response: %w", err)
	}

	if apiResp.Code != 200 {
		return nil, fmt.Errorf("timings API error: code=%d status=%s", apiResp.Code, apiResp.Status)
	}

	return &apiResp.Data.Timings, nil
}
