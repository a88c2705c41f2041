/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package platform provides a REST client for fetching tokens, themes,
// groups, and collections from a design-system platform, and for writing
// derived export names back to token properties.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bennypowers.dev/tzeva/token"
)

// maxRetries bounds attempts for rate-limited or failing requests.
const maxRetries = 3

// Client is a design-platform API client. It implements export.Source and
// export.PropertyWriter.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	retryDelay  time.Duration
}

// NewClient creates a platform client for the given API base URL and
// personal access token.
func NewClient(baseURL, accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		retryDelay:  2 * time.Second,
		httpClient: &http.Client{
			Timeout:   2 * time.Minute,
			Transport: transport,
		},
	}
}

// Fetch retrieves one complete data snapshot: tokens, themes, groups, and
// collections. Fetches run sequentially; the first failure aborts.
func (c *Client) Fetch(ctx context.Context) (*token.DataSet, error) {
	dataSet := &token.DataSet{}

	if err := c.get(ctx, "/tokens", &dataSet.Tokens); err != nil {
		return nil, fmt.Errorf("error fetching tokens: %w", err)
	}
	if err := c.get(ctx, "/themes", &dataSet.Themes); err != nil {
		return nil, fmt.Errorf("error fetching themes: %w", err)
	}
	if err := c.get(ctx, "/groups", &dataSet.Groups); err != nil {
		return nil, fmt.Errorf("error fetching groups: %w", err)
	}
	if err := c.get(ctx, "/collections", &dataSet.Collections); err != nil {
		return nil, fmt.Errorf("error fetching collections: %w", err)
	}

	return dataSet, nil
}

// WriteTokenProperty sets a custom property on a token.
func (c *Client) WriteTokenProperty(ctx context.Context, tokenID, property, value string) error {
	body, err := json.Marshal(map[string]string{"value": value})
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/tokens/%s/properties/%s", tokenID, property)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do performs one request with retry on rate limits and server errors,
// backing off linearly between attempts.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.retryDelay):
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("attempt %d: request failed with status %d: %s", attempt, resp.StatusCode, data)
			continue
		}
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
			return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, data)
		}
		if readErr != nil {
			return fmt.Errorf("failed to read response: %w", readErr)
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil
	}

	return lastErr
}
