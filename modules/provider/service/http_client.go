package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"localxp-api/core/constants"

	"github.com/goccy/go-json"
)

const maxResponseBytes = 8 << 20

// UpstreamError is a non-2xx answer from a provider API.
type UpstreamError struct {
	Source     string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.ProviderHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET with the location query and decodes the JSON body into dst.
func getJSON(ctx context.Context, client *http.Client, source, endpoint, location string, headers map[string]string, dst any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: parse url: %w", source, err)
	}
	q := u.Query()
	q.Set("location", location)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", source, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &UpstreamError{Source: source, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%s: decode: %w", source, err)
	}
	return nil
}
