package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weatherdesk.app/internal/ports"
	"weatherdesk.app/pkg/errors"
)

// maxResponseBytes bounds how much of a provider response is read
const maxResponseBytes = 4 << 20

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient creates the client shared by the provider adapters.
// A zero timeout leaves requests bounded only by the transport and the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// fetch performs a GET request and returns the body of a successful response.
// Transport failures and non-200 statuses are network errors.
func fetch(ctx context.Context, client HTTPClient, logger ports.Logger, provider, endpoint string, query url.Values) ([]byte, error) {
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("invalid %s request URL", provider), redact(err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Sprintf("failed to call %s", provider), redact(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body",
				ports.F("provider", provider),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNetworkError(fmt.Sprintf("%s returned status %d", provider, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Sprintf("failed to read %s response", provider), err)
	}
	return body, nil
}

// redact drops the query string, which carries the API key, from URL errors
func redact(err error) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}

	cleaned := urlErr.URL
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		cleaned = u.String()
	}
	return &url.Error{Op: urlErr.Op, URL: cleaned, Err: urlErr.Err}
}
