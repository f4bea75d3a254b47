package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"storefront/configs"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// Client struct - Shared HTTP plumbing for every shop-backend adapter.
// One attempt per call: sync failures are the caller's to swallow or surface,
// and the cart store's refetch-as-merge makes a retry loop pointless here.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient func - Creates the shared backend HTTP client
func NewClient(config configs.Backend) *Client {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("Shop backend client initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// doJSON executes one request against the backend. body and out may be nil.
// Non-2xx responses are mapped onto the domain error taxonomy: 404 to
// ErrNotFound, other 4xx to ErrInvalidRequest, 5xx and network failures to
// ErrBackendUnavailable.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
		logFailure(method, path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		switch {
		case resp.StatusCode == http.StatusNotFound:
			err = fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			err = fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(respBody))
		default:
			err = fmt.Errorf("%w: status %d - %s", domain.ErrBackendUnavailable, resp.StatusCode, string(respBody))
		}
		logFailure(method, path, err)
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response from %s %s: %w", method, path, err)
	}
	return nil
}

// flexibleID tolerates the backend's habit of encoding ids as either JSON
// numbers or strings.
type flexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexibleID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// String func
func (f flexibleID) String() string {
	return string(f)
}

// logFailure logs one failed backend call. Connectivity problems are expected
// on a flaky link and log as warnings; rejected requests log as errors.
func logFailure(method, path string, err error) {
	if IsTransient(err) {
		logrus.Warnf("Backend call %s %s failed: %v", method, path, err)
	} else {
		logrus.Errorf("Backend call %s %s failed: %v", method, path, err)
	}
}

// IsTransient reports whether the error looks like a connectivity problem
// rather than a rejected request. Used for log levels only; nothing retries.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
