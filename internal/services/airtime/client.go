package airtime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"xpressairtime/internal/models"
)

// maxResponseSize caps how much of the provider body is read.
const maxResponseSize = 1 << 20

// Client performs a single call to the provider. A nil response with a nil
// error means the provider answered without a body.
type Client interface {
	Fulfil(req *http.Request) (*models.AirtimeAPIResponse, error)
}

type httpClient struct {
	client *http.Client
}

// NewClient returns a Client backed by net/http with the given timeout.
func NewClient(timeout time.Duration) Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

// NewClientWithHTTP wraps an existing http.Client.
func NewClientWithHTTP(client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{client: client}
}

func (c *httpClient) Fulfil(req *http.Request) (*models.AirtimeAPIResponse, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), bytes.TrimSpace(body)),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var apiResp models.AirtimeAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return &apiResp, nil
}
