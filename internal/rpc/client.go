package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client issues JSON-RPC requests against a single Ethereum endpoint.
// It owns its http.Client and timeout; nothing is shared process-wide.
// One client is constructed per endpoint per invocation.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient validates the endpoint URL and returns a client whose requests
// are bounded by the given timeout. A URL that is not well-formed http(s)
// fails with a ValidationError before any network traffic.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid rpc url %q: %v", endpoint, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid rpc url %q: scheme must be http or https", endpoint)}
	}
	if u.Host == "" {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid rpc url %q: missing host", endpoint)}
	}

	return &Client{
		url:        endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// URL returns the endpoint this client talks to.
func (c *Client) URL() string { return c.url }

// Call executes a single JSON-RPC request. There is no retry: a timeout,
// connection failure, non-200 status, undecodable body, or JSON-RPC error
// object all surface as a ConnectivityError and abort the run.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
	body, _ := json.Marshal(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("HTTP %d", httpResp.StatusCode)}
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: err}
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("invalid JSON response: %w", err)}
	}

	if resp.Error != nil {
		return nil, &ConnectivityError{URL: c.url, Err: fmt.Errorf("RPC error %d: %s", resp.Error.Code, resp.Error.Message)}
	}

	return resp.Result, nil
}

// isNull reports whether a raw JSON-RPC result is absent or the JSON null
// literal, which Ethereum nodes use for "no such transaction/receipt/block".
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
