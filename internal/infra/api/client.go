// Package api is the typed HTTP boundary to the Silkyway backend. Each
// method is one round trip; every failure is translated into a domain
// error before it returns. No retries happen at this layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

const defaultTimeout = 30 * time.Second

// Config holds client construction settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend's JSON-over-HTTP contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend client.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// envelope is the backend's uniform response wrapper:
// {ok, data} on success, {ok:false, error, message} on failure.
type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	ErrCode string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// do performs one round trip and decodes the envelope's data field into
// out. All transport failures map to TIMEOUT or NETWORK_ERROR; all
// backend failures pass through the error translator.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return sdkerr.New(sdkerr.CodeAPIError, "marshal request: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(err)
	}

	var env envelope
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil {
		if resp.StatusCode != http.StatusOK {
			return sdkerr.New(sdkerr.CodeAPIError, "http %d: %s", resp.StatusCode, string(raw))
		}
		return sdkerr.New(sdkerr.CodeAPIError, "parse response: %v", decodeErr)
	}

	if env.ErrCode != "" || (!env.OK && env.Message != "") {
		return sdkerr.FromAPI(env.ErrCode, env.Message)
	}
	if resp.StatusCode != http.StatusOK || !env.OK {
		return sdkerr.New(sdkerr.CodeAPIError, "http %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return sdkerr.New(sdkerr.CodeAPIError, "parse response data: %v", err)
		}
	}
	return nil
}

// classifyTransportError maps request failures to the two transport
// codes. A deadline hit anywhere in the chain is TIMEOUT; everything
// else is connectivity loss.
func classifyTransportError(err error) *sdkerr.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return sdkerr.Timeout()
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return sdkerr.Timeout()
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return sdkerr.Timeout()
	}
	return sdkerr.Network()
}

func escape(s string) string {
	return url.PathEscape(s)
}
