package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Factory builds wire clients bound to one base URL, caching one client per
// format. The per-format map removes the reuse race a single cached slot
// would have under concurrent callers with differing formats.
type Factory struct {
	baseURL string
	timeout time.Duration
	log     *logrus.Logger

	mu      sync.Mutex
	clients map[Format]*Client
}

// NewFactory initializes a factory for baseURL. A zero timeout falls back
// to 10 seconds.
func NewFactory(baseURL string, timeout time.Duration, log *logrus.Logger) *Factory {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Factory{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		log:     log,
		clients: make(map[Format]*Client),
	}
}

// Client returns the cached client for format, building one on first use.
// Construction never fails; network errors surface only on calls.
func (f *Factory) Client(format Format) *Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[format]; ok {
		return c
	}
	c := &Client{
		baseURL: f.baseURL,
		client:  &http.Client{Timeout: f.timeout},
		codec:   newCodec(format),
		log:     f.log,
	}
	f.clients[format] = c
	return c
}

// Client performs HTTP round trips in one wire format.
type Client struct {
	baseURL string
	client  *http.Client
	codec   codec
	log     *logrus.Logger
}

// Do sends one request and decodes a 2xx response body into out. body and
// out may be nil. Transport failures come back as wrapped errors; non-2xx
// responses as *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := c.codec.encode(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", c.codec.contentType())
	}
	req.Header.Set("Accept", c.codec.contentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debugf("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(respBody))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}

	if out != nil {
		if err := c.codec.decode(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
