package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mithuncards/cardpos/internal/config"
	"github.com/mithuncards/cardpos/pkg/apperror"
)

// Client is the HTTP client for the remote backend API. It attaches
// the configured bearer token to every request and maps transport and
// status failures onto the application error taxonomy. A 401 response
// invokes the registered hook so the session store can clear itself.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	onUnauthorized func()
}

// NewClient creates a client for the configured upstream backend.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// OnUnauthorized registers the hook fired when the upstream rejects
// the session token.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the upstream response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues a request and decodes the enveloped payload into out.
// A nil out discards the payload.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.NewUpstreamError(fmt.Sprintf("upstream request failed: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewUpstreamError(fmt.Sprintf("reading upstream response: %v", err))
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperror.NewUpstreamError("malformed upstream response")
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperror.NewUpstreamError("malformed upstream payload")
	}
	return nil
}

// statusError maps an upstream failure status onto the error taxonomy.
func (c *Client) statusError(code int, raw []byte) error {
	message := ""
	var env envelope
	if json.Unmarshal(raw, &env) == nil {
		message = env.Message
	}

	switch code {
	case http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apperror.ErrSessionExpired
	case http.StatusNotFound:
		return apperror.ErrNotFound
	case http.StatusConflict:
		if message == "" {
			message = "Upstream rejected the requested state"
		}
		return apperror.NewConflictError(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "Upstream rejected the request"
		}
		return apperror.NewBadRequestError(message)
	default:
		if message == "" {
			message = fmt.Sprintf("upstream returned status %d", code)
		}
		return apperror.NewUpstreamError(message)
	}
}
