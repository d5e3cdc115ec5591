// Package client issues signed requests to the Landscape API.
// It handles request signing, transport, and response decoding.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/landscapectl/landscapectl/internal/api"
	"github.com/landscapectl/landscapectl/internal/config"
	"github.com/landscapectl/landscapectl/internal/constants"
	"github.com/landscapectl/landscapectl/internal/errors"
	"github.com/landscapectl/landscapectl/internal/logger"
	"github.com/landscapectl/landscapectl/internal/request"
)

// Client executes Landscape API actions: canonicalize, sign, send, decode.
// One attempt per call, no automatic retry: mutating actions are not
// idempotent, and a retried read regenerates a fresh timestamp and signature
// by re-invoking the whole pipeline anyway.
type Client struct {
	config     *config.Config
	signer     request.Signer
	decoder    Decoder
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a new API client for the configured endpoint.
func New(cfg *config.Config, log *slog.Logger) (*Client, error) {
	if cfg.APIURI == "" {
		return nil, errors.ErrConfiguration("API endpoint is not configured", nil)
	}
	signer, err := request.NewHMACSigner(cfg.APIURI)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:     cfg,
		signer:     signer,
		decoder:    JSONDecoder{},
		httpClient: &http.Client{Timeout: cfg.GetRequestTimeout()},
		logger:     log,
		now:        time.Now,
	}, nil
}

// Response represents a raw API response
type Response struct {
	StatusCode int
	Body       []byte
}

// Do signs the action and sends it as a single form-encoded POST.
// Signing failures surface before any network traffic happens.
func (c *Client) Do(ctx context.Context, action api.Action) (*Response, error) {
	signed, err := c.signer.Sign(action.Name(), action.Params(), c.config.Credentials(), c.now())
	if err != nil {
		return nil, err
	}

	body := signed.Body()
	httpReq, err := http.NewRequestWithContext(ctx, constants.HTTPMethod, signed.URL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set(constants.ContentTypeHeader, constants.FormContentType)

	// The signed body carries the credentials' signature, so only sizes and
	// the action name are logged.
	logArgs := []any{
		"operation", "HTTP.Request",
		"action", action.Name(),
		"url", signed.URL,
		"bodySize", len(body),
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	c.logger.Debug("calling Landscape API", logArgs...)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.ErrNetwork(fmt.Sprintf("request for %s failed", action.Name()), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ErrNetwork("failed to read response", err)
	}

	c.logger.Debug("received HTTP response",
		"status", resp.StatusCode,
		"bodySize", len(raw),
		"action", action.Name())

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}, nil
}

// invoke sends the action and decodes the response into result.
func (c *Client) invoke(ctx context.Context, action api.Action, result any) error {
	resp, err := c.Do(ctx, action)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, result)
}

// decodeResponse turns a raw response into result or a typed error. The
// service reports some failures inside an HTTP 200, so success statuses are
// probed for the error envelope before the action schema is attempted.
func (c *Client) decodeResponse(resp *Response, result any) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if envelope, ok := decodeErrorEnvelope(c.decoder, resp.Body); ok {
			return errors.ErrAPI(resp.StatusCode, envelope.Code, envelope.Message)
		}
		return errors.ErrUnexpectedStatus(resp.StatusCode, string(resp.Body))
	}

	if envelope, ok := decodeErrorEnvelope(c.decoder, resp.Body); ok {
		return errors.ErrAPI(resp.StatusCode, envelope.Code, envelope.Message)
	}

	if err := c.decoder.Decode(resp.Body, result); err != nil {
		c.logger.Debug("response body", "body", string(resp.Body))
		return errors.ErrDecode("response matches no known schema", err)
	}

	return nil
}

// GetComputers lists registered hosts, preserving the server-provided order.
func (c *Client) GetComputers(ctx context.Context, action api.GetComputers) ([]api.Computer, error) {
	var computers []api.Computer
	if err := c.invoke(ctx, action, &computers); err != nil {
		return nil, err
	}
	return computers, nil
}

// GetScripts lists all stored scripts.
func (c *Client) GetScripts(ctx context.Context, action api.GetScripts) ([]api.Script, error) {
	var scripts []api.Script
	if err := c.invoke(ctx, action, &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}

// GetScript finds a single script by title prefix. The API cannot query one
// script by name, so the full listing is fetched and filtered locally.
func (c *Client) GetScript(ctx context.Context, title string) (*api.Script, error) {
	scripts, err := c.GetScripts(ctx, api.GetScripts{})
	if err != nil {
		return nil, err
	}
	for i := range scripts {
		if strings.HasPrefix(scripts[i].Title, title) {
			return &scripts[i], nil
		}
	}
	return nil, fmt.Errorf("script %q not found", title)
}

// GetScriptAttachments lists the attachment names of a script by title.
func (c *Client) GetScriptAttachments(ctx context.Context, title string) ([]string, error) {
	script, err := c.GetScript(ctx, title)
	if err != nil {
		return nil, err
	}
	return script.Attachments, nil
}

// ExecuteScript runs a stored script on all hosts matching the action query.
func (c *Client) ExecuteScript(ctx context.Context, action api.ExecuteScript) (*api.Activity, error) {
	var activity api.Activity
	if err := c.invoke(ctx, action, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// CreateScriptAttachment uploads an attachment and returns its ID.
func (c *Client) CreateScriptAttachment(ctx context.Context, action api.CreateScriptAttachment) (int, error) {
	var id int
	if err := c.invoke(ctx, action, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveScriptAttachment detaches a file from a script.
func (c *Client) RemoveScriptAttachment(ctx context.Context, action api.RemoveScriptAttachment) error {
	var discard json.RawMessage
	return c.invoke(ctx, action, &discard)
}
