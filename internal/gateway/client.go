// Package gateway talks to the board API. It exposes typed fetches for the
// current user and the board columns, each returning a value or a
// classified *FetchError.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/session"
)

// API paths
const (
	PathUserInfo = "/api/userInfo"
	PathColumns  = "/api/columns"
	PathLogin    = "/api/login"
)

// maxBodySize bounds how much of a response body is read
const maxBodySize = 4 << 20

// Gateway is the data source the flow controller depends on.
// Both fetches block until the response is decoded or ctx is done.
type Gateway interface {
	FetchIdentity(ctx context.Context, cred session.Credential) (*models.UserInfo, error)
	FetchBoard(ctx context.Context, cred session.Credential) (*models.Board, error)
}

// Authenticator exchanges user credentials for a session token
type Authenticator interface {
	Login(ctx context.Context, username, password string) (session.Credential, error)
}

// LoginRequest is the body of the login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login endpoint
type LoginResponse struct {
	Token string `json:"token"`
}

// Client is the HTTP implementation of Gateway and Authenticator
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics shares a Metrics instance with the caller
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the API at baseURL.
// timeout bounds each request; zero means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
		metrics:    NewMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metrics returns the client's request counters
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// FetchIdentity fetches the user the credential belongs to
func (c *Client) FetchIdentity(ctx context.Context, cred session.Credential) (*models.UserInfo, error) {
	return requestData[models.UserInfo](ctx, c, http.MethodGet, PathUserInfo, cred, nil)
}

// FetchBoard fetches the board columns in display order.
// The userInfo carried by the payload is ignored.
func (c *Client) FetchBoard(ctx context.Context, cred session.Credential) (*models.Board, error) {
	data, err := requestData[models.UserData](ctx, c, http.MethodGet, PathColumns, cred, nil)
	if err != nil {
		return nil, err
	}

	board := models.NewBoard(*data)
	if err := board.Validate(); err != nil {
		fe := &FetchError{
			Kind:    KindDecode,
			Message: "The board could not be displayed",
			Hint:    err.Error(),
			Status:  http.StatusOK,
			Err:     err,
		}
		c.metrics.IncFailures(fe.Kind)
		return nil, fe
	}
	return board, nil
}

// Login exchanges a username and password for a credential
func (c *Client) Login(ctx context.Context, username, password string) (session.Credential, error) {
	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := requestData[LoginResponse](ctx, c, http.MethodPost, PathLogin, "", body)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) && fe.Kind == KindUnauthorized {
			return "", &FetchError{
				Kind:    KindUnauthorized,
				Message: "Incorrect username or password",
				Status:  fe.Status,
			}
		}
		return "", err
	}
	if resp.Token == "" {
		fe := &FetchError{Kind: KindDecode, Message: "The server returned an empty token"}
		c.metrics.IncFailures(fe.Kind)
		return "", fe
	}
	return session.Credential(resp.Token), nil
}

// requestData performs one request and decodes a JSON body into T.
// Every failure is returned as a *FetchError.
func requestData[T any](ctx context.Context, c *Client, method, path string, cred session.Credential, body []byte) (*T, error) {
	c.metrics.IncRequests()
	start := time.Now()

	fail := func(fe *FetchError) (*T, error) {
		c.metrics.IncFailures(fe.Kind)
		c.logger.Warn("board api request failed",
			"method", method,
			"path", path,
			"kind", fe.Kind.String(),
			"status", fe.Status,
			"error", fe,
		)
		return nil, fe
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail(&FetchError{Kind: KindNetwork, Message: "Invalid server address", Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(Classify(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("error closing response body", "error", closeErr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return fail(Classify(err))
	}
	if len(data) > maxBodySize {
		return fail(&FetchError{
			Kind:    KindDecode,
			Message: "The server response was too large",
			Status:  resp.StatusCode,
			Err:     ErrResponseTooLarge,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(statusError(resp.StatusCode, strings.TrimSpace(string(data))))
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		fe := Classify(err)
		if fe.Kind != KindDecode {
			fe = &FetchError{Kind: KindDecode, Message: "The server sent data the app could not read", Err: err}
		}
		fe.Status = resp.StatusCode
		return fail(fe)
	}

	c.logger.Debug("board api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return &out, nil
}

var (
	_ Gateway       = (*Client)(nil)
	_ Authenticator = (*Client)(nil)
)
