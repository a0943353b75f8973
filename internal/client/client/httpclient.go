package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/common"
	"github.com/dmitrijs2005/videogenius/internal/logging"
	"github.com/google/uuid"
)

const (
	pathRegister    = "/register"
	pathLogin       = "/login"
	pathVerifyToken = "/verify-token"
	pathGenerate    = "/generate-video"
	pathPoints      = "/user/points"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 1 << 20
)

// HTTPClient talks to the VideoGenius JSON/multipart API.
type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	textEncoding TextEncoding
	log          logging.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

// WithTextEncoding selects the body encoding of text-mode submissions.
func WithTextEncoding(enc TextEncoding) Option {
	return func(h *HTTPClient) { h.textEncoding = enc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient creates a client for the server at serverURL; the API base
// path is appended to it.
func NewHTTPClient(serverURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", serverURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", serverURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: missing host", serverURL)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(u.String(), "/") + common.APIBasePath,
		textEncoding: TextEncodingForm,
		log:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout < 0 {
		return nil, fmt.Errorf("negative timeout %s", c.timeout)
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	if !c.textEncoding.Valid() {
		return nil, fmt.Errorf("unknown text encoding %q", c.textEncoding)
	}
	return c, nil
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type verifyResponse struct {
	User *models.User `json:"user"`
}

type generateResponse struct {
	PromptID        string `json:"prompt_id"`
	PointsConsumed  *int64 `json:"points_consumed"`
	RemainingPoints *int64 `json:"remaining_points"`
}

type pointsResponse struct {
	Points *int64 `json:"points"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Register creates an account. It does not log the user in.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	body, err := json.Marshal(credentialsRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp registerResponse
	err = c.call(ctx, http.MethodPost, pathRegister, "", bytes.NewReader(body), common.ContentTypeJSON,
		authFailure("registration failed"), &resp)
	if err != nil {
		return nil, err
	}

	// The server may answer with a bare confirmation message.
	if resp.User == nil {
		return &models.User{Name: name, Email: email}, nil
	}
	return resp.User, nil
}

// Login exchanges email and password for a credential and profile.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp loginResponse
	err = c.call(ctx, http.MethodPost, pathLogin, "", bytes.NewReader(body), common.ContentTypeJSON,
		authFailure("login failed"), &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return nil, invalidResponse("login response without token or user")
	}

	return &models.Session{Token: resp.Token, User: *resp.User}, nil
}

// VerifyToken checks token liveness and returns the current profile.
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	body, err := json.Marshal(tokenRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp verifyResponse
	err = c.call(ctx, http.MethodPost, pathVerifyToken, "", bytes.NewReader(body), common.ContentTypeJSON,
		authFailure("invalid token"), &resp)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, invalidResponse("verify response without user")
	}
	return resp.User, nil
}

// GenerateVideo submits a generation job. The body encoding depends on the
// request variant; the token always travels in the Authorization header.
func (c *HTTPClient) GenerateVideo(ctx context.Context, token string, req models.GenerationRequest) (*models.GenerationResult, error) {
	body, contentType, err := encodeGeneration(req, c.textEncoding)
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	err = c.call(ctx, http.MethodPost, pathGenerate, token, body, contentType,
		generationFailure("video generation failed"), &resp)
	if err != nil {
		return nil, err
	}
	if resp.PromptID == "" || resp.PointsConsumed == nil || resp.RemainingPoints == nil {
		return nil, invalidResponse("generation response without job id or balance")
	}

	return &models.GenerationResult{
		JobID:           resp.PromptID,
		PointsConsumed:  *resp.PointsConsumed,
		RemainingPoints: *resp.RemainingPoints,
	}, nil
}

// Points returns the server-side balance of the token's account.
func (c *HTTPClient) Points(ctx context.Context, token string) (int64, error) {
	var resp pointsResponse
	err := c.call(ctx, http.MethodGet, pathPoints, token, nil, "",
		generationFailure("failed to fetch points"), &resp)
	if err != nil {
		return 0, err
	}
	if resp.Points == nil {
		return 0, invalidResponse("points response without points")
	}
	return *resp.Points, nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// failureMapper turns a non-success status and server message into an error.
type failureMapper func(status int, msg string) error

// authFailure classifies every non-success status as ErrAuth.
func authFailure(fallback string) failureMapper {
	return func(status int, msg string) error {
		if msg == "" {
			msg = fallback
		}
		return newError(ErrAuth, status, msg)
	}
}

// generationFailure singles out 402 as ErrInsufficientBalance; the status
// code is the discriminator, never the message text.
func generationFailure(fallback string) failureMapper {
	return func(status int, msg string) error {
		if msg == "" {
			msg = fallback
		}
		switch status {
		case http.StatusPaymentRequired:
			return newError(ErrInsufficientBalance, status, msg)
		case http.StatusUnauthorized, http.StatusForbidden:
			return newError(ErrAuth, status, msg)
		default:
			return newError(ErrServer, status, msg)
		}
	}
}

func invalidResponse(detail string) error {
	return newError(ErrServer, 0, "invalid response from server: "+detail)
}

// call performs one request and decodes a 2xx JSON body into out.
func (c *HTTPClient) call(ctx context.Context, method, path, token string, body io.Reader, contentType string,
	onFailure failureMapper, out any) error {

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", common.ContentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(started))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return newError(ErrNetwork, resp.StatusCode, fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return onFailure(resp.StatusCode, errorMessage(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return invalidResponse(err.Error())
	}
	return nil
}

// errorMessage pulls the server-supplied message out of an error payload.
func errorMessage(data []byte) string {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err != nil {
		return ""
	}
	if er.Message != "" {
		return er.Message
	}
	return er.Error
}

// handleRequestError converts transport failures to ErrNetwork.
func (c *HTTPClient) handleRequestError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return newError(ErrNetwork, 0, "request canceled")
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return newError(ErrNetwork, 0, "request timed out")
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return newError(ErrNetwork, 0, "request timed out")
	}
	return newError(ErrNetwork, 0, fmt.Sprintf("cannot connect to server: %v", err))
}
