// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind categorizes client errors for handling.
type ErrorKind int

const (
	// KindTransport covers network failures, timeouts, non-success
	// HTTP statuses and unreadable responses.
	KindTransport ErrorKind = iota
	// KindBackend means the backend answered but reported
	// status "error" with its own message.
	KindBackend
	// KindInvalidResponse means the body could not be decoded.
	KindInvalidResponse
	// KindValidation means the request was rejected before any call
	// was made.
	KindValidation
)

// ClientError is an error from the chat client. It carries the base
// URL that was attempted so callers can surface it to the user.
type ClientError struct {
	Kind    ErrorKind
	BaseURL string
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrEmptyMessage is returned when the user text is empty after trimming.
var ErrEmptyMessage = &ClientError{Kind: KindValidation, Message: "message is empty"}

// Is supports errors.Is comparisons against sentinel client errors.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// IsBackendError reports whether err is a backend-reported failure.
func IsBackendError(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == KindBackend
	}
	return false
}

// IsTransportError reports whether err is a transport-level failure.
func IsTransportError(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == KindTransport
	}
	return false
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the body sent to POST /api/chat.
type ChatRequest struct {
	Message string          `json:"message"`
	History []model.Message `json:"history"`
}

// ChatResponse is the body returned by the backend.
type ChatResponse struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// =============================================================================
// CLIENT
// =============================================================================

// defaultTimeout bounds a single chat request. The protocol is
// single-shot, so this is the only timeout in play.
const defaultTimeout = 120 * time.Second

// Client handles communication with the inkbot backend.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	tracker    *connection.Tracker
}

// NewClient creates a client that records request outcomes in tracker.
func NewClient(tracker *connection.Tracker) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		tracker:    tracker,
	}
}

// Send submits one user turn and returns the assistant's reply.
//
// history must contain only the messages preceding this turn; the new
// user message travels in the message field, not in history. On any
// failure the returned error is a *ClientError carrying the attempted
// base URL, and the connection tracker is set to error. On success the
// tracker is set to connected.
func (c *Client) Send(ctx context.Context, baseURL, userText string, history []model.Message) (string, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return "", ErrEmptyMessage
	}

	reqBody := ChatRequest{
		Message: userText,
		History: history,
	}
	if reqBody.History == nil {
		reqBody.History = []model.Message{}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", c.fail(&ClientError{Kind: KindInvalidResponse, BaseURL: baseURL, Message: "failed to marshal request", Cause: err})
	}

	url := strings.TrimRight(baseURL, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", c.fail(&ClientError{Kind: KindTransport, BaseURL: baseURL, Message: "failed to create request", Cause: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.fail(&ClientError{Kind: KindTransport, BaseURL: baseURL, Message: "backend unreachable", Cause: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.fail(&ClientError{
			Kind:    KindTransport,
			BaseURL: baseURL,
			Message: "chat request failed: " + resp.Status,
		})
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", c.fail(&ClientError{Kind: KindInvalidResponse, BaseURL: baseURL, Message: "failed to decode response", Cause: err})
	}

	if result.Status == "error" {
		msg := result.Error
		if msg == "" {
			msg = "backend reported an error"
		}
		return "", c.fail(&ClientError{Kind: KindBackend, BaseURL: baseURL, Message: msg})
	}

	c.tracker.Set(connection.StateConnected)
	return result.Response, nil
}

// fail records the error state and passes the error through.
func (c *Client) fail(err *ClientError) error {
	c.tracker.Set(connection.StateError)
	return err
}
