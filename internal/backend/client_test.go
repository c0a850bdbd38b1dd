// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/model"
)

func TestSendSuccess(t *testing.T) {
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(ChatResponse{Status: "ok", Response: "Hello"})
	}))
	defer srv.Close()

	tracker := connection.NewTracker()
	client := NewClient(tracker)

	history := []model.Message{
		model.NewUserMessage("earlier"),
		model.NewAssistantMessage("reply"),
	}

	reply, err := client.Send(context.Background(), srv.URL, "Hi", history)
	require.NoError(t, err)
	assert.Equal(t, "Hello", reply)
	assert.Equal(t, connection.StateConnected, tracker.Get())

	// The new user message travels separately; history holds only
	// the preceding turns.
	assert.Equal(t, "Hi", gotReq.Message)
	require.Len(t, gotReq.History, 2)
	assert.Equal(t, "earlier", gotReq.History[0].Content)
}

func TestSendTrimsInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Hi", req.Message)
		json.NewEncoder(w).Encode(ChatResponse{Status: "ok", Response: "ok"})
	}))
	defer srv.Close()

	client := NewClient(connection.NewTracker())
	_, err := client.Send(context.Background(), srv.URL, "  Hi  \n", nil)
	require.NoError(t, err)
}

func TestSendEmptyMessage(t *testing.T) {
	tracker := connection.NewTracker()
	client := NewClient(tracker)

	_, err := client.Send(context.Background(), "http://127.0.0.1:1", "   ", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyMessage))
	// Validation failures happen before any call; state is untouched.
	assert.Equal(t, connection.StateUnknown, tracker.Get())
}

func TestSendHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tracker := connection.NewTracker()
	client := NewClient(tracker)

	_, err := client.Send(context.Background(), srv.URL, "Hi", nil)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.Equal(t, connection.StateError, tracker.Get())

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, srv.URL, clientErr.BaseURL)
	assert.Contains(t, clientErr.Error(), "500")
}

func TestSendBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{Status: "error", Error: "model overloaded"})
	}))
	defer srv.Close()

	tracker := connection.NewTracker()
	client := NewClient(tracker)

	_, err := client.Send(context.Background(), srv.URL, "Hi", nil)
	require.Error(t, err)
	assert.True(t, IsBackendError(err))
	assert.Contains(t, err.Error(), "model overloaded")
	assert.Equal(t, connection.StateError, tracker.Get())
}

func TestSendMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	tracker := connection.NewTracker()
	client := NewClient(tracker)

	_, err := client.Send(context.Background(), srv.URL, "Hi", nil)
	require.Error(t, err)
	assert.Equal(t, connection.StateError, tracker.Get())
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tracker := connection.NewTracker()
	client := NewClient(tracker)

	_, err := client.Send(context.Background(), url, "Hi", nil)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.Equal(t, connection.StateError, tracker.Get())
}

func TestSendEmptyHistoryMarshalsAsArray(t *testing.T) {
	var rawBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rawBody = string(body)
		json.NewEncoder(w).Encode(ChatResponse{Status: "ok", Response: "ok"})
	}))
	defer srv.Close()

	client := NewClient(connection.NewTracker())
	_, err := client.Send(context.Background(), srv.URL, "Hi", nil)
	require.NoError(t, err)
	assert.Contains(t, rawBody, `"history":[]`)
}
