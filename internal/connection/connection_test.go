// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package connection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUnknown, "unknown"},
		{StateTesting, "testing"},
		{StateConnected, "connected"},
		{StateError, "error"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestTrackerLastWriteWins(t *testing.T) {
	tracker := NewTracker()

	if tracker.Get() != StateUnknown {
		t.Errorf("initial state = %v, want unknown", tracker.Get())
	}

	tracker.Set(StateConnected)
	tracker.Set(StateError)
	if tracker.Get() != StateError {
		t.Errorf("state = %v, want error", tracker.Get())
	}
}

func TestMonitorProbeSuccess(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tracker := NewTracker()
	monitor := NewMonitor(tracker)

	state := monitor.Probe(context.Background(), srv.URL)
	if state != StateConnected {
		t.Errorf("Probe = %v, want connected", state)
	}
	if tracker.Get() != StateConnected {
		t.Errorf("tracker = %v, want connected", tracker.Get())
	}
	if gotPath != "/api/health" {
		t.Errorf("probe path = %q, want /api/health", gotPath)
	}
}

func TestMonitorProbeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tracker := NewTracker()
	monitor := NewMonitor(tracker)

	if state := monitor.Probe(context.Background(), srv.URL); state != StateError {
		t.Errorf("Probe = %v, want error", state)
	}
	if tracker.Get() != StateError {
		t.Errorf("tracker = %v, want error", tracker.Get())
	}
}

func TestMonitorProbeUnreachable(t *testing.T) {
	// A server that is already closed is guaranteed unreachable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tracker := NewTracker()
	monitor := NewMonitor(tracker)

	if state := monitor.Probe(context.Background(), url); state != StateError {
		t.Errorf("Probe = %v, want error", state)
	}
}

func TestMonitorTryProbeThrottles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tracker := NewTracker()
	monitor := NewMonitor(tracker)

	if _, ok := monitor.TryProbe(context.Background(), srv.URL); !ok {
		t.Fatal("first TryProbe should run")
	}
	// Immediately after, the limiter should reject.
	state, ok := monitor.TryProbe(context.Background(), srv.URL)
	if ok {
		t.Error("second TryProbe should be throttled")
	}
	if state != StateConnected {
		t.Errorf("throttled TryProbe returned %v, want last-known connected", state)
	}
}
