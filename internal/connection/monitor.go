// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package connection

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// HEALTH MONITOR
// =============================================================================

// probeTimeout bounds a single health check.
const probeTimeout = 5 * time.Second

// Monitor issues health probes against the backend and records the
// outcome in its Tracker.
type Monitor struct {
	tracker    *Tracker
	httpClient *http.Client

	// limiter throttles user-triggered re-probes; the startup probe
	// goes through Probe directly and is never dropped.
	limiter *rate.Limiter
}

// NewMonitor creates a Monitor writing to tracker.
func NewMonitor(tracker *Tracker) *Monitor {
	return &Monitor{
		tracker:    tracker,
		httpClient: &http.Client{Timeout: probeTimeout},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Probe issues a single bounded health check against
// {baseURL}/api/health and returns the resulting state.
//
// The tracker transitions to testing immediately, then to connected on
// any 2xx response or to error on a non-success status, a network
// failure, or a timeout. One probe produces exactly one terminal
// transition; there is no internal retry.
func (m *Monitor) Probe(ctx context.Context, baseURL string) State {
	m.tracker.Set(StateTesting)

	url := strings.TrimRight(baseURL, "/") + "/api/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		m.tracker.Set(StateError)
		return StateError
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.tracker.Set(StateError)
		return StateError
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		m.tracker.Set(StateError)
		return StateError
	}

	m.tracker.Set(StateConnected)
	return StateConnected
}

// TryProbe is Probe behind the rate limiter, for user-triggered
// re-checks. It returns false without touching the tracker when a
// probe ran too recently.
func (m *Monitor) TryProbe(ctx context.Context, baseURL string) (State, bool) {
	if !m.limiter.Allow() {
		return m.tracker.Get(), false
	}
	return m.Probe(ctx, baseURL), true
}

// State returns the tracker's last-known state.
func (m *Monitor) State() State {
	return m.tracker.Get()
}
