// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package connection

import "sync"

// =============================================================================
// CONNECTION STATE
// =============================================================================

// State represents the last-known reachability of the backend.
type State int

const (
	// StateUnknown means no probe or request has completed yet.
	StateUnknown State = iota
	// StateTesting means a probe is currently running.
	StateTesting
	// StateConnected means the last probe or request succeeded.
	StateConnected
	// StateError means the last probe or request failed.
	StateError
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateTesting:
		return "testing"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// =============================================================================
// STATE TRACKER
// =============================================================================

// Tracker holds the process-wide connection state.
//
// Both the Monitor and the chat client write to it; writes are
// serialized by a mutex and the last write wins. Construct one Tracker
// per process and inject it rather than reaching for a global.
type Tracker struct {
	mu    sync.RWMutex
	state State
}

// NewTracker creates a Tracker in the unknown state.
func NewTracker() *Tracker {
	return &Tracker{state: StateUnknown}
}

// Set records a new connection state.
func (t *Tracker) Set(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

// Get returns the last recorded connection state.
func (t *Tracker) Get() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}
