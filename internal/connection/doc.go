// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package connection tracks backend reachability.
//
// A Tracker holds the last-known connection state; it is injected into
// both the health Monitor and the chat client so every request outcome
// is reflected in one place. The state is advisory and display-only -
// it never gates a chat request.
//
// # Usage
//
//	tracker := connection.NewTracker()
//	monitor := connection.NewMonitor(tracker)
//	state := monitor.Probe(ctx, baseURL)
package connection
