// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for communicating with the
// inkbot inference backend.
//
// The protocol is a single request/response pair per turn:
//
//	POST {baseURL}/api/chat
//	  -> { "message": "...", "history": [ {role, content}, ... ] }
//	  <- { "status": "ok"|"error", "response": "...", "error": "..." }
//
// The new user message is carried in the message field; history holds
// only the turns that preceded it. There is no retry, no streaming and
// no timeout beyond the transport default.
//
// Every Send outcome is recorded in the injected connection.Tracker:
// connected on success, error on any failure.
package backend
