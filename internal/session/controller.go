// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/inkbot-tui/internal/backend"
	"github.com/jeranaias/inkbot-tui/internal/model"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrEmptyInput is returned when the submitted text is empty
	// after trimming.
	ErrEmptyInput = errors.New("input is empty")

	// ErrBusy is returned when a turn is already in flight.
	ErrBusy = errors.New("a request is already in flight")

	// ErrEmptyTranscript is returned when saving or exporting an
	// empty session.
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// =============================================================================
// TITLE DERIVATION
// =============================================================================

// titleLimit is the number of characters kept from the first message.
const titleLimit = 50

// defaultTitle names conversations whose first message is absent.
const defaultTitle = "New Conversation"

// deriveTitle builds a record title from the first message content.
// The ellipsis is always appended, matching how saved conversations
// have always been named.
func deriveTitle(msgs []model.Message) string {
	if len(msgs) == 0 || msgs[0].Content == "" {
		return defaultTitle
	}
	runes := []rune(msgs[0].Content)
	if len(runes) > titleLimit {
		runes = runes[:titleLimit]
	}
	return string(runes) + "..."
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller holds the active conversation and serializes all
// mutations behind one mutex.
type Controller struct {
	mu sync.Mutex

	// Session state. An empty activeID means the session has not
	// been saved; the next Save mints a fresh record.
	activeID string
	title    string
	messages []model.Message

	// inFlight guards against concurrent turns.
	inFlight bool

	// baseURL is runtime-editable.
	baseURL string

	store  storage.Store
	client *backend.Client
}

// NewController creates a controller in the Empty state.
func NewController(store storage.Store, client *backend.Client, baseURL string) *Controller {
	return &Controller{
		store:   store,
		client:  client,
		baseURL: baseURL,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns a snapshot of the transcript.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.CloneMessages(c.messages)
}

// ActiveID returns the id of the saved record backing this session,
// or "" for an unsaved session.
func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// InFlight reports whether a turn is currently pending.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// BaseURL returns the current backend base URL.
func (c *Controller) BaseURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL
}

// SetBaseURL updates the backend base URL for subsequent turns.
func (c *Controller) SetBaseURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimSpace(url)
}

// =============================================================================
// TURN SUBMISSION
// =============================================================================

// SubmitTurn submits one user turn and appends the outcome.
//
// The user message is appended first and never rolled back. On success
// the assistant reply follows it; on failure a diagnostic assistant
// message summarizing the cause and the attempted URL follows it
// instead, and the error is also returned for callers that want it.
// Either way the transcript gains exactly two messages.
func (c *Controller) SubmitTurn(ctx context.Context, text string) (model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, ErrEmptyInput
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return model.Message{}, ErrBusy
	}
	c.inFlight = true

	// History sent to the backend excludes the message being
	// submitted; it travels separately.
	history := model.CloneMessages(c.messages)
	c.messages = append(c.messages, model.NewUserMessage(text))
	baseURL := c.baseURL
	c.mu.Unlock()

	reply, err := c.client.Send(ctx, baseURL, text, history)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		diag := model.NewAssistantMessage(diagnosticContent(err, baseURL))
		c.messages = append(c.messages, diag)
		return diag, err
	}

	msg := model.NewAssistantMessage(reply)
	c.messages = append(c.messages, msg)
	return msg, nil
}

// diagnosticContent renders a communication failure as an inline
// assistant message with remediation hints.
func diagnosticContent(err error, baseURL string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Connection Error: %v\n\n", err))
	sb.WriteString("Troubleshooting steps:\n")
	sb.WriteString("1. Verify your backend is running\n")
	sb.WriteString(fmt.Sprintf("2. Check the API URL: %s\n", baseURL))
	sb.WriteString(fmt.Sprintf("3. Test the health endpoint: %s/api/health", baseURL))
	return sb.String()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Save persists the session.
//
// On first save it mints a fresh id, derives the title from the first
// message, and prepends a new record. Subsequent saves update the
// existing record in place with a fresh timestamp. The title is never
// re-derived.
func (c *Controller) Save() (storage.ConversationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.messages) == 0 {
		return storage.ConversationRecord{}, ErrEmptyTranscript
	}

	if c.activeID == "" {
		c.activeID = uuid.NewString()
		c.title = deriveTitle(c.messages)
	}

	rec := storage.ConversationRecord{
		ID:        c.activeID,
		Title:     c.title,
		Messages:  model.CloneMessages(c.messages),
		Timestamp: time.Now(),
	}

	if err := c.store.Save(rec); err != nil {
		return storage.ConversationRecord{}, err
	}
	return rec, nil
}

// Load replaces the session with a stored record wholesale. Unsaved
// changes to the previous session are discarded.
func (c *Controller) Load(rec storage.ConversationRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeID = rec.ID
	c.title = rec.Title
	c.messages = model.CloneMessages(rec.Messages)
}

// StartNew resets to the Empty state, discarding unsaved changes.
func (c *Controller) StartNew() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeID = ""
	c.title = ""
	c.messages = nil
}

// Delete removes a record from the store. Deleting the active record
// also resets the session to Empty.
func (c *Controller) Delete(id string) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeID == id {
		c.activeID = ""
		c.title = ""
		c.messages = nil
	}
	return nil
}
