// Package trace tags everything that happens during one interactive session
// with a session id, so its log lines can be correlated.
package trace

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ContextKey type for context keys
type ContextKey string

const (
	// SessionIDKey is the context key for the session ID
	SessionIDKey ContextKey = "session_id"
)

// Session tracks one interactive session.
type Session struct {
	ID      string
	Started time.Time
	actions atomic.Int64
}

// StartSession creates a session and returns a context carrying its ID.
func StartSession(ctx context.Context) (context.Context, *Session) {
	s := &Session{ID: GenerateSessionID(), Started: time.Now()}
	return WithSessionID(ctx, s.ID), s
}

// Action records one menu choice.
func (s *Session) Action() {
	s.actions.Add(1)
}

// Actions returns the number of recorded menu choices.
func (s *Session) Actions() int64 {
	return s.actions.Load()
}

// Duration returns how long the session has been running.
func (s *Session) Duration() time.Duration {
	return time.Since(s.Started)
}

// LogAttrs returns the session summary as log arguments.
func (s *Session) LogAttrs() []any {
	d := s.Duration()
	return []any{
		"actions", s.Actions(),
		"duration_ms", d.Milliseconds(),
		"duration_human", d.String(),
	}
}

// GenerateSessionID creates a unique session ID for tracing
func GenerateSessionID() string {
	return "ses_" + uuid.NewString()
}

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(SessionIDKey).(string); ok {
		return id
	}
	return ""
}

// Handler adds the session ID found in the record's context to every record.
type Handler struct {
	next slog.Handler
}

func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetSessionID(ctx); id != "" {
		r = r.Clone()
		r.AddAttrs(slog.String(string(SessionIDKey), id))
	}
	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}
