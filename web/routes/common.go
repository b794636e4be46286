package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/typing"
	"github.com/okbaghel/devfolio/web/session"
)

// TerminalPath is where the hero terminal streams its reveal from.
const TerminalPath = "/ws/terminal"

// ProfileSource returns the profile currently served.
type ProfileSource interface {
	Profile() *model.Profile
}

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Content  ProfileSource
	Sessions *session.Store
	// Clock drives the terminal typewriters. Nil means wall-clock time.
	Clock typing.Clock
	// TypingDelay overrides the profile's delay when positive.
	TypingDelay time.Duration
}

func (s *ServerHandler) typingDelay(p *model.Profile) time.Duration {
	if s.TypingDelay > 0 {
		return s.TypingDelay
	}

	return p.TypingDelay
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// wantsJSON reports whether the caller is the page script rather than a
// plain form submit or link.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// wantsFragment reports whether the caller swaps the response into the page.
func wantsFragment(r *http.Request) bool {
	return r.Header.Get("X-Fragment") == "true"
}
