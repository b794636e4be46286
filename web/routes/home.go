package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/nav"
	cs "github.com/okbaghel/devfolio/web/components"
)

// BuildRenderContext prepares the page for a visitor whose menu is in the given state.
func (s *ServerHandler) BuildRenderContext(profile *model.Profile, menuOpen bool) (*cs.RenderContext, error) {
	about, err := content.Markdown(profile.About)
	if err != nil {
		return nil, fmt.Errorf("could not render about text: %w", err)
	}

	return &cs.RenderContext{
		Profile:      profile,
		NavLinks:     nav.Links(""),
		MenuOpen:     menuOpen,
		AboutHTML:    about,
		AssetsPrefix: "/assets",
		Terminal: cs.TerminalContext{
			SocketPath: TerminalPath,
			Text:       profile.TypingText,
			DelayMs:    s.typingDelay(profile).Milliseconds(),
		},
	}, nil
}

// HomeHandle renders the whole page.
func (s *ServerHandler) HomeHandle(w http.ResponseWriter, r *http.Request) {
	sessionID, controller := s.Sessions.Controller(w, r)
	ctx := logging.AppendCtx(logging.WithPackage(r.Context(), "routes"), slog.String(logging.SessionID, sessionID))

	rc, err := s.BuildRenderContext(s.Content.Profile(), controller.MenuOpen())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if err := SafeRenderTemplate(cs.Page(rc), w); err != nil {
		slog.ErrorContext(ctx, "Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
