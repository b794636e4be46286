package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/nav"
	cs "github.com/okbaghel/devfolio/web/components"
)

type toggleResponse struct {
	MenuOpen bool `json:"menuOpen"`
}

type navigateResponse struct {
	Target   string `json:"target,omitempty"`
	Scrolled bool   `json:"scrolled"`
	MenuOpen bool   `json:"menuOpen"`
}

// ToggleHandle flips the visitor's mobile menu. Scripts get the new panel (or
// JSON); a plain form submit is sent back to the page.
func (s *ServerHandler) ToggleHandle(w http.ResponseWriter, r *http.Request) {
	_, controller := s.Sessions.Controller(w, r)
	open := controller.Toggle()

	switch {
	case wantsJSON(r):
		respondJSON(w, http.StatusOK, toggleResponse{MenuOpen: open})
	case wantsFragment(r):
		if err := SafeRenderTemplate(cs.MobileNav(nav.Links(""), open), w); err != nil {
			slog.ErrorContext(logging.WithPackage(r.Context(), "routes"), "Failed to render menu", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// NavigateHandle scrolls the visitor to a section and closes the menu. An
// unknown section is a no-op answered with 204.
func (s *ServerHandler) NavigateHandle(w http.ResponseWriter, r *http.Request) {
	_, controller := s.Sessions.Controller(w, r)

	anchors := nav.PageAnchors()
	scrolled := controller.Navigate(anchors, chi.URLParam(r, "section"))

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, navigateResponse{
			Target:   anchors.Target,
			Scrolled: scrolled,
			MenuOpen: controller.MenuOpen(),
		})

		return
	}

	if !scrolled {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	http.Redirect(w, r, "/#"+anchors.Target, http.StatusSeeOther)
}
