package routes_test

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/okbaghel/devfolio/content"
	"github.com/okbaghel/devfolio/model"
	"github.com/okbaghel/devfolio/typing"
	"github.com/okbaghel/devfolio/web/routes"
	"github.com/okbaghel/devfolio/web/session"
)

// ProfileMock is a simple manual mock implementation of routes.ProfileSource.
type ProfileMock struct {
	ReturnProfile *model.Profile
	CallCount     int
}

func (m *ProfileMock) Profile() *model.Profile {
	m.CallCount++

	return m.ReturnProfile
}

// idleClock hands out timers that never fire, so a typewriter stays on its
// first pending step until it is disposed.
type idleClock struct {
	timers chan *idleTimer
}

func newIdleClock() *idleClock {
	return &idleClock{timers: make(chan *idleTimer, 4)}
}

func (c *idleClock) NewTimer(time.Duration) typing.Timer {
	t := &idleTimer{c: make(chan time.Time), stopped: make(chan struct{})}
	c.timers <- t

	return t
}

type idleTimer struct {
	c       chan time.Time
	stopped chan struct{}
}

func (t *idleTimer) C() <-chan time.Time { return t.c }

func (t *idleTimer) Stop() bool {
	select {
	case <-t.stopped:
		return false
	default:
		close(t.stopped)

		return true
	}
}

func setupHandler() (*routes.ServerHandler, *ProfileMock) {
	mock := &ProfileMock{ReturnProfile: content.Default()}

	return &routes.ServerHandler{
		Content:     mock,
		Sessions:    session.NewStore(time.Hour),
		TypingDelay: time.Millisecond,
	}, mock
}

// router mounts the handlers the way the server does, so that URL params resolve.
func router(h *routes.ServerHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.HomeHandle)
	r.Post("/nav/toggle", h.ToggleHandle)
	r.Get("/nav/{section}", h.NavigateHandle)
	r.Get(routes.TerminalPath, h.TerminalSocket)
	r.Get("/api/projects", h.ListProjects)
	r.Get("/api/projects/{id}", h.GetProject)
	r.Get("/api/skills", h.ListSkills)
	r.Get("/api/health", h.Health)

	return r
}
