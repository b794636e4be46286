// Package session keeps one navigation controller per browser.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okbaghel/devfolio/nav"
)

const CookieName = "devfolio_session"

type entry struct {
	nav      *nav.Controller
	lastSeen time.Time
}

// Store maps session cookies to navigation controllers. Idle sessions are
// dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now

	return s
}

// Controller returns the caller's controller, starting a session (and setting
// the cookie) when the request carries none or an unknown one.
func (s *Store) Controller(w http.ResponseWriter, r *http.Request) (string, *nav.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := cookieID(r); ok {
		if e, ok := s.sessions[id]; ok {
			e.lastSeen = s.now()

			return id, e.nav
		}
	}

	id := uuid.NewString()
	e := &entry{nav: nav.NewController(), lastSeen: s.now()}
	s.sessions[id] = e

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, e.nav
}

func cookieID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}

	return c.Value, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the ttl and returns how many.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0

	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
