package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okbaghel/devfolio/web/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerIsKeptPerCookie(t *testing.T) {
	store := session.NewStore(time.Hour)

	rec := httptest.NewRecorder()
	id, first := store.Controller(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	first.Toggle()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	rec = httptest.NewRecorder()
	sameID, again := store.Controller(rec, req)

	assert.Equal(t, id, sameID)
	assert.Same(t, first, again)
	assert.True(t, again.MenuOpen())
	assert.Empty(t, rec.Result().Cookies(), "known session does not reissue the cookie")
}

func TestUnknownOrMalformedCookieStartsNewSession(t *testing.T) {
	store := session.NewStore(time.Hour)

	for _, value := range []string{"not-a-uuid", "7d444840-9dc0-11d1-b245-5ffdce74fad2"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})

		rec := httptest.NewRecorder()
		id, c := store.Controller(rec, req)

		assert.NotEqual(t, value, id)
		assert.False(t, c.MenuOpen())
		assert.Len(t, rec.Result().Cookies(), 1)
	}

	assert.Equal(t, 2, store.Len())
}

func TestSweepDropsIdleSessions(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := session.NewStore(time.Minute).WithClock(func() time.Time { return now })

	store.Controller(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	now = now.Add(30 * time.Second)
	store.Controller(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
}
