package routes_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/okbaghel/devfolio/typing"
	"github.com/okbaghel/devfolio/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTerminal(t *testing.T, h *routes.ServerHandler) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(router(h))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + routes.TerminalPath

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestTerminalSocketStreamsPrefixes(t *testing.T) {
	h, mock := setupHandler()
	mock.ReturnProfile.TypingText = "ready"

	conn := dialTerminal(t, h)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var frames []typing.Frame

	for {
		var frame typing.Frame
		require.NoError(t, conn.ReadJSON(&frame))

		frames = append(frames, frame)
		if frame.Done {
			break
		}
	}

	require.Len(t, frames, 6)

	for i, frame := range frames {
		assert.Equal(t, "ready"[:i], frame.Text)
		assert.Equal(t, i, frame.Index)
	}

	// The server closes the stream once everything is shown.
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestTerminalSocketDisposesOnClose(t *testing.T) {
	h, _ := setupHandler()
	clock := newIdleClock()
	h.Clock = clock

	conn := dialTerminal(t, h)

	var first typing.Frame
	require.NoError(t, conn.ReadJSON(&first))
	assert.Empty(t, first.Text)
	assert.False(t, first.Done)

	var pending *idleTimer
	select {
	case pending = <-clock.timers:
	case <-time.After(5 * time.Second):
		t.Fatal("typewriter never scheduled a step")
	}

	require.NoError(t, conn.Close())

	select {
	case <-pending.stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("pending timer was not released after the socket closed")
	}

	select {
	case extra := <-clock.timers:
		t.Fatalf("unexpected timer scheduled after dispose: %v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}
