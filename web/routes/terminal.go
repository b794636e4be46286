package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/typing"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// TerminalSocket streams the hero typing animation. The socket is the
// widget: it mounts a typewriter on connect and disposes it when the peer
// goes away.
func (s *ServerHandler) TerminalSocket(w http.ResponseWriter, r *http.Request) {
	logCtx := logging.WithPackage(r.Context(), "terminal")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(logCtx, "WebSocket upgrade failed", "error", err)

		return
	}
	defer conn.Close()

	profile := s.Content.Profile()

	send := func(frame typing.Frame) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}

		return conn.WriteJSON(frame)
	}

	opts := []typing.Option{typing.WithOnReveal(send)}
	if s.Clock != nil {
		opts = append(opts, typing.WithClock(s.Clock))
	}

	tw := typing.New(profile.TypingText, s.typingDelay(profile), opts...)
	defer tw.Dispose()

	if err := send(tw.Frame()); err != nil {
		slog.DebugContext(logCtx, "Could not send initial frame", "error", err)

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The client never sends anything; reading only surfaces the close.
	go func() {
		defer cancel()

		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	tw.Mount(ctx)

	err = tw.Wait()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.DebugContext(logCtx, "Terminal stream stopped", "error", err, "index", tw.Index())
		}

		return
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
