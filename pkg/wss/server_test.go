package wss

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	connected    chan Client
	disconnected chan Client
	messages     chan string
}

func newRecordingSubscriber() *recordingSubscriber {
	return &recordingSubscriber{
		connected:    make(chan Client, 4),
		disconnected: make(chan Client, 4),
		messages:     make(chan string, 4),
	}
}

func (r *recordingSubscriber) OnConnect(conn Client)    { r.connected <- conn }
func (r *recordingSubscriber) OnDisconnect(conn Client) { r.disconnected <- conn }
func (r *recordingSubscriber) OnMessage(_ Client, msg []byte) {
	r.messages <- string(msg)
}

func startServer(t *testing.T, cfg *Config) (*httptest.Server, *recordingSubscriber) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(ctx, cfg, logger)
	sub := newRecordingSubscriber()
	srv.Register(sub)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, sub
}

func wsURL(ts *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + query
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	var zero T
	return zero
}

func TestServer_Lifecycle(t *testing.T) {
	ts, sub := startServer(t, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "?user_id=u1"), nil)
	require.NoError(t, err)
	defer conn.Close()

	client := waitFor(t, sub.connected)
	assert.NotEmpty(t, client.ID())
	assert.Equal(t, "u1", client.Param("user_id"))

	// Server -> Client
	require.NoError(t, client.SendMessage(map[string]string{"type": "hello"}))
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"hello"}`, string(data))

	// Client -> Server
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	assert.Equal(t, "ping", waitFor(t, sub.messages))

	// Disconnect
	require.NoError(t, conn.Close())
	gone := waitFor(t, sub.disconnected)
	assert.Equal(t, client.ID(), gone.ID())

	assert.ErrorIs(t, client.SendMessage("late"), ErrConnectionClosed)
}

func TestServer_CheckOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowedOrigins = []string{"https://game.example"}
	ts, _ := startServer(t, cfg)

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, ""), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://game.example")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, ""), header)
	require.NoError(t, err)
	conn.Close()
}

func TestServer_CheckOrigin_SameOriginByDefault(t *testing.T) {
	ts, _ := startServer(t, DefaultConfig())

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, ""), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", ts.URL)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, ""), header)
	require.NoError(t, err)
	conn.Close()
}
