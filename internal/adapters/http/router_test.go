package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/okatenko/teleop/internal/app"
	"github.com/okatenko/teleop/internal/config"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.Authority) {
	t.Helper()
	cfg := &config.Config{
		Mode:       "release",
		StaticPath: t.TempDir(),
		ReadLimit:  32768,
		Secret:     "test-secret",
	}
	auth := app.NewAuthority()
	r := SetupRouter(context.Background(), cfg, auth)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, auth
}

func dialSignal(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/signal"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func sendEvent(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func TestSignalRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	bot := dialSignal(t, srv)
	sendEvent(t, bot, map[string]any{"type": "register_bot", "botId": "b1", "name": "Rover"})
	ev := readEvent(t, bot)
	require.Equal(t, "bot_list_update", ev["type"])
	require.Len(t, ev["bots"].([]any), 1)

	op := dialSignal(t, srv)
	sendEvent(t, op, map[string]any{"type": "register_operator", "operatorId": "o1", "name": "Alice"})
	ev = readEvent(t, op)
	require.Equal(t, "bot_list", ev["type"])
	require.Len(t, ev["bots"].([]any), 1)

	sendEvent(t, op, map[string]any{"type": "request_control", "botId": "b1"})
	ev = readEvent(t, op)
	require.Equal(t, "control_granted", ev["type"])
	require.Equal(t, "b1", ev["botId"])

	ev = readEvent(t, bot)
	require.Equal(t, "controller_connected", ev["type"])
	controllerID := ev["controllerId"].(string)
	require.NotEmpty(t, controllerID)

	sendEvent(t, op, map[string]any{"type": "motor_command", "botId": "b1", "command": map[string]any{"dir": "fwd"}})
	ev = readEvent(t, bot)
	require.Equal(t, "motor_command", ev["type"])
	require.Equal(t, controllerID, ev["from"])
	require.Equal(t, "fwd", ev["command"].(map[string]any)["dir"])

	sendEvent(t, op, map[string]any{"type": "ping"})
	ev = readEvent(t, op)
	require.Equal(t, "pong", ev["type"])
}

func TestSignalDeniesUnknownBot(t *testing.T) {
	srv, _ := newTestServer(t)

	op := dialSignal(t, srv)
	sendEvent(t, op, map[string]any{"type": "request_control", "botId": "ghost"})
	ev := readEvent(t, op)
	require.Equal(t, "control_denied", ev["type"])
	require.Equal(t, "not found", ev["reason"])
}

func TestSignalRejectsBadPayload(t *testing.T) {
	srv, _ := newTestServer(t)

	conn := dialSignal(t, srv)
	sendEvent(t, conn, map[string]any{"type": "join_viewer"})
	ev := readEvent(t, conn)
	require.Equal(t, "error", ev["type"])
	require.Equal(t, "bad payload", ev["message"])
}

func TestRestBotListing(t *testing.T) {
	srv, _ := newTestServer(t)

	bot := dialSignal(t, srv)
	sendEvent(t, bot, map[string]any{"type": "register_bot", "botId": "b1", "name": "Rover"})
	readEvent(t, bot)

	resp, err := srv.Client().Get(srv.URL + "/api/bots")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Bots []struct {
			ID            string `json:"id"`
			HasController bool   `json:"hasController"`
		} `json:"bots"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Bots, 1)
	require.Equal(t, "b1", body.Bots[0].ID)

	notFound, err := srv.Client().Get(srv.URL + "/api/bots/ghost")
	require.NoError(t, err)
	defer notFound.Body.Close()
	require.Equal(t, 404, notFound.StatusCode)
}

func TestDisconnectFreesControl(t *testing.T) {
	srv, auth := newTestServer(t)

	bot := dialSignal(t, srv)
	sendEvent(t, bot, map[string]any{"type": "register_bot", "botId": "b1", "name": "Rover"})
	readEvent(t, bot)

	op := dialSignal(t, srv)
	sendEvent(t, op, map[string]any{"type": "register_operator", "operatorId": "o1", "name": "Alice"})
	readEvent(t, op)
	sendEvent(t, op, map[string]any{"type": "request_control", "botId": "b1"})
	readEvent(t, op)
	readEvent(t, bot)

	require.NoError(t, op.Close())

	ev := readEvent(t, bot)
	require.Equal(t, "controller_disconnected", ev["type"])

	require.Eventually(t, func() bool {
		info, ok := auth.Bot("b1")
		return ok && !info.HasController
	}, 2*time.Second, 10*time.Millisecond)
}
