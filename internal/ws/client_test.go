package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/questify/questify/internal/auth"
	"github.com/questify/questify/internal/store/sqlstore"
)

func dialTestServer(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var f map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &f))
	return f
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(frame))
}

// Full round trip over a real websocket transport: two clients
// authenticate, one sends a chat message, both see it, and the receiver
// gets an unread count.
func TestRelayEndToEnd(t *testing.T) {
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	hub := NewHub(st, tokens, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	token1, err := tokens.Issue("u1", "alice")
	require.NoError(t, err)
	token2, err := tokens.Issue("u2", "bob")
	require.NoError(t, err)

	c1 := dialTestServer(t, srv)
	c2 := dialTestServer(t, srv)

	writeFrame(t, c1, map[string]string{"type": "auth", "token": token1, "userId": "u1"})
	assert.Equal(t, "auth_success", readFrame(t, c1)["type"])

	writeFrame(t, c2, map[string]string{"type": "auth", "token": token2, "userId": "u2"})
	assert.Equal(t, "auth_success", readFrame(t, c2)["type"])

	writeFrame(t, c1, map[string]interface{}{
		"type": "message",
		"message": map[string]string{
			"sender": "u1", "receiver": "u2", "content": "hi",
		},
	})

	echo := readFrame(t, c1)
	require.Equal(t, "message", echo["type"])
	assert.Equal(t, "hi", echo["message"].(map[string]interface{})["content"])
	assert.Equal(t, "message_sent", readFrame(t, c1)["type"])

	delivered := readFrame(t, c2)
	require.Equal(t, "message", delivered["type"])
	assert.Equal(t, "hi", delivered["message"].(map[string]interface{})["content"])

	unread := readFrame(t, c2)
	require.Equal(t, "unreadCount", unread["type"])
	assert.Equal(t, float64(1), unread["count"])

	msgs, err := st.MessagesBetween("u1", "u2")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestRelayPingPong(t *testing.T) {
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	hub := NewHub(st, auth.NewTokenIssuer("test-secret", time.Hour), zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	conn := dialTestServer(t, srv)
	writeFrame(t, conn, map[string]string{"type": "ping"})
	assert.Equal(t, "pong", readFrame(t, conn)["type"])
}

func TestRelayDisconnectDeregisters(t *testing.T) {
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	hub := NewHub(st, tokens, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	token, err := tokens.Issue("u1", "alice")
	require.NoError(t, err)

	conn := dialTestServer(t, srv)
	writeFrame(t, conn, map[string]string{"type": "auth", "token": token})
	require.Equal(t, "auth_success", readFrame(t, conn)["type"])
	writeFrame(t, conn, map[string]string{"type": "start_chat", "partnerId": "u2"})
	require.Equal(t, "chat_session", readFrame(t, conn)["type"])

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.registry.Lookup("u1") == nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, hub.sessions.Active("u1", "u2"))
}
