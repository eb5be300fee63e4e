package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/models"
)

func TestMessageHistoryMarksRead(t *testing.T) {
	st, tokens, _ := newTestEnv(t)
	alice := createUser(t, st, "alice", models.RoleSeeker)
	bob := createUser(t, st, "bob", models.RoleSeeker)
	h := &MessageHandler{Store: st}

	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: bob.ID, Receiver: alice.ID, Content: "hi"}))
	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: alice.ID, Receiver: bob.ID, Content: "hello"}))

	req := authedRequest(t, tokens, alice.ID, "GET", "/messages/"+bob.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"partnerId": bob.ID})
	rr := serve(tokens, h.History, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var msgs []models.ChatMessage
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&msgs))
	assert.Len(t, msgs, 2)

	// Bob's messages to Alice are now read
	count, err := st.CountUnreadFrom(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Alice's messages to Bob are untouched
	count, err = st.CountUnreadFrom(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUnreadTotal(t *testing.T) {
	st, tokens, _ := newTestEnv(t)
	alice := createUser(t, st, "alice", models.RoleSeeker)
	bob := createUser(t, st, "bob", models.RoleSeeker)
	h := &MessageHandler{Store: st}

	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: bob.ID, Receiver: alice.ID, Content: "one"}))
	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: bob.ID, Receiver: alice.ID, Content: "two"}))

	req := authedRequest(t, tokens, alice.ID, "GET", "/messages/unread", nil)
	rr := serve(tokens, h.Unread, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]int
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp["count"])
}

func TestNotificationsReadPath(t *testing.T) {
	st, tokens, notifier := newTestEnv(t)
	alice := createUser(t, st, "alice", models.RoleSeeker)
	h := &NotificationHandler{Store: st}

	require.NoError(t, notifier.Push(alice.ID, &models.Notification{
		Type: models.NotificationQuest,
		Text: "while you were away",
	}))

	req := authedRequest(t, tokens, alice.ID, "GET", "/notifications", nil)
	rr := serve(tokens, h.List, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var notifs []models.Notification
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&notifs))
	require.Len(t, notifs, 1)
	assert.False(t, notifs[0].Read)

	req = authedRequest(t, tokens, alice.ID, "POST", "/notifications/read", nil)
	rr = serve(tokens, h.MarkRead, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	notifs, err := st.ListNotifications(alice.ID)
	require.NoError(t, err)
	assert.True(t, notifs[0].Read)
}
