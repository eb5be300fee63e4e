package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/models"
)

func TestMessagesBetween(t *testing.T) {
	st := newTestStore(t)
	a := createTestUser(t, st, "alice", models.RoleSeeker)
	b := createTestUser(t, st, "bob", models.RoleSeeker)

	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: a.ID, Receiver: b.ID, Content: "hi"}))
	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: b.ID, Receiver: a.ID, Content: "hello"}))

	msgs, err := st.MessagesBetween(a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "hello", msgs[1].Content)

	// Symmetric regardless of argument order
	reversed, err := st.MessagesBetween(b.ID, a.ID)
	require.NoError(t, err)
	assert.Len(t, reversed, 2)
}

func TestUnreadCounts(t *testing.T) {
	st := newTestStore(t)
	a := createTestUser(t, st, "alice", models.RoleSeeker)
	b := createTestUser(t, st, "bob", models.RoleSeeker)
	c := createTestUser(t, st, "carol", models.RoleSeeker)

	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: a.ID, Receiver: b.ID, Content: "one"}))
	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: a.ID, Receiver: b.ID, Content: "two"}))
	require.NoError(t, st.CreateMessage(&models.ChatMessage{Sender: c.ID, Receiver: b.ID, Content: "three"}))

	fromA, err := st.CountUnreadFrom(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fromA)

	total, err := st.CountUnread(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	require.NoError(t, st.MarkMessagesRead(a.ID, b.ID))

	fromA, err = st.CountUnreadFrom(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fromA)

	total, err = st.CountUnread(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
