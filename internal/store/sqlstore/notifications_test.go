package sqlstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/models"
)

func TestNotifications(t *testing.T) {
	st := newTestStore(t)
	user := createTestUser(t, st, "alice", models.RoleSeeker)

	payload, _ := json.Marshal(map[string]string{"submission_id": "s1"})
	require.NoError(t, st.CreateNotification(&models.Notification{
		UserID:  user.ID,
		Type:    models.NotificationQuest,
		Text:    "New submission",
		Payload: payload,
	}))
	require.NoError(t, st.CreateNotification(&models.Notification{
		UserID:    user.ID,
		Type:      models.NotificationQuest,
		Text:      "Accepted",
		CoinDelta: 50,
	}))

	notifs, err := st.ListNotifications(user.ID)
	require.NoError(t, err)
	require.Len(t, notifs, 2)

	for _, n := range notifs {
		assert.False(t, n.Read)
	}
	// Newest first
	assert.Equal(t, 50, notifs[0].CoinDelta)
	assert.JSONEq(t, `{"submission_id":"s1"}`, string(notifs[1].Payload))

	require.NoError(t, st.MarkNotificationsRead(user.ID))

	notifs, err = st.ListNotifications(user.ID)
	require.NoError(t, err)
	for _, n := range notifs {
		assert.True(t, n.Read)
	}
}
