package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/models"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	st, err := New("sqlite3", ":memory:")
	require.NoError(t, err)
	return st
}

func createTestUser(t *testing.T, st *SQLStore, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, st.CreateUser(user))
	return user
}

func TestNewBadDriver(t *testing.T) {
	_, err := New("nosuchdriver", ":memory:")
	require.Error(t, err)
}
