package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionIDSymmetric(t *testing.T) {
	assert.Equal(t, SessionID("u1", "u2"), SessionID("u2", "u1"))
	assert.NotEqual(t, SessionID("u1", "u2"), SessionID("u1", "u3"))
}

func TestStartIdempotent(t *testing.T) {
	tracker := NewSessionTracker()

	id1 := tracker.Start("u1", "u2")
	id2 := tracker.Start("u2", "u1")

	assert.Equal(t, id1, id2)
	assert.True(t, tracker.Active("u1", "u2"))
	assert.True(t, tracker.Active("u2", "u1"))
}

func TestEnd(t *testing.T) {
	tracker := NewSessionTracker()
	tracker.Start("u1", "u2")

	tracker.End("u2", "u1")

	assert.False(t, tracker.Active("u1", "u2"))
}

func TestEndAllFor(t *testing.T) {
	tracker := NewSessionTracker()
	tracker.Start("u1", "u2")
	tracker.Start("u1", "u3")
	tracker.Start("u2", "u3")

	tracker.EndAllFor("u1")

	assert.False(t, tracker.Active("u1", "u2"))
	assert.False(t, tracker.Active("u1", "u3"))
	assert.True(t, tracker.Active("u2", "u3"))
}
