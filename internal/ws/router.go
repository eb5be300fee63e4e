package ws

import (
	"go.uber.org/zap"

	"github.com/questify/questify/internal/models"
)

// Router validates, persists, and forwards chat messages.
type Router struct {
	registry *Registry
	sessions *SessionTracker
	store    Store
	log      *zap.Logger
}

func NewRouter(registry *Registry, sessions *SessionTracker, store Store, log *zap.Logger) *Router {
	return &Router{registry: registry, sessions: sessions, store: store, log: log}
}

// Route handles one inbound message frame from an authenticated connection.
// The claimed sender must match the connection's identity; a mismatch drops
// the message with no push to either side. Persistence failure aborts
// delivery entirely, so the sender's missing echo is the failure signal.
func (r *Router) Route(sender *Client, msg *models.ChatMessage) {
	if msg == nil || msg.Sender == "" || msg.Receiver == "" {
		r.log.Warn("dropping message frame with missing fields")
		return
	}
	if msg.Sender != sender.identity {
		r.log.Warn("dropping message from unauthorized sender",
			zap.String("claimed", msg.Sender),
			zap.String("authenticated", sender.identity))
		return
	}

	// Sessions are advisory: an unsolicited message starts one rather than
	// being rejected.
	r.sessions.Start(msg.Sender, msg.Receiver)
	sender.partner = msg.Receiver

	if err := r.store.CreateMessage(msg); err != nil {
		r.log.Error("message persistence failed, delivery aborted",
			zap.String("sender", msg.Sender),
			zap.String("receiver", msg.Receiver),
			zap.Error(err))
		return
	}

	payload := messageFrame(msg)
	sender.trySend(payload)
	sender.trySend(messageSentFrame(msg.ID))

	receiver := r.registry.Lookup(msg.Receiver)
	if receiver == nil {
		return
	}
	receiver.trySend(payload)

	count, err := r.store.CountUnreadFrom(msg.Sender, msg.Receiver)
	if err != nil {
		r.log.Warn("unread count query failed", zap.Error(err))
		return
	}
	receiver.trySend(unreadCountFrame(count))
}
