package ws

import (
	"go.uber.org/zap"

	"github.com/questify/questify/internal/models"
)

// Broadcaster pushes server-side events to connected clients. Delivery is
// "push if online": the notification is always persisted, and an offline
// target catches up over the REST read path on next login.
type Broadcaster struct {
	registry *Registry
	store    Store
	log      *zap.Logger
}

func NewBroadcaster(registry *Registry, store Store, log *zap.Logger) *Broadcaster {
	return &Broadcaster{registry: registry, store: store, log: log}
}

// Push persists the notification for userID and sends it to their
// connection if one is registered. Never retries, never queues.
func (b *Broadcaster) Push(userID string, n *models.Notification) error {
	n.UserID = userID
	if err := b.store.CreateNotification(n); err != nil {
		// Producers treat pushes as fire-and-forget, so a lost
		// notification must at least leave a trail here
		b.log.Warn("notification persistence failed",
			zap.String("user", userID), zap.Error(err))
		return err
	}
	if c := b.registry.Lookup(userID); c != nil {
		if !c.trySend(notificationFrame(n)) {
			b.log.Debug("notification push dropped", zap.String("user", userID))
		}
	}
	return nil
}

// BroadcastQuest fans a quest mutation out to every live connection with no
// filtering; all connected clients see every quest change.
func (b *Broadcaster) BroadcastQuest(action string, quest *models.Quest) {
	b.registry.Broadcast(nil, questFrame(action, quest))
}
