package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/questify/questify/internal/models"
)

// Store is the slice of persistence the relay needs. *sqlstore.SQLStore
// satisfies it.
type Store interface {
	CreateMessage(msg *models.ChatMessage) error
	CountUnreadFrom(sender, receiver string) (int, error)
	CreateNotification(n *models.Notification) error
}

// TokenVerifier turns a bearer credential into a user identity.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Hub owns the connection registry, session tracker, router, and
// broadcaster, and dispatches inbound frames by type tag. One hub per
// process; all live-connection state is lost on restart.
type Hub struct {
	registry *Registry
	sessions *SessionTracker
	router   *Router
	notifier *Broadcaster
	verifier TokenVerifier
	log      *zap.Logger
}

func NewHub(store Store, verifier TokenVerifier, log *zap.Logger) *Hub {
	registry := NewRegistry()
	sessions := NewSessionTracker()
	return &Hub{
		registry: registry,
		sessions: sessions,
		router:   NewRouter(registry, sessions, store, log),
		notifier: NewBroadcaster(registry, store, log),
		verifier: verifier,
		log:      log,
	}
}

// Notifier exposes the broadcaster for one-shot producers (the REST
// handlers push through it after their own writes complete).
func (h *Hub) Notifier() *Broadcaster {
	return h.notifier
}

// handleFrame dispatches one inbound frame. Every failure here is terminal
// for the frame only; nothing closes the connection except the transport.
func (h *Hub) handleFrame(c *Client, raw []byte) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		h.log.Warn("dropping malformed frame", zap.Error(err))
		return
	}

	switch f.Type {
	case frameAuth:
		h.handleAuth(c, &f)
	case framePing:
		// Liveness probe, no other side effect.
		c.trySend(pongFrame())
	case frameStartChat, frameJoinChat:
		if c.identity == "" {
			return
		}
		if f.PartnerID == "" {
			h.log.Warn("dropping chat frame without partnerId", zap.String("type", f.Type))
			return
		}
		c.partner = f.PartnerID
		sessionID := h.sessions.Start(c.identity, f.PartnerID)
		if f.Type == frameJoinChat {
			c.trySend(chatJoinedFrame(f.PartnerID))
		} else {
			c.trySend(chatSessionFrame(sessionID, []string{c.identity, f.PartnerID}))
		}
	case frameMessage:
		if c.identity == "" {
			// Unauthenticated connections never reach the router.
			return
		}
		h.router.Route(c, f.Message)
	case frameEndChat:
		if c.identity == "" || c.partner == "" {
			return
		}
		h.sessions.End(c.identity, c.partner)
		c.partner = ""
	default:
		h.log.Warn("ignoring unknown frame type", zap.String("type", f.Type))
	}
}

func (h *Hub) handleAuth(c *Client, f *Frame) {
	identity, err := h.verifier.Verify(f.Token)
	if err != nil {
		// No error reply: a rejected auth is indistinguishable from a
		// dropped packet, so token validity cannot be probed.
		h.log.Warn("rejecting auth frame", zap.Error(err))
		return
	}
	if f.UserID != "" && f.UserID != identity {
		h.log.Debug("auth frame userId differs from token subject",
			zap.String("claimed", f.UserID), zap.String("subject", identity))
	}
	// Last authentication wins: a connection holds one identity at a time,
	// so re-authenticating releases the previous mapping
	if c.identity != "" && c.identity != identity {
		h.registry.DeregisterClient(c.identity, c)
	}
	c.identity = identity
	h.registry.Register(identity, c)
	c.trySend(authSuccessFrame(identity))
}

// disconnect tears down the connection's relay state after the transport
// closes. Frames for this identity stop being deliverable from here on.
func (h *Hub) disconnect(c *Client) {
	c.close()
	if c.identity == "" {
		return
	}
	h.sessions.EndAllFor(c.identity)
	h.registry.DeregisterClient(c.identity, c)
}
