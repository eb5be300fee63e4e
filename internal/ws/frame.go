package ws

import (
	"encoding/json"

	"github.com/questify/questify/internal/models"
)

// Inbound frame types.
const (
	frameAuth      = "auth"
	frameStartChat = "start_chat"
	frameJoinChat  = "join_chat"
	frameMessage   = "message"
	frameEndChat   = "end_chat"
	framePing      = "ping"
)

// Quest broadcast actions, used verbatim as outbound type tags.
const (
	QuestCreate = "CREATE"
	QuestUpdate = "UPDATE"
	QuestDelete = "DELETE"
)

// Frame is a single inbound client frame.
type Frame struct {
	Type      string              `json:"type"`
	Token     string              `json:"token,omitempty"`
	UserID    string              `json:"userId,omitempty"`
	PartnerID string              `json:"partnerId,omitempty"`
	Message   *models.ChatMessage `json:"message,omitempty"`
}

func marshalFrame(v interface{}) []byte {
	b, _ := json.Marshal(v)
	return b
}

func authSuccessFrame(userID string) []byte {
	return marshalFrame(map[string]interface{}{"type": "auth_success", "userId": userID})
}

func chatSessionFrame(sessionID string, participants []string) []byte {
	return marshalFrame(map[string]interface{}{"type": "chat_session", "sessionId": sessionID, "participants": participants})
}

func chatJoinedFrame(partnerID string) []byte {
	return marshalFrame(map[string]interface{}{"type": "chat_joined", "partnerId": partnerID})
}

func messageFrame(msg *models.ChatMessage) []byte {
	return marshalFrame(map[string]interface{}{"type": "message", "message": msg})
}

func messageSentFrame(messageID string) []byte {
	return marshalFrame(map[string]interface{}{"type": "message_sent", "messageId": messageID})
}

func unreadCountFrame(count int) []byte {
	return marshalFrame(map[string]interface{}{"type": "unreadCount", "count": count})
}

func notificationFrame(n *models.Notification) []byte {
	return marshalFrame(map[string]interface{}{"type": "notification", "notification": n})
}

func questFrame(action string, quest *models.Quest) []byte {
	return marshalFrame(map[string]interface{}{"type": action, "quest": quest})
}

func pongFrame() []byte {
	return marshalFrame(map[string]interface{}{"type": "pong"})
}
