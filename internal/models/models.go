package models

import (
	"encoding/json"
	"time"
)

// User roles.
const (
	RoleHirer  = "hirer"
	RoleSeeker = "seeker"
)

// Quest lifecycle states.
const (
	QuestOpen   = "open"
	QuestClosed = "closed"
)

// Submission lifecycle states.
const (
	SubmissionPending  = "pending"
	SubmissionAccepted = "accepted"
	SubmissionRejected = "rejected"
)

// Notification type tags.
const (
	NotificationLogin       = "login"
	NotificationCertificate = "certificate"
	NotificationQuest       = "quest"
	NotificationMessage     = "message"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Role           string    `json:"role"`
	Coins          int       `json:"coins"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Quest struct {
	ID          string    `json:"id"`
	HirerID     string    `json:"hirer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int       `json:"reward"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Submission struct {
	ID        string    `json:"id"`
	QuestID   string    `json:"quest_id"`
	SolverID  string    `json:"solver_id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Certificate struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

type CoinTransaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is the unit the relay routes and the store persists.
type ChatMessage struct {
	ID        string    `json:"id,omitempty"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// Notification is pushed to clients when they are online and read back
// over REST when they are not.
type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	CoinDelta int             `json:"coin_delta,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}
