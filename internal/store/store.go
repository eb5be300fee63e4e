package store

import "github.com/questify/questify/internal/models"

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	SearchUsers(query string) ([]models.User, error)
	UpdateProfilePicture(userID, path string) error

	// Quest operations
	CreateQuest(quest *models.Quest) error
	GetQuest(id string) (*models.Quest, error)
	ListQuests() ([]models.Quest, error)
	UpdateQuest(quest *models.Quest) error
	DeleteQuest(id string) error

	// Submission operations
	CreateSubmission(sub *models.Submission) error
	GetSubmission(id string) (*models.Submission, error)
	ListSubmissions(questID string) ([]models.Submission, error)
	SetSubmissionStatus(id, status string) error

	// Coin operations
	AwardCoins(userID string, delta int, reason string) error
	GetCoinBalance(userID string) (int, error)
	ListCoinTransactions(userID string) ([]models.CoinTransaction, error)

	// Message operations
	CreateMessage(msg *models.ChatMessage) error
	MessagesBetween(userA, userB string) ([]models.ChatMessage, error)
	CountUnreadFrom(sender, receiver string) (int, error)
	CountUnread(receiver string) (int, error)
	MarkMessagesRead(sender, receiver string) error

	// Certificate operations
	CreateCertificate(cert *models.Certificate) error
	ListCertificates(userID string) ([]models.Certificate, error)

	// Notification operations
	CreateNotification(n *models.Notification) error
	ListNotifications(userID string) ([]models.Notification, error)
	MarkNotificationsRead(userID string) error
}
