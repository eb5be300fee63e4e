package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateMessage(msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	query := s.rebind("INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, msg.ID, msg.Sender, msg.Receiver, msg.Content, msg.Read, msg.Timestamp)
	return err
}

// MessagesBetween returns the full pair history in insertion order.
func (s *SQLStore) MessagesBetween(userA, userB string) ([]models.ChatMessage, error) {
	query := s.rebind(`
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at ASC
	`)
	rows, err := s.db.Query(query, userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.Content, &m.Read, &m.Timestamp); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (s *SQLStore) CountUnreadFrom(sender, receiver string) (int, error) {
	var count int
	query := s.rebind("SELECT COUNT(*) FROM messages WHERE sender_id = ? AND receiver_id = ? AND is_read = FALSE")
	err := s.db.QueryRow(query, sender, receiver).Scan(&count)
	return count, err
}

func (s *SQLStore) CountUnread(receiver string) (int, error) {
	var count int
	query := s.rebind("SELECT COUNT(*) FROM messages WHERE receiver_id = ? AND is_read = FALSE")
	err := s.db.QueryRow(query, receiver).Scan(&count)
	return count, err
}

func (s *SQLStore) MarkMessagesRead(sender, receiver string) error {
	query := s.rebind("UPDATE messages SET is_read = TRUE WHERE sender_id = ? AND receiver_id = ?")
	_, err := s.db.Exec(query, sender, receiver)
	return err
}
