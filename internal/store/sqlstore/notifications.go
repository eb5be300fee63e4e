package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateNotification(n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	query := s.rebind("INSERT INTO notifications (id, user_id, type, text, coin_delta, payload, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, n.ID, n.UserID, n.Type, n.Text, n.CoinDelta, string(n.Payload), n.Read, n.CreatedAt)
	return err
}

func (s *SQLStore) ListNotifications(userID string) ([]models.Notification, error) {
	query := s.rebind("SELECT id, user_id, type, text, coin_delta, COALESCE(payload, ''), is_read, created_at FROM notifications WHERE user_id = ? ORDER BY created_at DESC")
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []models.Notification
	for rows.Next() {
		var n models.Notification
		var payload string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Text, &n.CoinDelta, &payload, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		if payload != "" {
			n.Payload = []byte(payload)
		}
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

func (s *SQLStore) MarkNotificationsRead(userID string) error {
	query := s.rebind("UPDATE notifications SET is_read = TRUE WHERE user_id = ?")
	_, err := s.db.Exec(query, userID)
	return err
}
