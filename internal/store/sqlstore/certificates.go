package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateCertificate(cert *models.Certificate) error {
	if cert.ID == "" {
		cert.ID = uuid.NewString()
	}
	if cert.CreatedAt.IsZero() {
		cert.CreatedAt = time.Now().UTC()
	}
	query := s.rebind("INSERT INTO certificates (id, user_id, title, file_path, created_at) VALUES (?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, cert.ID, cert.UserID, cert.Title, cert.FilePath, cert.CreatedAt)
	return err
}

func (s *SQLStore) ListCertificates(userID string) ([]models.Certificate, error) {
	query := s.rebind("SELECT id, user_id, title, file_path, created_at FROM certificates WHERE user_id = ? ORDER BY created_at DESC")
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []models.Certificate
	for rows.Next() {
		var c models.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.FilePath, &c.CreatedAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}
