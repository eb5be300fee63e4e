package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateSubmission(sub *models.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if sub.Status == "" {
		sub.Status = models.SubmissionPending
	}
	query := s.rebind("INSERT INTO submissions (id, quest_id, solver_id, content, status, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, sub.ID, sub.QuestID, sub.SolverID, sub.Content, sub.Status, sub.CreatedAt)
	return err
}

func (s *SQLStore) GetSubmission(id string) (*models.Submission, error) {
	var sub models.Submission
	query := s.rebind("SELECT id, quest_id, solver_id, content, status, created_at FROM submissions WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&sub.ID, &sub.QuestID, &sub.SolverID, &sub.Content, &sub.Status, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SQLStore) ListSubmissions(questID string) ([]models.Submission, error) {
	query := s.rebind("SELECT id, quest_id, solver_id, content, status, created_at FROM submissions WHERE quest_id = ? ORDER BY created_at ASC")
	rows, err := s.db.Query(query, questID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.QuestID, &sub.SolverID, &sub.Content, &sub.Status, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SQLStore) SetSubmissionStatus(id, status string) error {
	query := s.rebind("UPDATE submissions SET status = ? WHERE id = ?")
	_, err := s.db.Exec(query, status, id)
	return err
}
