package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateQuest(quest *models.Quest) error {
	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if quest.CreatedAt.IsZero() {
		quest.CreatedAt = now
	}
	quest.UpdatedAt = now
	if quest.Status == "" {
		quest.Status = models.QuestOpen
	}
	query := s.rebind("INSERT INTO quests (id, hirer_id, title, description, reward, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, quest.ID, quest.HirerID, quest.Title, quest.Description, quest.Reward, quest.Status, quest.CreatedAt, quest.UpdatedAt)
	return err
}

func (s *SQLStore) GetQuest(id string) (*models.Quest, error) {
	var q models.Quest
	query := s.rebind("SELECT id, hirer_id, title, description, reward, status, created_at, updated_at FROM quests WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&q.ID, &q.HirerID, &q.Title, &q.Description, &q.Reward, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) ListQuests() ([]models.Quest, error) {
	query := "SELECT id, hirer_id, title, description, reward, status, created_at, updated_at FROM quests ORDER BY created_at DESC"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []models.Quest
	for rows.Next() {
		var q models.Quest
		if err := rows.Scan(&q.ID, &q.HirerID, &q.Title, &q.Description, &q.Reward, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

func (s *SQLStore) UpdateQuest(quest *models.Quest) error {
	quest.UpdatedAt = time.Now().UTC()
	query := s.rebind("UPDATE quests SET title = ?, description = ?, reward = ?, status = ?, updated_at = ? WHERE id = ?")
	_, err := s.db.Exec(query, quest.Title, quest.Description, quest.Reward, quest.Status, quest.UpdatedAt, quest.ID)
	return err
}

func (s *SQLStore) DeleteQuest(id string) error {
	// Submissions reference the quest, remove them first
	query := s.rebind("DELETE FROM submissions WHERE quest_id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return err
	}
	query = s.rebind("DELETE FROM quests WHERE id = ?")
	_, err := s.db.Exec(query, id)
	return err
}
