package sqlstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	query := s.rebind("INSERT INTO users (id, username, email, password, role, coins, profile_picture, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	_, err := s.db.Exec(query, user.ID, user.Username, user.Email, user.Password, user.Role, user.Coins, user.ProfilePicture, user.CreatedAt)
	return err
}

func (s *SQLStore) GetUserByID(id string) (*models.User, error) {
	return s.getUser("id", id)
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	return s.getUser("username", username)
}

func (s *SQLStore) getUser(column, value string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, username, email, password, role, coins, COALESCE(profile_picture, ''), created_at FROM users WHERE " + column + " = ?")
	err := s.db.QueryRow(query, value).Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.Role, &user.Coins, &user.ProfilePicture, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) SearchUsers(queryStr string) ([]models.User, error) {
	query := s.rebind("SELECT id, username, email, role, coins FROM users WHERE username LIKE ? LIMIT 10")
	rows, err := s.db.Query(query, "%"+queryStr+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.Coins); err != nil {
			return nil, err
		}
		user.Email = maskEmail(user.Email)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLStore) UpdateProfilePicture(userID, path string) error {
	query := s.rebind("UPDATE users SET profile_picture = ? WHERE id = ?")
	_, err := s.db.Exec(query, path, userID)
	return err
}

func maskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local, domain := parts[0], parts[1]
	if local == "" {
		return email
	}
	visible := len(local) / 2
	if visible < 1 {
		visible = 1
	}
	if visible > 3 {
		visible = 3
	}
	return local[:visible] + strings.Repeat("*", len(local)-visible) + "@" + domain
}
