package sqlstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/questify/questify/internal/models"
)

// AwardCoins records a transaction and adjusts the user's balance in one tx.
func (s *SQLStore) AwardCoins(userID string, delta int, reason string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := s.rebind("UPDATE users SET coins = coins + ? WHERE id = ?")
	if _, err := tx.Exec(query, delta, userID); err != nil {
		return err
	}

	query = s.rebind("INSERT INTO coin_transactions (id, user_id, delta, reason, created_at) VALUES (?, ?, ?, ?, ?)")
	if _, err := tx.Exec(query, uuid.NewString(), userID, delta, reason, time.Now().UTC()); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLStore) GetCoinBalance(userID string) (int, error) {
	var coins int
	query := s.rebind("SELECT coins FROM users WHERE id = ?")
	err := s.db.QueryRow(query, userID).Scan(&coins)
	return coins, err
}

func (s *SQLStore) ListCoinTransactions(userID string) ([]models.CoinTransaction, error) {
	query := s.rebind("SELECT id, user_id, delta, reason, created_at FROM coin_transactions WHERE user_id = ? ORDER BY created_at DESC")
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.CoinTransaction
	for rows.Next() {
		var t models.CoinTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Delta, &t.Reason, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
