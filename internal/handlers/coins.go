package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/store"
)

type CoinHandler struct {
	Store store.Store
}

func (h *CoinHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	balance, err := h.Store.GetCoinBalance(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	txs, err := h.Store.ListCoinTransactions(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"balance":      balance,
		"transactions": txs,
	})
}
