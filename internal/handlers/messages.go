package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/store"
)

type MessageHandler struct {
	Store store.Store
}

// History returns the pair history and marks the partner's messages to the
// caller as read. This is the catch-up path for messages missed offline.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	partnerID := mux.Vars(r)["partnerId"]

	msgs, err := h.Store.MessagesBetween(userID, partnerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Store.MarkMessagesRead(partnerID, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(msgs)
}

func (h *MessageHandler) Unread(w http.ResponseWriter, r *http.Request) {
	count, err := h.Store.CountUnread(middleware.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}
