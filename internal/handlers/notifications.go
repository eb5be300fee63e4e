package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/store"
)

type NotificationHandler struct {
	Store store.Store
}

// List is the catch-up read path for notifications that were persisted
// while the user had no live connection.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifs, err := h.Store.ListNotifications(middleware.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notifs)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.MarkNotificationsRead(middleware.UserID(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
