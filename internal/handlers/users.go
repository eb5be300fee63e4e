package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/store"
)

type UserHandler struct {
	Store     store.Store
	UploadDir string
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(middleware.UserID(r))
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	path, err := saveUpload(r, "picture", h.UploadDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateProfilePicture(userID, path); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"profile_picture": path})
}
