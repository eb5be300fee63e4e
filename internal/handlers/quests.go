package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/models"
	"github.com/questify/questify/internal/store"
	"github.com/questify/questify/internal/ws"
)

type QuestHandler struct {
	Store    store.Store
	Notifier *ws.Broadcaster
}

type QuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int    `json:"reward"`
	Status      string `json:"status"`
}

func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUserByID(middleware.UserID(r))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role != models.RoleHirer {
		http.Error(w, "Only hirers can post quests", http.StatusForbidden)
		return
	}

	var req QuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Reward < 0 {
		http.Error(w, "title is required and reward must not be negative", http.StatusBadRequest)
		return
	}

	quest := &models.Quest{
		HirerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
	}
	if err := h.Store.CreateQuest(quest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.BroadcastQuest(ws.QuestCreate, quest)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(quest)
}

func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	quests, err := h.Store.ListQuests()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(quests)
}

func (h *QuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	quest, err := h.Store.GetQuest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(quest)
}

func (h *QuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	quest, err := h.Store.GetQuest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return
	}
	if quest.HirerID != middleware.UserID(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req QuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title != "" {
		quest.Title = req.Title
	}
	if req.Description != "" {
		quest.Description = req.Description
	}
	if req.Reward > 0 {
		quest.Reward = req.Reward
	}
	if req.Status == models.QuestOpen || req.Status == models.QuestClosed {
		quest.Status = req.Status
	}

	if err := h.Store.UpdateQuest(quest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.BroadcastQuest(ws.QuestUpdate, quest)

	json.NewEncoder(w).Encode(quest)
}

func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	quest, err := h.Store.GetQuest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return
	}
	if quest.HirerID != middleware.UserID(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.Store.DeleteQuest(quest.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.BroadcastQuest(ws.QuestDelete, quest)

	w.WriteHeader(http.StatusNoContent)
}
