package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/models"
	"github.com/questify/questify/internal/store"
	"github.com/questify/questify/internal/ws"
)

type SubmissionHandler struct {
	Store    store.Store
	Notifier *ws.Broadcaster
}

func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	quest, err := h.Store.GetQuest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return
	}
	if quest.Status != models.QuestOpen {
		http.Error(w, "Quest is closed", http.StatusConflict)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	sub := &models.Submission{
		QuestID:  quest.ID,
		SolverID: userID,
		Content:  req.Content,
	}
	if err := h.Store.CreateSubmission(sub); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Tell the hirer, with the submission embedded for the frontend
	payload, _ := json.Marshal(sub)
	h.Notifier.Push(quest.HirerID, &models.Notification{
		Type:    models.NotificationQuest,
		Text:    fmt.Sprintf("New submission for %q", quest.Title),
		Payload: payload,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sub)
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	quest, err := h.Store.GetQuest(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return
	}
	if quest.HirerID != middleware.UserID(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	subs, err := h.Store.ListSubmissions(quest.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(subs)
}

func (h *SubmissionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	sub, quest, ok := h.ownedSubmission(w, r)
	if !ok {
		return
	}

	if err := h.Store.SetSubmissionStatus(sub.ID, models.SubmissionAccepted); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	quest.Status = models.QuestClosed
	if err := h.Store.UpdateQuest(quest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Notifier.BroadcastQuest(ws.QuestUpdate, quest)

	if err := h.Store.AwardCoins(sub.SolverID, quest.Reward, "quest reward: "+quest.Title); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.Push(sub.SolverID, &models.Notification{
		Type:      models.NotificationQuest,
		Text:      fmt.Sprintf("Your solution to %q was accepted", quest.Title),
		CoinDelta: quest.Reward,
	})

	w.WriteHeader(http.StatusOK)
}

func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sub, quest, ok := h.ownedSubmission(w, r)
	if !ok {
		return
	}

	if err := h.Store.SetSubmissionStatus(sub.ID, models.SubmissionRejected); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.Push(sub.SolverID, &models.Notification{
		Type: models.NotificationQuest,
		Text: fmt.Sprintf("Your solution to %q was rejected", quest.Title),
	})

	w.WriteHeader(http.StatusOK)
}

// ownedSubmission loads the submission and its quest and checks the caller
// is the quest's hirer and the submission is still pending.
func (h *SubmissionHandler) ownedSubmission(w http.ResponseWriter, r *http.Request) (*models.Submission, *models.Quest, bool) {
	sub, err := h.Store.GetSubmission(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return nil, nil, false
	}
	quest, err := h.Store.GetQuest(sub.QuestID)
	if err != nil {
		http.Error(w, "Quest not found", http.StatusNotFound)
		return nil, nil, false
	}
	if quest.HirerID != middleware.UserID(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, nil, false
	}
	if sub.Status != models.SubmissionPending {
		http.Error(w, "Submission already decided", http.StatusConflict)
		return nil, nil, false
	}
	return sub, quest, true
}
