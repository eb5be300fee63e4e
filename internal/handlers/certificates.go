package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/models"
	"github.com/questify/questify/internal/store"
	"github.com/questify/questify/internal/ws"
)

type CertificateHandler struct {
	Store     store.Store
	Notifier  *ws.Broadcaster
	UploadDir string
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	path, err := saveUpload(r, "certificate", h.UploadDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	cert := &models.Certificate{
		UserID:   userID,
		Title:    title,
		FilePath: path,
	}
	if err := h.Store.CreateCertificate(cert); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Notifier.Push(userID, &models.Notification{
		Type: models.NotificationCertificate,
		Text: "Certificate uploaded: " + title,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cert)
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.Store.ListCertificates(middleware.UserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(certs)
}
