package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/questify/questify/internal/auth"
	"github.com/questify/questify/internal/config"
	"github.com/questify/questify/internal/handlers"
	"github.com/questify/questify/internal/middleware"
	"github.com/questify/questify/internal/store/sqlstore"
	"github.com/questify/questify/internal/ws"
)

var addr = flag.String("addr", "", "http service address (overrides QUESTIFY_ADDR)")

func main() {
	flag.Parse()

	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	st, err := sqlstore.New(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	hub := ws.NewHub(st, tokens, logger)

	authHandler := &handlers.AuthHandler{Store: st, Tokens: tokens, Notifier: hub.Notifier()}
	userHandler := &handlers.UserHandler{Store: st, UploadDir: cfg.UploadDir}
	questHandler := &handlers.QuestHandler{Store: st, Notifier: hub.Notifier()}
	subHandler := &handlers.SubmissionHandler{Store: st, Notifier: hub.Notifier()}
	certHandler := &handlers.CertificateHandler{Store: st, Notifier: hub.Notifier(), UploadDir: cfg.UploadDir}
	coinHandler := &handlers.CoinHandler{Store: st}
	msgHandler := &handlers.MessageHandler{Store: st}
	notifHandler := &handlers.NotificationHandler{Store: st}

	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))

	// Public endpoints
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/quests", questHandler.List).Methods("GET")
	r.HandleFunc("/quests/{id}", questHandler.Get).Methods("GET")

	// WebSocket endpoint; clients authenticate in-band with an auth frame
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWs(hub, w, req)
	})

	// Authenticated API
	api := r.NewRoute().Subrouter()
	api.Use(middleware.Auth(tokens))
	api.HandleFunc("/users/search", authHandler.SearchUsers).Methods("GET")
	api.HandleFunc("/users/me", userHandler.Me).Methods("GET")
	api.HandleFunc("/users/me/picture", userHandler.UploadProfilePicture).Methods("POST")
	api.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	api.HandleFunc("/quests", questHandler.Create).Methods("POST")
	api.HandleFunc("/quests/{id}", questHandler.Update).Methods("PUT")
	api.HandleFunc("/quests/{id}", questHandler.Delete).Methods("DELETE")
	api.HandleFunc("/quests/{id}/submissions", subHandler.Create).Methods("POST")
	api.HandleFunc("/quests/{id}/submissions", subHandler.List).Methods("GET")
	api.HandleFunc("/submissions/{id}/accept", subHandler.Accept).Methods("POST")
	api.HandleFunc("/submissions/{id}/reject", subHandler.Reject).Methods("POST")
	api.HandleFunc("/certificates", certHandler.Create).Methods("POST")
	api.HandleFunc("/certificates", certHandler.List).Methods("GET")
	api.HandleFunc("/coins", coinHandler.Get).Methods("GET")
	api.HandleFunc("/messages/unread", msgHandler.Unread).Methods("GET")
	api.HandleFunc("/messages/{partnerId}", msgHandler.History).Methods("GET")
	api.HandleFunc("/notifications", notifHandler.List).Methods("GET")
	api.HandleFunc("/notifications/read", notifHandler.MarkRead).Methods("POST")

	// Serve the SPA
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
