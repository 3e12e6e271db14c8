package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/teris-io/shortid"
	"github.com/zenith-app/zenith-server/internal/chat"
	"github.com/zenith-app/zenith-server/internal/config"
	"github.com/zenith-app/zenith-server/internal/database"
)

type ZenithApp struct {
	log             *log.Logger
	db              database.ZenithRepository
	srv             *http.Server
	cs              *chat.ChatServer
	signingKey      []byte
	allowedOrigins  []string
	generateShortId func() (string, error)
}

func NewZenithApp(mux *http.ServeMux, logger *log.Logger, cs *chat.ChatServer, db database.ZenithRepository, cfg *config.Config) *ZenithApp {
	s := &ZenithApp{
		log:             logger,
		db:              db,
		cs:              cs,
		signingKey:      cfg.SigningKey,
		allowedOrigins:  cfg.AllowedOrigins,
		generateShortId: shortid.Generate,
	}

	mux.HandleFunc("POST /api/auth/register", s.createAccount)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/session", s.authMiddleware(s.session))
	mux.Handle("GET /api/auth/logout", s.authMiddleware(s.logout))
	mux.Handle("/api/account", s.authMiddleware(s.account))
	mux.Handle("GET /api/repositories", s.authMiddleware(s.listRepositories))
	mux.Handle("POST /api/repositories", s.authMiddleware(s.createRepository))
	mux.Handle("DELETE /api/repositories", s.authMiddleware(s.deleteRepository))
	mux.Handle("GET /api/documents", s.authMiddleware(s.listDocuments))
	mux.Handle("POST /api/documents", s.authMiddleware(s.createDocument))
	mux.Handle("DELETE /api/documents", s.authMiddleware(s.deleteDocument))
	mux.Handle("GET /ws", s.authMiddleware(s.serveWs))

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.srv = srv
	return s
}

func (s *ZenithApp) Start() error {
	s.log.Printf("starting server on %s\n", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *ZenithApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
