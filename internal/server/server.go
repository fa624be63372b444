package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/davydav/userstats/internal/handler"
	"github.com/davydav/userstats/internal/middleware"
	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/statsapi"
	"github.com/davydav/userstats/internal/store"
	ws "github.com/davydav/userstats/internal/websocket"
)

type Server struct {
	hub      *ws.Hub
	sessions session.Manager

	authH      *handler.AuthHandler
	userH      *handler.UserHandler
	searchH    *handler.SearchHandler
	profileH   *handler.ProfileHandler
	favouriteH *handler.FavouriteHandler

	logger *slog.Logger
}

func New(db *sql.DB, api *statsapi.Client, sessions session.Manager, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	platformStore := store.NewPlatformStore(db)
	profileStore := store.NewGameProfileStore(db)
	statsStore := store.NewStatsStore(db)
	historyStore := store.NewStatsHistoryStore(db)
	favouriteStore := store.NewFavouriteStore(db)

	return &Server{
		hub:      hub,
		sessions: sessions,
		authH:    handler.NewAuthHandler(userStore, sessions, logger.With("component", "auth")),
		userH:    handler.NewUserHandler(userStore, profileStore, favouriteStore, logger.With("component", "user")),
		searchH: handler.NewSearchHandler(
			profileStore, platformStore, statsStore, historyStore, favouriteStore,
			api, hub, logger.With("component", "search"),
		),
		profileH:   handler.NewProfileHandler(profileStore, logger.With("component", "profile")),
		favouriteH: handler.NewFavouriteHandler(favouriteStore, profileStore, logger.With("component", "favourite")),
		logger:     logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("GET /login", s.authH.LoginPage)
	mux.HandleFunc("POST /login", s.authH.Login)
	mux.HandleFunc("GET /logout", s.authH.Logout)

	// Users
	mux.HandleFunc("GET /register", s.userH.RegisterPage)
	mux.HandleFunc("POST /users", s.userH.Create)
	mux.HandleFunc("GET /users/edit", s.userH.EditPage)
	mux.HandleFunc("PUT /users/edit", s.userH.Update)

	// Search and stats
	mux.HandleFunc("GET /search", s.searchH.SearchPage)
	mux.HandleFunc("POST /search", s.searchH.Search)
	mux.HandleFunc("GET /search/linked", s.searchH.LinkedStats)
	mux.HandleFunc("GET /stats/{username}", s.searchH.StatsPage)
	mux.HandleFunc("GET /redirect/{username}", s.searchH.RedirectToStats)

	// Profile linking and favourites
	mux.HandleFunc("POST /profile", s.profileH.Link)
	mux.HandleFunc("GET /unlink", s.profileH.Unlink)
	mux.HandleFunc("POST /favourites", s.favouriteH.Toggle)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search", http.StatusSeeOther)
	})

	h := middleware.MethodOverride(mux)
	h = middleware.Sessions(s.sessions, s.logger.With("component", "session"))(h)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
