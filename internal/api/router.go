package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ahoy-games/broadside/internal/api/handler"
	"github.com/ahoy-games/broadside/internal/api/middleware"
	"github.com/ahoy-games/broadside/internal/services/auth"
	"github.com/ahoy-games/broadside/internal/services/rooms"
	"github.com/ahoy-games/broadside/internal/services/view"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	RoomController *rooms.Controller
	ViewService    *view.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	actorHandler := handler.NewActorHandler(cfg.AuthService)
	roomHandler := handler.NewRoomHandler(cfg.RoomController, cfg.ViewService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Actor routes (no auth required for creating actors/logging in)
	api.HandleFunc("/actors/guest", actorHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/actors/register", actorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/actors/login", actorHandler.Login).Methods(http.MethodPost)

	// Protected actor routes
	actorProtected := api.PathPrefix("/actors").Subrouter()
	actorProtected.Use(authMiddleware)
	actorProtected.HandleFunc("/me", actorHandler.GetMe).Methods(http.MethodGet)
	actorProtected.HandleFunc("/logout", actorHandler.Logout).Methods(http.MethodPost)

	// Room routes (all require auth)
	roomRoutes := api.PathPrefix("/rooms").Subrouter()
	roomRoutes.Use(authMiddleware)
	roomRoutes.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	roomRoutes.HandleFunc("", roomHandler.List).Methods(http.MethodGet)
	roomRoutes.HandleFunc("/invite/{code}", roomHandler.GetByInvite).Methods(http.MethodGet)
	roomRoutes.HandleFunc("/{roomID}", roomHandler.Get).Methods(http.MethodGet)
	roomRoutes.HandleFunc("/{roomID}/join", roomHandler.Join).Methods(http.MethodPost)
	roomRoutes.HandleFunc("/{roomID}/view", roomHandler.View).Methods(http.MethodGet)
	roomRoutes.HandleFunc("/{roomID}/players/{playerID}/fleet", roomHandler.PlaceFleet).Methods(http.MethodPost)
	roomRoutes.HandleFunc("/{roomID}/players/{playerID}/attack", roomHandler.Attack).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
