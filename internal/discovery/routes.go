// internal/discovery/routes.go

package discovery

import (
	"github.com/gorilla/mux"

	"github.com/amora-dating/amora-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/discovery").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Candidate feed
	api.HandleFunc("/potential-matches", handler.GetPotentialMatches).Methods("GET")

	// Swipes
	api.HandleFunc("/like", handler.Like).Methods("POST")
	api.HandleFunc("/dislike", handler.Dislike).Methods("POST")
	api.HandleFunc("/super-like", handler.SuperLike).Methods("POST")

	// Matches
	api.HandleFunc("/matches", handler.ListMatches).Methods("GET")
	api.HandleFunc("/matches/{id}", handler.GetMatch).Methods("GET")

	// Preferences
	api.HandleFunc("/preferences", handler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences", handler.UpdatePreferences).Methods("PUT")
}
