// internal/directory/routes.go

package directory

import (
	"github.com/gorilla/mux"

	"github.com/amora-dating/amora-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/users").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/me", handler.GetMe).Methods("GET")
	api.HandleFunc("/me", handler.UpdateMe).Methods("PUT")
	api.HandleFunc("/{id:[0-9]+}", handler.GetUser).Methods("GET")
}
