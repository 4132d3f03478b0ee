package api

import (
	"github.com/gorilla/mux"

	"github.com/bioscape/crm/internal/config"
	"github.com/bioscape/crm/internal/search"
	"github.com/bioscape/crm/pkg/repository"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, store repository.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Search engine over the store
	engine := search.NewEngine(store, store, store, cfg.Search, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenDuration)
	contactsHandler := NewContactsHandler(engine)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Contact search: GET for query-string criteria, POST for large bodies
	apiV1.HandleFunc("/contacts/search", contactsHandler.SearchContacts).Methods("GET", "POST")

	return r
}
