package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kevradan/homestead-be/internal/api/handlers"
	"github.com/kevradan/homestead-be/internal/auth"
	"github.com/kevradan/homestead-be/internal/services"
)

// route is one entry of the canonical route table. Auth is declared here,
// per route, rather than scattered across files.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	auth    bool
}

// NewRouter creates and configures a new Chi router.
func NewRouter(verifier *auth.Verifier, residencyService services.ResidencyServiceProvider, userService services.UserServiceProvider, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	residencyHandler := handlers.NewResidencyHandler(residencyService)
	userHandler := handlers.NewUserHandler(userService)

	routes := []route{
		{http.MethodPost, "/api/residencies/create", residencyHandler.Create, true},
		{http.MethodGet, "/api/residencies/all", residencyHandler.GetAll, false},
		{http.MethodGet, "/api/residencies/{id}", residencyHandler.Get, false},
		{http.MethodPut, "/api/residencies/update/{id}", residencyHandler.Update, true},
		{http.MethodDelete, "/api/residencies/delete/{id}", residencyHandler.Delete, true},
		{http.MethodPost, "/api/users", userHandler.Create, false},
		{http.MethodGet, "/api/users", userHandler.GetAll, false},
	}

	authGate := verifier.Middleware()
	for _, rt := range routes {
		handler := http.Handler(rt.handler)
		if rt.auth {
			handler = authGate(handler)
		}
		r.Method(rt.method, rt.pattern, handler)
	}

	return r
}
