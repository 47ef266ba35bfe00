package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"wardrobe-api/internal/api/handlers"
	"wardrobe-api/internal/auth"
	"wardrobe-api/internal/services"
)

// route is one entry of the declared request pipeline: a matcher, an optional
// guard, and a handler. The table below is the whole HTTP surface; anything
// it does not match falls through to the 404 handler.
type route struct {
	method  string
	pattern string
	secured bool
	handler http.HandlerFunc
}

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenManager, userService services.UserServiceProvider, clothesService services.ClothesServiceProvider, eventService services.EventServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(requestLogger)
	r.Use(recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Unmatched routes and unmatched methods on known paths are both plain
	// 404s. The guard never runs for them, so a bad route returns 404 with or
	// without credentials.
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, eventService, tokens)
	clothesHandler := handlers.NewClothesHandler(clothesService)
	eventHandler := handlers.NewEventHandler(eventService)

	guard := bearerAuth(tokens, userService)

	routes := []route{
		{http.MethodPost, "/signup", false, authHandler.Signup},
		{http.MethodPost, "/signin", false, authHandler.Signin},
		{http.MethodGet, "/secret", true, authHandler.Secret},

		// v1 is open
		{http.MethodPost, "/api/v1/clothes", false, clothesHandler.Create},
		{http.MethodGet, "/api/v1/clothes", false, clothesHandler.GetAll},
		{http.MethodGet, "/api/v1/clothes/{id}", false, clothesHandler.Get},
		{http.MethodPut, "/api/v1/clothes/{id}", false, clothesHandler.Update},
		{http.MethodDelete, "/api/v1/clothes/{id}", false, clothesHandler.Delete},

		// v2 is the same surface behind the bearer guard
		{http.MethodPost, "/api/v2/clothes", true, clothesHandler.Create},
		{http.MethodGet, "/api/v2/clothes", true, clothesHandler.GetAll},
		{http.MethodGet, "/api/v2/clothes/{id}", true, clothesHandler.Get},
		{http.MethodPut, "/api/v2/clothes/{id}", true, clothesHandler.Update},
		{http.MethodDelete, "/api/v2/clothes/{id}", true, clothesHandler.Delete},

		{http.MethodGet, "/api/v2/events", true, eventHandler.GetRecent},
	}
	for _, rt := range routes {
		if rt.secured {
			r.With(guard).Method(rt.method, rt.pattern, rt.handler)
		} else {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	}

	return r
}
