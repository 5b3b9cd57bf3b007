package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/market-api/internal/api/middleware"
	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/service"
	"github.com/phrazzld/market-api/internal/service/auth"
)

// RouterDeps holds the services the HTTP routes are built on.
type RouterDeps struct {
	Identity service.IdentityService
	Items    service.ItemService
	Tokens   auth.JWTService
	Logger   *slog.Logger
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace(deps.Logger))
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)

	authHandler := NewAuthHandler(deps.Identity)
	itemHandler := NewItemHandler(deps.Items, NewAuthenticator(deps.Tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/users", authHandler.Register)
	r.Post("/auth/signin", authHandler.SignIn)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Get("/{id}", itemHandler.Get)
		r.Put("/{id}", itemHandler.MarkSoldOut)
		r.Delete("/{id}", itemHandler.Delete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
