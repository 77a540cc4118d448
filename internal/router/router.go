package router

import (
	"net/http"

	"itexe-marketplace-api/internal/handler"
	"itexe-marketplace-api/internal/middleware"
	"itexe-marketplace-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler             *handler.Handler
	AuthHandler         *handler.AuthHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	NotificationHandler *handler.NotificationHandler
	DescribeHandler     *handler.DescribeHandler
	Session             service.SessionReader
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
		}

		// Session endpoints. Login and register are unreachable while a
		// session is active; the shell redirects, the API rejects.
		if cfg.AuthHandler != nil {
			r.Route("/auth", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnonymous(cfg.Session))
					r.Post("/login", cfg.AuthHandler.Login)
					r.Post("/register", cfg.AuthHandler.Register)
				})
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Get("/me", cfg.AuthHandler.Me)
			})
		}

		// Catalog endpoints. Browsing is public; selling and updating
		// require a session.
		if cfg.ProductHandler != nil {
			r.Route("/products", func(r chi.Router) {
				r.Get("/", cfg.ProductHandler.Browse)
				r.Get("/latest", cfg.ProductHandler.Latest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSession(cfg.Session))
					r.Post("/", cfg.ProductHandler.Create)
					r.Get("/mine", cfg.ProductHandler.Mine)
					r.Put("/{id}", cfg.ProductHandler.Update)
					r.Post("/{id}/sold", cfg.ProductHandler.MarkSold)
				})

				r.Get("/{id}", cfg.ProductHandler.Get)
			})
		}

		// Cart endpoints
		if cfg.CartHandler != nil {
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.CartHandler.Get)
				r.Delete("/", cfg.CartHandler.Clear)
				r.Post("/items", cfg.CartHandler.AddItem)
				r.Delete("/items/{id}", cfg.CartHandler.RemoveItem)
				r.Post("/checkout", cfg.CartHandler.Checkout)
			})
		}

		// Notification endpoints
		if cfg.NotificationHandler != nil {
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", cfg.NotificationHandler.List)
				r.Delete("/{id}", cfg.NotificationHandler.Dismiss)
			})
		}

		// Description drafting
		if cfg.DescribeHandler != nil {
			r.With(middleware.RequireSession(cfg.Session)).
				Post("/describe", cfg.DescribeHandler.Describe)
		}
	})

	// Keep the 404 payload shape consistent with the rest of the service.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"route not found"}}`))
	})

	return r
}
