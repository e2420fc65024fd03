package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pr-poehali-dev/online-shop-network/internal/config"
	"github.com/pr-poehali-dev/online-shop-network/internal/handler"
	"github.com/pr-poehali-dev/online-shop-network/internal/middleware"
)

type Handlers struct {
	Account *handler.AccountHandler
	State   *handler.StateHandler
	Catalog *handler.CatalogHandler
	Events  *handler.EventsHandler
}

func New(cfg *config.Config, gate *middleware.SessionGate, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		// The event stream stays outside the timeout handler, whose
		// response writer does not implement http.Flusher.
		api.With(gate.RequireSession).Get("/events", h.Events.Stream)

		api.Group(func(timed chi.Router) {
			timed.Use(middleware.Timeout(cfg.RequestTimeout))

			// The auth surface and the state snapshot are the only routes
			// reachable without a session.
			timed.Route("/auth", func(auth chi.Router) {
				auth.Post("/register", h.Account.Register)
				auth.Post("/login", h.Account.Login)
				auth.With(gate.RequireSession).Post("/logout", h.Account.Logout)
			})
			timed.Get("/state", h.State.State)

			timed.Group(func(authed chi.Router) {
				authed.Use(gate.RequireSession)

				authed.Post("/nav/page", h.State.NavigatePage)
				authed.Post("/nav/product", h.State.NavigateProduct)
				authed.Post("/nav/back", h.State.Back)
				authed.Post("/admin/login", h.Account.AdminLogin)

				authed.Get("/catalog", h.Catalog.Products)
				authed.Get("/chats", h.Catalog.Chats)
				authed.Get("/purchases", h.Catalog.Purchases)
				authed.Post("/products/submit", h.Catalog.SubmitProduct)
			})
		})
	})

	return r
}
