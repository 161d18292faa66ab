package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Jobs     *JobHandler
	Pilots   *PilotHandler
	Factions *FactionHandler
	Settings *SettingsHandler
	Periods  *VotingPeriodHandler
}

type Options struct {
	// AdminToken gates mutating routes when non-empty.
	AdminToken string
	// StaticDir is served at /; empty disables static serving.
	StaticDir string
}

func NewHandler(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	admin := requireAdminToken(opts.AdminToken)

	r.Route("/api", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.Jobs.List)
			r.Get("/{id}", h.Jobs.Get)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", h.Jobs.Create)
				r.Put("/{id}", h.Jobs.Update)
				r.Delete("/{id}", h.Jobs.Delete)
			})
		})

		r.Route("/pilots", func(r chi.Router) {
			r.Get("/", h.Pilots.List)
			r.Get("/{id}", h.Pilots.Get)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", h.Pilots.Create)
				r.Put("/{id}", h.Pilots.Update)
				r.Delete("/{id}", h.Pilots.Delete)
			})
		})

		r.Route("/factions", func(r chi.Router) {
			r.Get("/", h.Factions.List)
			r.Get("/{id}", h.Factions.Get)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", h.Factions.Create)
				r.Put("/{id}", h.Factions.Update)
				r.Delete("/{id}", h.Factions.Delete)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Settings.Get)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Put("/", h.Settings.Update)
			})
		})

		r.Route("/voting-periods", func(r chi.Router) {
			r.Get("/", h.Periods.List)
			r.Get("/ongoing", h.Periods.Ongoing)
			// Vote casting is open to the table; opening and closing
			// periods is the GM's call.
			r.Post("/ongoing/votes", h.Periods.CastVote)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", h.Periods.Create)
				r.Post("/{id}/archive", h.Periods.Archive)
			})
		})
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}
