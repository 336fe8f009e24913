package router

import (
	"activityBoard/internal/config"
	"activityBoard/internal/http-server/handlers/activity/getActivities"
	"activityBoard/internal/http-server/handlers/activity/signUp"
	"activityBoard/internal/http-server/handlers/activity/unregister"
	"activityBoard/internal/http-server/handlers/github/searchIssues"
	"activityBoard/internal/http-server/middleware/mwlogger"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ActivityStore interface {
	getActivities.ActivitiesGetter
	signUp.ParticipantAdder
	unregister.ParticipantRemover
}

// New mounts the activity API, the issue search and the static frontend.
func New(log *slog.Logger, cfg config.HTTPServer, store ActivityStore, searcher searchIssues.IssueSearcher) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}

	if cfg.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fs))

		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/static/index.html", http.StatusFound)
		})
	}

	router.Get("/activities", getActivities.New(log, store))
	router.Post("/activities/{name}/signup", signUp.New(log, store))
	router.Delete("/activities/{name}/unregister", unregister.New(log, store))

	router.Get("/github/search-issues", searchIssues.New(log, searcher))

	return router
}
