package searchIssues

import (
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"context"
	"fmt"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IssueSearcher
type IssueSearcher interface {
	SearchIssues(ctx context.Context, query, sort string) (models.IssueSearchResult, error)
}

// New relays the GitHub search result unchanged on success.
func New(log *slog.Logger, searcher IssueSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.github.searchIssues.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")
		if query == "" {
			log.Error("search query is required")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("field q is a required field"))
			return
		}

		sort := r.URL.Query().Get("sort")
		if sort == "" {
			sort = "created"
		}

		log = log.With(slog.String("q", query), slog.String("sort", sort))

		result, err := searcher.SearchIssues(r.Context(), query, sort)
		if err != nil {
			log.Error("failed to search issues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("Error searching GitHub issues: %s", err)))
			return
		}

		if result.Items == nil {
			result.Items = []models.Issue{}
		}

		log.Info("issues found", slog.Int("total_count", result.TotalCount), slog.Int("items", len(result.Items)))

		render.JSON(w, r, result)
	}
}
