package getActivities

import (
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivitiesGetter
type ActivitiesGetter interface {
	GetActivities() (models.ActivityCollection, error)
}

// New answers with the bare name-keyed object, in storage order.
func New(log *slog.Logger, activitiesGetter ActivitiesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.getActivities.New"

		log := log.With(slog.String("op", op))

		activities, err := activitiesGetter.GetActivities()
		if err != nil {
			log.Error("failed to get activities", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get activities"))
			return
		}

		log.Info("activities retrieved successfully", slog.Int("count", len(activities)))

		render.JSON(w, r, activities)
	}
}
