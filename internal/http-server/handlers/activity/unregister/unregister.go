package unregister

import (
	"activityBoard/internal/lib/api/params"
	"activityBoard/internal/lib/api/response"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/storage"
	"errors"
	"fmt"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Activity string `validate:"required"`
	Email    string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantRemover
type ParticipantRemover interface {
	Unregister(activityName, email string) error
}

// New does not check the email format: an address that could never have
// signed up is simply reported as not signed up.
func New(log *slog.Logger, remover ParticipantRemover) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.activity.unregister.New"

		log := log.With(slog.String("op", op))

		activity, err := params.Path(r, "name")
		if err != nil {
			log.Error("invalid activity name", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid activity name"))
			return
		}

		req := Request{
			Activity: activity,
			Email:    r.URL.Query().Get("email"),
		}

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		log = log.With(slog.String("activity", req.Activity), slog.String("email", req.Email))

		err = remover.Unregister(req.Activity, req.Email)
		if err != nil {
			log.Error("failed to unregister", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrActivityNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Activity not found"))
			case errors.Is(err, storage.ErrNotSignedUp):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Student is not signed up for this activity"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to unregister"))
			}
			return
		}

		log.Info("participant unregistered")

		render.JSON(w, r, response.OK(fmt.Sprintf("Unregistered %s from %s", req.Email, req.Activity)))
	}
}
