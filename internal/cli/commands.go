package cli

import (
	"activityBoard/internal/controller"
	"activityBoard/internal/terminal"
	"activityBoard/internal/view"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newActivitiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "activities",
		Aliases: []string{"list"},
		Short:   "List activities and their participants",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Format == FormatJSON {
				activities, err := app.client().Activities(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), activities)
			}

			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			defer ctrl.Close()

			ctrl.RefreshRoster(cmd.Context())

			roster := ctrl.Page().Roster
			terminal.NewPrinter(cmd.OutOrStdout()).Roster(roster)
			if roster.Message == view.RosterFailed {
				return errors.New(roster.Message)
			}

			return nil
		},
	}
}

func newSignUpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <activity> <email>",
		Short: "Sign a student up for an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, app, func(ctx context.Context, ctrl *controller.Controller) {
				ctrl.SignUp(ctx, args[0], args[1])
			})
		},
	}
}

func newUnregisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "unregister <activity> <email>",
		Aliases: []string{"remove"},
		Short:   "Remove a student from an activity",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, app, func(ctx context.Context, ctrl *controller.Controller) {
				ctrl.Unregister(ctx, args[0], args[1])
			})
		},
	}
}

// runMutation prints the status message the mutation produced and fails the
// command when it was an error.
func runMutation(cmd *cobra.Command, app *App, do func(context.Context, *controller.Controller)) error {
	ctrl, err := app.controller()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	do(cmd.Context(), ctrl)

	status := ctrl.Page().Status
	if status.Kind == view.StatusError {
		return fmt.Errorf("%w: %s", ErrRejected, status.Text)
	}

	terminal.NewPrinter(cmd.OutOrStdout()).Status(status)

	return nil
}

func newSearchCmd(app *App) *cobra.Command {
	var sort string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search GitHub issues through the activity API",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			if app.Format == FormatJSON {
				if strings.TrimSpace(query) == "" {
					return errors.New(view.SearchPrompt)
				}
				if sort == "" {
					sort = controller.DefaultSort
				}

				result, err := app.client().SearchIssues(cmd.Context(), strings.TrimSpace(query), sort)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			}

			ctrl, err := app.controller()
			if err != nil {
				return err
			}
			defer ctrl.Close()

			ctrl.SearchIssues(cmd.Context(), query, sort)

			panel := ctrl.Page().Search
			terminal.NewPrinter(cmd.OutOrStdout()).Search(panel)

			switch panel.State {
			case view.SearchError, view.SearchInvalid:
				return errors.New(panel.Message)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sort, "sort", controller.DefaultSort, "Sort by created, updated or comments")

	return cmd
}
