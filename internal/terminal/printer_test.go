package terminal

import (
	"activityBoard/internal/models"
	"activityBoard/internal/view"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrinterRoster(t *testing.T) {
	t.Parallel()

	roster := view.RenderRoster(models.ActivityCollection{
		{Name: "Chess Club", Description: "Chess", Schedule: "Fridays", MaxParticipants: 12, Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"}},
		{Name: "Art Club", Description: "Paint", Schedule: "Thursdays", MaxParticipants: 15},
		{Name: "Drama Club", Description: "Act", Schedule: "Mondays", MaxParticipants: 20, Participants: []string{"ella@mergington.edu"}},
	})

	var buf bytes.Buffer
	NewPrinter(&buf).Roster(roster)
	out := buf.String()

	assert.Contains(t, out, "Chess Club\n  Chess\n  Schedule: Fridays\n  Availability: 10 spots left\n")
	assert.Contains(t, out, "    [1] michael@mergington.edu\n    [2] daniel@mergington.edu\n")
	assert.Contains(t, out, "Art Club\n  Paint\n  Schedule: Thursdays\n  Availability: 15 spots left\n  Participants:\n    No participants yet\n")
	assert.Contains(t, out, "    [3] ella@mergington.edu\n")
}

func TestPrinterRosterMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(&buf).Roster(view.FailedRoster())

	assert.Equal(t, view.RosterFailed+"\n", buf.String())
}

func TestPrinterSearch(t *testing.T) {
	t.Parallel()

	panel := view.RenderSearch(models.IssueSearchResult{
		TotalCount: 42,
		Items: []models.Issue{
			{
				Number:    7,
				Title:     "Roster does not refresh",
				HTMLURL:   "https://github.com/octo/board/issues/7",
				User:      models.IssueUser{Login: "octocat"},
				CreatedAt: time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC),
				Comments:  3,
				Reactions: &models.Reactions{TotalCount: 2},
				Body:      "Steps to reproduce",
			},
		},
	}, time.UTC)

	var buf bytes.Buffer
	NewPrinter(&buf).Search(panel)

	assert.Equal(t, "Found 42 issues. Showing 1:\n"+
		"#7 Roster does not refresh\n"+
		"  https://github.com/octo/board/issues/7\n"+
		"  Opened on 11/2/2024 by octocat\n"+
		"  Comments: 3  Reactions: 2\n"+
		"  Steps to reproduce...\n\n", buf.String())
}

func TestPrinterSearchStates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		panel view.SearchPanel
		want  string
	}{
		{name: "Idle", panel: view.SearchPanel{}, want: ""},
		{name: "Invalid", panel: view.InvalidSearch(), want: view.SearchPrompt + "\n"},
		{name: "Pending", panel: view.PendingSearch(), want: view.SearchSearching + "\n"},
		{name: "Failed", panel: view.FailedSearch(), want: view.SearchFailed + "\n"},
		{name: "Empty", panel: view.RenderSearch(models.IssueSearchResult{}, time.UTC), want: view.SearchNoResults + "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			NewPrinter(&buf).Search(tc.panel)

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrinterStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Status(view.Status{Text: "hidden", Visible: false})
	p.Status(view.Status{Text: "Signed up", Kind: view.StatusSuccess, Visible: true})
	p.Status(view.Status{Text: "Activity is full", Kind: view.StatusError, Visible: true})

	assert.Equal(t, "Signed up\nActivity is full\n", buf.String())
}

func TestPrinterForm(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Form(view.SignupForm{})
	p.Form(view.SignupForm{Activity: "Chess Club", Email: "new@mergington.edu"})

	assert.Equal(t, "Signup form: activity=-- Select an activity -- email=-\n"+
		"Signup form: activity=Chess Club email=new@mergington.edu\n", buf.String())
}
