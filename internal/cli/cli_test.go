package cli

import (
	"activityBoard/internal/config"
	"activityBoard/internal/http-server/router"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"activityBoard/internal/models"
	"activityBoard/internal/storage/memory"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type stubSearcher struct{}

func (stubSearcher) SearchIssues(_ context.Context, query, sort string) (models.IssueSearchResult, error) {
	if query == "broken" {
		return models.IssueSearchResult{}, errors.New("mcp server unavailable")
	}

	return models.IssueSearchResult{
		TotalCount: 12,
		Items: []models.Issue{
			{Number: 4, Title: "Sorted by " + sort, CreatedAt: time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC)},
		},
	}, nil
}

func newServer(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(router.New(slogdiscard.NewDiscardLogger(), config.HTTPServer{}, memory.NewSeeded(), stubSearcher{}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestActivitiesText(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "--server", newServer(t), "--format", "text", "activities")
	require.NoError(t, err)

	assert.Contains(t, out, "Chess Club\n")
	assert.Contains(t, out, "    [1] michael@mergington.edu\n")
}

func TestActivitiesJSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "--server", newServer(t), "--format", "json", "activities")
	require.NoError(t, err)

	var activities models.ActivityCollection
	require.NoError(t, json.Unmarshal([]byte(out), &activities))
	require.NotEmpty(t, activities)
	assert.Equal(t, "Chess Club", activities[0].Name)
}

func TestActivitiesServerDown(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "--server", "http://127.0.0.1:1", "--format", "text", "activities")
	require.Error(t, err)

	assert.Contains(t, out, "Failed to load activities")
}

func TestSignUpAndUnregister(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	out, err := run(t, "", "--server", server, "signup", "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up new@mergington.edu for Chess Club\n", out)

	_, err = run(t, "", "--server", server, "signup", "Chess Club", "new@mergington.edu")
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Student is already signed up")

	out, err = run(t, "", "--server", server, "unregister", "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered new@mergington.edu from Chess Club\n", out)

	_, err = run(t, "", "--server", server, "remove", "Chess Club", "new@mergington.edu")
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Student is not signed up for this activity")
}

func TestSearch(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	out, err := run(t, "", "--server", server, "--format", "text", "search", "--sort", "updated", "roster", "bug")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 12 issues. Showing 1:\n#4 Sorted by updated\n")

	out, err = run(t, "", "--server", server, "--format", "json", "search", "roster")
	require.NoError(t, err)

	var result models.IssueSearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 12, result.TotalCount)
	assert.Equal(t, "Sorted by created", result.Items[0].Title)

	out, err = run(t, "", "--server", server, "--format", "text", "search", "broken")
	require.Error(t, err)
	assert.Contains(t, out, "Error searching for issues. Please try again later.")
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "--format", "yaml", "activities")
	assert.ErrorContains(t, err, "invalid --format")
}

func TestInteractiveSession(t *testing.T) {
	t.Parallel()

	out, err := run(t, "select 2\nemail new@mergington.edu\nsignup\nquit\n", "--server", newServer(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Signup form: activity=Programming Class email=new@mergington.edu\n")
	assert.Contains(t, out, "Signed up new@mergington.edu for Programming Class\n")
}
