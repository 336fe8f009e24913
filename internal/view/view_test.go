package view

import (
	"activityBoard/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivities() models.ActivityCollection {
	return models.ActivityCollection{
		{Name: "Soccer Team", Description: "Matches", Schedule: "Tue", MaxParticipants: 22, Participants: []string{"liam@mergington.edu", "noah@mergington.edu"}},
		{Name: "Art Club", Description: "Paint", Schedule: "Thu", MaxParticipants: 15, Participants: []string{}},
		{Name: "Overbooked", MaxParticipants: 1, Participants: []string{"a@b.edu", "c@d.edu"}},
	}
}

func TestRenderRoster(t *testing.T) {
	t.Parallel()

	activities := testActivities()
	r := RenderRoster(activities)

	require.Len(t, r.Cards, 3)
	assert.Empty(t, r.Message)

	for i, a := range activities {
		assert.Equal(t, a.Name, r.Cards[i].Name)
		assert.Equal(t, a.MaxParticipants-len(a.Participants), r.Cards[i].SpotsLeft)
		assert.Equal(t, Option{Value: a.Name, Label: a.Name}, r.Options[i])
	}

	assert.Equal(t, -1, r.Cards[2].SpotsLeft)

	assert.False(t, r.Cards[0].Empty())
	assert.Equal(t, ParticipantRow{
		Email:  "noah@mergington.edu",
		Remove: Affordance{Activity: "Soccer Team", Email: "noah@mergington.edu"},
	}, r.Cards[0].Participants[1])
}

func TestRenderRosterEmptyActivityHasNoAffordances(t *testing.T) {
	t.Parallel()

	r := RenderRoster(testActivities())

	art := r.Cards[1]
	assert.True(t, art.Empty())

	for _, a := range r.Affordances() {
		assert.NotEqual(t, "Art Club", a.Activity)
	}
	assert.Len(t, r.Affordances(), 4)
}

func TestRenderRosterIsIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RenderRoster(testActivities()), RenderRoster(testActivities()))
}

func TestRenderSearch(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
	body := strings.Repeat("é", 250)

	result := models.IssueSearchResult{
		TotalCount: 5,
		Items: []models.Issue{
			{Number: 9, Title: "First", HTMLURL: "https://x/9", User: models.IssueUser{Login: "octo", HTMLURL: "https://x/octo"}, CreatedAt: created, Comments: 2, Body: body, Reactions: &models.Reactions{TotalCount: 7}},
			{Number: 4, Title: "Second", CreatedAt: created, Body: "short"},
			{Number: 1, Title: "Third", CreatedAt: created},
		},
	}

	p := RenderSearch(result, time.UTC)

	assert.Equal(t, SearchDone, p.State)
	assert.Equal(t, "Found 5 issues. Showing 3:", p.Summary)
	require.Len(t, p.Cards, 3)

	assert.Equal(t, []int{9, 4, 1}, []int{p.Cards[0].Number, p.Cards[1].Number, p.Cards[2].Number})
	assert.Equal(t, "3/14/2025", p.Cards[0].Opened)
	assert.Equal(t, "octo", p.Cards[0].Author)
	assert.Equal(t, 7, p.Cards[0].Reactions)
	assert.Equal(t, strings.Repeat("é", 200)+"...", p.Cards[0].Excerpt)

	assert.Equal(t, 0, p.Cards[1].Reactions)
	assert.Equal(t, "short...", p.Cards[1].Excerpt)
	assert.Equal(t, NoDescription, p.Cards[2].Excerpt)
}

func TestRenderSearchUsesLocationForDates(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	result := models.IssueSearchResult{
		TotalCount: 1,
		Items:      []models.Issue{{CreatedAt: time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)}},
	}

	assert.Equal(t, "3/15/2025", RenderSearch(result, tokyo).Cards[0].Opened)
}

func TestRenderSearchWithoutItems(t *testing.T) {
	t.Parallel()

	p := RenderSearch(models.IssueSearchResult{TotalCount: 3}, time.UTC)

	assert.Equal(t, SearchEmpty, p.State)
	assert.Equal(t, SearchNoResults, p.Message)
	assert.Empty(t, p.Cards)
}

func TestNewPageStartsLoading(t *testing.T) {
	t.Parallel()

	p := NewPage()

	assert.Equal(t, RosterLoading, p.Roster.Message)
	assert.Equal(t, SearchIdle, p.Search.State)
	assert.False(t, p.Status.Visible)
}
