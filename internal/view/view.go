// Package view holds the view-model of the activity board and the pure
// functions that build it from server data. Values are never mutated after
// they are built; a refresh replaces a whole panel.
package view

import (
	"activityBoard/internal/models"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	RosterLoading   = "Loading activities..."
	RosterFailed    = "Failed to load activities. Please try again later."
	NoParticipants  = "No participants yet"
	SearchPrompt    = "Please enter a search query"
	SearchSearching = "Searching for issues..."
	SearchNoResults = "No issues found matching your search criteria."
	SearchFailed    = "Error searching for issues. Please try again later."
	NoDescription   = "No description"

	excerptLength = 200
	dateLayout    = "1/2/2006"
)

// Affordance is the removal control of one participant row. The (activity,
// email) pair is the only handle a participant has.
type Affordance struct {
	Activity string
	Email    string
}

type ParticipantRow struct {
	Email  string
	Remove Affordance
}

type ActivityCard struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []ParticipantRow
}

// Empty reports whether the card shows the empty-state placeholder.
func (c ActivityCard) Empty() bool {
	return len(c.Participants) == 0
}

type Option struct {
	Value string
	Label string
}

type Roster struct {
	Cards   []ActivityCard
	Options []Option
	// Message replaces the cards while loading or after a failed refresh.
	Message string
}

// Affordances lists every removal control in render order.
func (r Roster) Affordances() []Affordance {
	var out []Affordance
	for _, card := range r.Cards {
		for _, row := range card.Participants {
			out = append(out, row.Remove)
		}
	}

	return out
}

func LoadingRoster() Roster {
	return Roster{Message: RosterLoading}
}

func FailedRoster() Roster {
	return Roster{Message: RosterFailed}
}

func RenderRoster(activities models.ActivityCollection) Roster {
	r := Roster{
		Cards:   make([]ActivityCard, 0, len(activities)),
		Options: make([]Option, 0, len(activities)),
	}

	for _, a := range activities {
		card := ActivityCard{
			Name:        a.Name,
			Description: a.Description,
			Schedule:    a.Schedule,
			SpotsLeft:   a.SpotsLeft(),
		}

		for _, email := range a.Participants {
			card.Participants = append(card.Participants, ParticipantRow{
				Email:  email,
				Remove: Affordance{Activity: a.Name, Email: email},
			})
		}

		r.Cards = append(r.Cards, card)
		r.Options = append(r.Options, Option{Value: a.Name, Label: a.Name})
	}

	return r
}

type SearchState int

const (
	SearchIdle SearchState = iota
	SearchInvalid
	SearchPending
	SearchDone
	SearchEmpty
	SearchError
)

type IssueCard struct {
	Title     string
	URL       string
	Number    int
	Opened    string
	Author    string
	AuthorURL string
	Comments  int
	Reactions int
	Excerpt   string
}

type SearchPanel struct {
	State   SearchState
	Summary string
	Cards   []IssueCard
	// Message is the inline text shown instead of results.
	Message string
}

func InvalidSearch() SearchPanel {
	return SearchPanel{State: SearchInvalid, Message: SearchPrompt}
}

func PendingSearch() SearchPanel {
	return SearchPanel{State: SearchPending, Message: SearchSearching}
}

func FailedSearch() SearchPanel {
	return SearchPanel{State: SearchError, Message: SearchFailed}
}

// RenderSearch shows dates as calendar dates in loc.
func RenderSearch(result models.IssueSearchResult, loc *time.Location) SearchPanel {
	if len(result.Items) == 0 {
		return SearchPanel{State: SearchEmpty, Message: SearchNoResults}
	}

	if loc == nil {
		loc = time.Local
	}

	p := SearchPanel{
		State:   SearchDone,
		Summary: fmt.Sprintf("Found %d issues. Showing %d:", result.TotalCount, len(result.Items)),
		Cards:   make([]IssueCard, 0, len(result.Items)),
	}

	for _, issue := range result.Items {
		p.Cards = append(p.Cards, IssueCard{
			Title:     issue.Title,
			URL:       issue.HTMLURL,
			Number:    issue.Number,
			Opened:    issue.CreatedAt.In(loc).Format(dateLayout),
			Author:    issue.User.Login,
			AuthorURL: issue.User.HTMLURL,
			Comments:  issue.Comments,
			Reactions: issue.ReactionCount(),
			Excerpt:   Excerpt(issue.Body),
		})
	}

	return p
}

// Excerpt cuts body to its first 200 characters and always marks the cut.
func Excerpt(body string) string {
	if body == "" {
		return NoDescription
	}

	if utf8.RuneCountInString(body) <= excerptLength {
		return body + "..."
	}

	runes := []rune(body)

	return string(runes[:excerptLength]) + "..."
}

type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusError
)

func (k StatusKind) String() string {
	if k == StatusError {
		return "error"
	}

	return "success"
}

// Status is the single transient message slot. Generation identifies the
// show call that produced it.
type Status struct {
	Text       string
	Kind       StatusKind
	Visible    bool
	Generation uint64
}

type SignupForm struct {
	Activity string
	Email    string
}

type Page struct {
	Revision uint64
	Roster   Roster
	Search   SearchPanel
	Status   Status
	Form     SignupForm
}

func NewPage() Page {
	return Page{Roster: LoadingRoster()}
}
