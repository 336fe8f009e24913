// Package terminal draws the activity board view-model as text and drives it
// from a line-oriented command session.
package terminal

import (
	"activityBoard/internal/view"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	linkColor    = color.New(color.FgBlue)
	indexColor   = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Page(page view.Page) {
	p.Roster(page.Roster)
	p.Form(page.Form)
	p.Search(page.Search)
	p.Status(page.Status)
}

// Roster numbers participant rows across all cards in render order; the
// numbers are what the remove command takes.
func (p *Printer) Roster(r view.Roster) {
	if r.Message != "" {
		mutedColor.Fprintln(p.w, r.Message)
		return
	}

	n := 0
	for _, card := range r.Cards {
		headingColor.Fprintln(p.w, card.Name)
		fmt.Fprintf(p.w, "  %s\n", card.Description)
		fmt.Fprintf(p.w, "  Schedule: %s\n", card.Schedule)
		fmt.Fprintf(p.w, "  Availability: %d spots left\n", card.SpotsLeft)
		fmt.Fprintln(p.w, "  Participants:")

		if card.Empty() {
			mutedColor.Fprintf(p.w, "    %s\n", view.NoParticipants)
		}

		for _, row := range card.Participants {
			n++
			indexColor.Fprintf(p.w, "    [%d]", n)
			fmt.Fprintf(p.w, " %s\n", row.Email)
		}

		fmt.Fprintln(p.w)
	}
}

func (p *Printer) Options(options []view.Option) {
	for i, opt := range options {
		indexColor.Fprintf(p.w, "  [%d]", i+1)
		fmt.Fprintf(p.w, " %s\n", opt.Label)
	}
}

func (p *Printer) Form(f view.SignupForm) {
	activity, email := f.Activity, f.Email
	if activity == "" {
		activity = "-- Select an activity --"
	}
	if email == "" {
		email = "-"
	}

	mutedColor.Fprintf(p.w, "Signup form: activity=%s email=%s\n", activity, email)
}

func (p *Printer) Search(s view.SearchPanel) {
	switch s.State {
	case view.SearchIdle:
		return
	case view.SearchDone:
	default:
		mutedColor.Fprintln(p.w, s.Message)
		return
	}

	headingColor.Fprintln(p.w, s.Summary)
	for _, card := range s.Cards {
		fmt.Fprintf(p.w, "#%d %s\n", card.Number, card.Title)
		linkColor.Fprintf(p.w, "  %s\n", card.URL)
		fmt.Fprintf(p.w, "  Opened on %s by %s\n", card.Opened, card.Author)
		fmt.Fprintf(p.w, "  Comments: %d  Reactions: %d\n", card.Comments, card.Reactions)
		mutedColor.Fprintf(p.w, "  %s\n", card.Excerpt)
		fmt.Fprintln(p.w)
	}
}

// Status prints nothing once the message has been hidden.
func (p *Printer) Status(s view.Status) {
	if !s.Visible {
		return
	}

	if s.Kind == view.StatusError {
		errorColor.Fprintln(p.w, s.Text)
		return
	}

	successColor.Fprintln(p.w, s.Text)
}
