// Package controller keeps the activity board view-model in sync with the
// activity API. Every action is a request/response cycle that ends by
// replacing one panel of the page and handing a snapshot to the renderer.
package controller

import (
	"activityBoard/internal/client"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"activityBoard/internal/view"
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	DefaultStatusTTL = 5 * time.Second
	DefaultSort      = "created"

	MsgSignUpFailed     = "Failed to sign up. Please try again."
	MsgUnregisterFailed = "Failed to unregister. Please try again."
	MsgGenericFailure   = "An error occurred"

	taskRoster = "roster"
	taskSearch = "search"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	Activities(ctx context.Context) (models.ActivityCollection, error)
	SignUp(ctx context.Context, activity, email string) (client.Result, error)
	Unregister(ctx context.Context, activity, email string) (client.Result, error)
	SearchIssues(ctx context.Context, query, sort string) (models.IssueSearchResult, error)
}

type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Controller)

func WithStatusTTL(d time.Duration) Option {
	return func(c *Controller) {
		c.statusTTL = d
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		c.location = loc
	}
}

// WithRenderer registers fn to receive every new page. Calls are serialized
// and a page older than one already delivered is skipped.
func WithRenderer(fn func(view.Page)) Option {
	return func(c *Controller) {
		c.render = fn
	}
}

func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Controller) {
		c.afterFunc = fn
	}
}

type task struct {
	id     uint64
	cancel context.CancelFunc
}

type Controller struct {
	log       *slog.Logger
	api       API
	statusTTL time.Duration
	location  *time.Location
	afterFunc AfterFunc
	render    func(view.Page)

	mu          sync.Mutex
	page        view.Page
	statusTimer Timer
	tasks       map[string]task
	lastTask    uint64
	closed      bool

	renderMu sync.Mutex
	rendered uint64
}

func New(log *slog.Logger, api API, opts ...Option) *Controller {
	c := &Controller{
		log:       log,
		api:       api,
		statusTTL: DefaultStatusTTL,
		location:  time.Local,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		page:  view.NewPage(),
		tasks: make(map[string]task),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Page returns the current view-model.
func (c *Controller) Page() view.Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// Close cancels every running task and the pending status hide. Results that
// arrive afterwards are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for key, t := range c.tasks {
		t.cancel()
		delete(c.tasks, key)
	}

	if c.statusTimer != nil {
		c.statusTimer.Stop()
		c.statusTimer = nil
	}
}

// RefreshRoster rebuilds the roster panel and the activity options from a
// fresh copy of the activity collection.
func (c *Controller) RefreshRoster(ctx context.Context) {
	const op = "controller.RefreshRoster"

	log := c.log.With(slog.String("op", op))

	ctx, id, done := c.begin(ctx, taskRoster)
	defer done()

	activities, err := c.api.Activities(ctx)

	c.mu.Lock()
	if !c.liveLocked(ctx, taskRoster, id) {
		c.mu.Unlock()
		log.Debug("superseded roster response dropped")
		return
	}

	if err != nil {
		log.Error("failed to fetch activities", sl.Err(err))
		c.page.Roster = view.FailedRoster()
	} else {
		log.Debug("roster rendered", slog.Int("activities", len(activities)))
		c.page.Roster = view.RenderRoster(activities)
	}

	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)
}

// SetForm records the values entered in the signup form.
func (c *Controller) SetForm(activity, email string) {
	c.mu.Lock()
	c.page.Form = view.SignupForm{Activity: activity, Email: email}
	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)
}

// SubmitSignUp signs up with whatever the form currently holds.
func (c *Controller) SubmitSignUp(ctx context.Context) {
	form := c.Page().Form

	c.SignUp(ctx, form.Activity, form.Email)
}

func (c *Controller) SignUp(ctx context.Context, activity, email string) {
	c.mutate(ctx, mutation{
		name:      "signup",
		call:      c.api.SignUp,
		failure:   MsgSignUpFailed,
		resetForm: true,
	}, activity, email)
}

// Unregister has no client-side guard: removing an absent participant is
// left to the server to refuse.
func (c *Controller) Unregister(ctx context.Context, activity, email string) {
	c.mutate(ctx, mutation{
		name:    "unregister",
		call:    c.api.Unregister,
		failure: MsgUnregisterFailed,
	}, activity, email)
}

type mutation struct {
	name      string
	call      func(ctx context.Context, activity, email string) (client.Result, error)
	failure   string
	resetForm bool
}

func (c *Controller) mutate(ctx context.Context, m mutation, activity, email string) {
	log := c.log.With(
		slog.String("op", "controller."+m.name),
		slog.String("activity", activity),
		slog.String("email", email),
	)

	key := m.name + "\x00" + activity + "\x00" + email

	ctx, id, done := c.begin(ctx, key)
	defer done()

	res, err := m.call(ctx, activity, email)

	c.mu.Lock()
	if !c.liveLocked(ctx, key, id) {
		c.mu.Unlock()
		log.Debug("superseded response dropped")
		return
	}

	refresh := false

	switch {
	case err != nil:
		log.Error("request failed", sl.Err(err))
		c.showStatusLocked(m.failure, view.StatusError)
	case !res.OK():
		log.Warn("request rejected", slog.Int("status", res.Status), slog.String("detail", res.Detail))

		detail := res.Detail
		if detail == "" {
			detail = MsgGenericFailure
		}
		c.showStatusLocked(detail, view.StatusError)
	default:
		log.Info("request accepted", slog.String("message", res.Message))

		c.showStatusLocked(res.Message, view.StatusSuccess)
		if m.resetForm {
			c.page.Form = view.SignupForm{}
		}
		refresh = true
	}

	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)

	if refresh {
		c.RefreshRoster(ctx)
	}
}

// SearchIssues fills the search panel. It never touches the roster.
func (c *Controller) SearchIssues(ctx context.Context, query, sort string) {
	const op = "controller.SearchIssues"

	log := c.log.With(slog.String("op", op))

	query = strings.TrimSpace(query)
	if query == "" {
		c.mu.Lock()
		c.cancelLocked(taskSearch)
		c.page.Search = view.InvalidSearch()
		page := c.commitLocked()
		c.mu.Unlock()

		c.emit(page)
		return
	}

	if sort == "" {
		sort = DefaultSort
	}

	log = log.With(slog.String("q", query), slog.String("sort", sort))

	ctx, id, done := c.begin(ctx, taskSearch)
	defer done()

	c.mu.Lock()
	c.page.Search = view.PendingSearch()
	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)

	result, err := c.api.SearchIssues(ctx, query, sort)

	c.mu.Lock()
	if !c.liveLocked(ctx, taskSearch, id) {
		c.mu.Unlock()
		log.Debug("superseded search response dropped")
		return
	}

	if err != nil {
		log.Error("failed to search issues", sl.Err(err))
		c.page.Search = view.FailedSearch()
	} else {
		log.Debug("search rendered", slog.Int("total_count", result.TotalCount), slog.Int("items", len(result.Items)))
		c.page.Search = view.RenderSearch(result, c.location)
	}

	page = c.commitLocked()
	c.mu.Unlock()

	c.emit(page)
}

// ShowStatus displays text in the status slot and schedules its hide.
func (c *Controller) ShowStatus(text string, kind view.StatusKind) {
	c.mu.Lock()
	c.showStatusLocked(text, kind)
	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)
}

func (c *Controller) showStatusLocked(text string, kind view.StatusKind) {
	if c.statusTimer != nil {
		c.statusTimer.Stop()
		c.statusTimer = nil
	}

	generation := c.page.Status.Generation + 1
	c.page.Status = view.Status{
		Text:       text,
		Kind:       kind,
		Visible:    true,
		Generation: generation,
	}

	if c.closed {
		return
	}

	c.statusTimer = c.afterFunc(c.statusTTL, func() {
		c.hideStatus(generation)
	})
}

// hideStatus only hides the message shown by the matching generation; a
// stopped timer that fired anyway finds a newer generation and does nothing.
func (c *Controller) hideStatus(generation uint64) {
	c.mu.Lock()
	if c.page.Status.Generation != generation || !c.page.Status.Visible {
		c.mu.Unlock()
		return
	}

	c.page.Status.Visible = false
	c.statusTimer = nil
	page := c.commitLocked()
	c.mu.Unlock()

	c.emit(page)
}

// begin registers a task under key, cancelling the one it replaces. The
// returned func must be called when the task ends.
func (c *Controller) begin(ctx context.Context, key string) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked(key)

	c.lastTask++
	id := c.lastTask

	if c.closed {
		cancel()
	} else {
		c.tasks[key] = task{id: id, cancel: cancel}
	}

	return ctx, id, func() {
		cancel()

		c.mu.Lock()
		defer c.mu.Unlock()

		if t, ok := c.tasks[key]; ok && t.id == id {
			delete(c.tasks, key)
		}
	}
}

func (c *Controller) cancelLocked(key string) {
	if t, ok := c.tasks[key]; ok {
		t.cancel()
		delete(c.tasks, key)
	}
}

func (c *Controller) liveLocked(ctx context.Context, key string, id uint64) bool {
	t, ok := c.tasks[key]

	return ok && t.id == id && ctx.Err() == nil
}

func (c *Controller) commitLocked() view.Page {
	c.page.Revision++

	return c.page
}

func (c *Controller) emit(page view.Page) {
	if c.render == nil {
		return
	}

	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	if page.Revision <= c.rendered {
		return
	}
	c.rendered = page.Revision

	c.render(page)
}
