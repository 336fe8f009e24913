package terminal

import (
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/view"
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const help = `Commands:
  list                          reload and show activities
  select <number|name>          choose the activity for signup
  email <address>               set the signup email
  signup                        submit the signup form
  remove <number>               unregister a numbered participant
  search [--sort=KEY] <query>   search GitHub issues (created, updated, comments)
  show                          show the whole board
  help                          show this help
  quit                          leave
`

// Board is the part of the controller a session drives.
type Board interface {
	RefreshRoster(ctx context.Context)
	SetForm(activity, email string)
	SubmitSignUp(ctx context.Context)
	Unregister(ctx context.Context, activity, email string)
	SearchIssues(ctx context.Context, query, sort string)
	Page() view.Page
}

type Session struct {
	log     *slog.Logger
	board   Board
	printer *Printer
	in      io.Reader
	out     io.Writer
	prompt  bool
}

// NewSession reads commands from in. prompt controls whether a prompt is
// written before each line, which only makes sense on a terminal.
func NewSession(log *slog.Logger, board Board, in io.Reader, out io.Writer, prompt bool) *Session {
	return &Session{
		log:     log,
		board:   board,
		printer: NewPrinter(out),
		in:      in,
		out:     out,
		prompt:  prompt,
	}
}

// Run loads the roster, then executes commands until quit, end of input or
// ctx is done.
func (s *Session) Run(ctx context.Context) error {
	const op = "terminal.Session.Run"

	log := s.log.With(slog.String("op", op))

	s.printer.Roster(s.board.Page().Roster)
	s.board.RefreshRoster(ctx)
	s.printer.Roster(s.board.Page().Roster)

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if quit := s.exec(ctx, line); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error("failed to read input", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Session) exec(ctx context.Context, line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	s.log.Debug("command", slog.String("name", name))

	switch strings.ToLower(name) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, help)
	case "list", "refresh":
		s.board.RefreshRoster(ctx)
		s.printer.Roster(s.board.Page().Roster)
	case "select":
		s.selectActivity(rest)
	case "email":
		s.board.SetForm(s.board.Page().Form.Activity, rest)
		s.printer.Form(s.board.Page().Form)
	case "signup":
		s.board.SubmitSignUp(ctx)
		s.afterMutation()
	case "remove":
		s.remove(ctx, rest)
	case "search":
		query, sort := parseSearch(rest)
		s.board.SearchIssues(ctx, query, sort)
		s.printer.Search(s.board.Page().Search)
	case "show":
		s.printer.Page(s.board.Page())
	default:
		errorColor.Fprintf(s.out, "unknown command %q, type help\n", name)
	}

	return false
}

// selectActivity accepts an option number or an exact activity name.
func (s *Session) selectActivity(arg string) {
	page := s.board.Page()
	options := page.Roster.Options

	if arg == "" {
		s.printer.Options(options)
		return
	}

	activity := arg
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(options) {
			errorColor.Fprintf(s.out, "no activity number %d\n", n)
			return
		}
		activity = options[n-1].Value
	}

	s.board.SetForm(activity, page.Form.Email)
	s.printer.Form(s.board.Page().Form)
}

func (s *Session) remove(ctx context.Context, arg string) {
	affordances := s.board.Page().Roster.Affordances()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(affordances) {
		errorColor.Fprintf(s.out, "no participant number %q\n", arg)
		return
	}

	target := affordances[n-1]
	s.board.Unregister(ctx, target.Activity, target.Email)
	s.afterMutation()
}

func (s *Session) afterMutation() {
	page := s.board.Page()

	s.printer.Status(page.Status)
	s.printer.Roster(page.Roster)
}

// parseSearch splits an optional leading --sort=KEY or --sort KEY off the
// query.
func parseSearch(arg string) (query, sort string) {
	fields := strings.Fields(arg)

	for len(fields) > 0 && (fields[0] == "--sort" || strings.HasPrefix(fields[0], "--sort=")) {
		flag := fields[0]
		fields = fields[1:]

		if value, ok := strings.CutPrefix(flag, "--sort="); ok {
			sort = value
			continue
		}
		if flag == "--sort" && len(fields) > 0 {
			sort = fields[0]
			fields = fields[1:]
		}
	}

	return strings.Join(fields, " "), sort
}
