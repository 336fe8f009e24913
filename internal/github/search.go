package github

import (
	"activityBoard/internal/config"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	toolSearchIssues = "search_issues"
	defaultSort      = "created"
	defaultPerPage   = 10
)

var sortFields = map[string]string{
	"created":   "created",
	"updated":   "updated",
	"comments":  "comments",
	"reactions": "reactions",
}

var ErrNoTransport = errors.New("no MCP transport configured")

// Dialer names one way of reaching a GitHub MCP server. Transport is called
// once per search, since a command transport cannot be reused after it exits.
type Dialer struct {
	Name      string
	Transport func() mcp.Transport
}

// Searcher runs issue searches through the search_issues tool of a GitHub MCP server,
// trying each dialer in order until one answers.
type Searcher struct {
	log     *slog.Logger
	dialers []Dialer
	perPage int
	timeout time.Duration
}

func New(log *slog.Logger, cfg config.GitHub) *Searcher {
	var dialers []Dialer

	if cfg.MCPEndpoint != "" {
		endpoint := cfg.MCPEndpoint
		dialers = append(dialers, Dialer{
			Name: "endpoint",
			Transport: func() mcp.Transport {
				return &mcp.StreamableClientTransport{Endpoint: endpoint}
			},
		})
	}

	if cfg.DockerImage != "" {
		image, token := cfg.DockerImage, cfg.Token
		dialers = append(dialers, Dialer{
			Name: "docker",
			Transport: func() mcp.Transport {
				cmd := exec.Command("docker", "run", "-i", "--rm", "-e", "GITHUB_PERSONAL_ACCESS_TOKEN", image)
				cmd.Env = append(os.Environ(), "GITHUB_PERSONAL_ACCESS_TOKEN="+token)

				return &mcp.CommandTransport{Command: cmd}
			},
		})
	}

	return NewWithDialers(log, cfg.PerPage, cfg.Timeout, dialers...)
}

func NewWithDialers(log *slog.Logger, perPage int, timeout time.Duration, dialers ...Dialer) *Searcher {
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return &Searcher{
		log:     log,
		dialers: dialers,
		perPage: perPage,
		timeout: timeout,
	}
}

// SortField maps a requested sort to one the GitHub search API accepts.
func SortField(sort string) string {
	if field, ok := sortFields[sort]; ok {
		return field
	}

	return defaultSort
}

func (s *Searcher) SearchIssues(ctx context.Context, query, sort string) (models.IssueSearchResult, error) {
	const op = "github.SearchIssues"

	log := s.log.With(slog.String("op", op))

	if len(s.dialers) == 0 {
		return models.IssueSearchResult{}, fmt.Errorf("%s: %w", op, ErrNoTransport)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := map[string]any{
		"q":       query,
		"sort":    SortField(sort),
		"order":   "desc",
		"perPage": s.perPage,
	}

	var errs []error
	for _, d := range s.dialers {
		result, err := s.call(ctx, d, args)
		if err == nil {
			log.Debug("issues found",
				slog.String("via", d.Name),
				slog.Int("total_count", result.TotalCount),
				slog.Int("items", len(result.Items)),
			)

			return result, nil
		}

		log.Warn("issue search failed", slog.String("via", d.Name), sl.Err(err))
		errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))

		if ctx.Err() != nil {
			break
		}
	}

	return models.IssueSearchResult{}, fmt.Errorf("%s: %w", op, errors.Join(errs...))
}

func (s *Searcher) call(ctx context.Context, d Dialer, args map[string]any) (models.IssueSearchResult, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "activity-board",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, d.Transport(), nil)
	if err != nil {
		return models.IssueSearchResult{}, fmt.Errorf("connect: %w", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolSearchIssues,
		Arguments: args,
	})
	if err != nil {
		return models.IssueSearchResult{}, fmt.Errorf("call %s: %w", toolSearchIssues, err)
	}

	text := firstText(res)
	if res.IsError {
		return models.IssueSearchResult{}, fmt.Errorf("%s reported: %s", toolSearchIssues, text)
	}

	var result models.IssueSearchResult
	if err = json.Unmarshal([]byte(text), &result); err != nil {
		return models.IssueSearchResult{}, fmt.Errorf("decode %s result: %w", toolSearchIssues, err)
	}

	return result, nil
}

func firstText(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			return tc.Text
		}
	}

	return ""
}
