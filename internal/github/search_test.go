package github

import (
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchArgs struct {
	Q       string `json:"q"`
	Sort    string `json:"sort"`
	Order   string `json:"order"`
	PerPage int    `json:"perPage"`
}

type fakeServer struct {
	mu   sync.Mutex
	seen []searchArgs
	fail bool
}

func (f *fakeServer) last() searchArgs {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.seen[len(f.seen)-1]
}

func newFakeGitHub(t *testing.T, f *fakeServer) *httptest.Server {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{Name: "github-fake", Version: "test"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_issues",
		Description: "Search issues",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, any, error) {
		f.mu.Lock()
		f.seen = append(f.seen, args)
		fail := f.fail
		f.mu.Unlock()

		if fail {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "rate limited"}},
			}, nil, nil
		}

		body, err := json.Marshal(map[string]any{
			"total_count": 5,
			"items": []map[string]any{
				{"number": 7, "title": "Crash on start", "html_url": "https://github.com/o/r/issues/7", "user": map[string]any{"login": "octo"}},
				{"number": 3, "title": "Docs typo", "html_url": "https://github.com/o/r/issues/3", "user": map[string]any{"login": "cat"}},
			},
		})
		if err != nil {
			return nil, nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
		}, nil, nil
	})

	srv := httptest.NewServer(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))
	t.Cleanup(srv.Close)

	return srv
}

func endpointDialer(name, endpoint string) Dialer {
	return Dialer{
		Name: name,
		Transport: func() mcp.Transport {
			return &mcp.StreamableClientTransport{Endpoint: endpoint}
		},
	}
}

func TestSearchIssues(t *testing.T) {
	t.Parallel()

	fake := &fakeServer{}
	srv := newFakeGitHub(t, fake)

	s := NewWithDialers(slogdiscard.NewDiscardLogger(), 0, 10*time.Second, endpointDialer("endpoint", srv.URL))

	result, err := s.SearchIssues(context.Background(), "crash label:bug", "reactions")
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 7, result.Items[0].Number)
	assert.Equal(t, "octo", result.Items[0].User.Login)
	assert.Equal(t, 3, result.Items[1].Number)

	assert.Equal(t, searchArgs{Q: "crash label:bug", Sort: "reactions", Order: "desc", PerPage: 10}, fake.last())
}

func TestSearchIssuesUnknownSortFallsBackToCreated(t *testing.T) {
	t.Parallel()

	fake := &fakeServer{}
	srv := newFakeGitHub(t, fake)

	s := NewWithDialers(slogdiscard.NewDiscardLogger(), 3, 10*time.Second, endpointDialer("endpoint", srv.URL))

	_, err := s.SearchIssues(context.Background(), "crash", "stars")
	require.NoError(t, err)

	assert.Equal(t, "created", fake.last().Sort)
	assert.Equal(t, 3, fake.last().PerPage)
}

func TestSearchIssuesFallsBackToNextDialer(t *testing.T) {
	t.Parallel()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	fake := &fakeServer{}
	srv := newFakeGitHub(t, fake)

	s := NewWithDialers(slogdiscard.NewDiscardLogger(), 0, 10*time.Second,
		endpointDialer("endpoint", deadURL),
		endpointDialer("fallback", srv.URL),
	)

	result, err := s.SearchIssues(context.Background(), "crash", "created")
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalCount)
}

func TestSearchIssuesToolError(t *testing.T) {
	t.Parallel()

	fake := &fakeServer{fail: true}
	srv := newFakeGitHub(t, fake)

	s := NewWithDialers(slogdiscard.NewDiscardLogger(), 0, 10*time.Second, endpointDialer("endpoint", srv.URL))

	_, err := s.SearchIssues(context.Background(), "crash", "created")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSearchIssuesWithoutDialers(t *testing.T) {
	t.Parallel()

	s := NewWithDialers(slogdiscard.NewDiscardLogger(), 0, 0)

	_, err := s.SearchIssues(context.Background(), "crash", "created")
	assert.ErrorIs(t, err, ErrNoTransport)
}

func TestSortField(t *testing.T) {
	t.Parallel()

	for _, sort := range []string{"created", "updated", "comments", "reactions"} {
		assert.Equal(t, sort, SortField(sort))
	}
	assert.Equal(t, "created", SortField(""))
}
