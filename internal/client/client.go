package client

import (
	"activityBoard/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/render"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// Result is the decoded answer of a mutation: Message when the server accepted
// it, Detail (possibly empty) when it refused.
type Result struct {
	Status  int
	Message string
	Detail  string
}

func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the activity API at baseURL. A nil httpClient means
// a client without a timeout; requests end only through their context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Activities(ctx context.Context) (models.ActivityCollection, error) {
	const op = "client.Activities"

	var out models.ActivityCollection
	if err := c.get(ctx, "/activities", &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (c *Client) SearchIssues(ctx context.Context, query, sort string) (models.IssueSearchResult, error) {
	const op = "client.SearchIssues"

	q := url.Values{}
	q.Set("q", query)
	q.Set("sort", sort)

	var out models.IssueSearchResult
	if err := c.get(ctx, "/github/search-issues?"+q.Encode(), &out); err != nil {
		return models.IssueSearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (c *Client) SignUp(ctx context.Context, activity, email string) (Result, error) {
	const op = "client.SignUp"

	res, err := c.mutate(ctx, http.MethodPost, participantPath(activity, "signup", email))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func (c *Client) Unregister(ctx context.Context, activity, email string) (Result, error) {
	const op = "client.Unregister"

	res, err := c.mutate(ctx, http.MethodDelete, participantPath(activity, "unregister", email))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func participantPath(activity, action, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/" + action + "?email=" + url.QueryEscape(email)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.send(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err = render.DecodeJSON(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}

func (c *Client) mutate(ctx context.Context, method, path string) (Result, error) {
	resp, err := c.send(ctx, method, path)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err = render.DecodeJSON(resp.Body, &payload); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	res := Result{Status: resp.StatusCode}
	if res.OK() {
		res.Message = payload.Message
		return res, nil
	}

	// Validation failures may carry a structured detail; only a plain string is shown.
	var detail string
	if json.Unmarshal(payload.Detail, &detail) == nil {
		res.Detail = detail
	}

	return res, nil
}

func (c *Client) send(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}
