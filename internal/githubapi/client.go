// Package githubapi is the transport layer: a thin, repo-scoped
// wrapper over the go-github client. It owns the outbound HTTP
// concerns (API version header, client User-Agent, request timeout,
// optional token) and nothing else — classification of its failures
// and interpretation of its responses happen in internal/issues.
package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/HendryAvila/openvino-issues-mcp/internal/logging"
	"github.com/google/go-github/v45/github"
	"golang.org/x/oauth2"
)

// The repository every tool queries.
const (
	Owner = "openvinotoolkit"
	Repo  = "openvino"
)

const (
	userAgent      = "openvino-issues-mcp"
	requestTimeout = 30 * time.Second
)

// Slug returns the "owner/name" form used in search query syntax.
func Slug() string {
	return Owner + "/" + Repo
}

// IssuesAPI is the capability the tool facades depend on. The concrete
// Client satisfies it; tests substitute fakes.
type IssuesAPI interface {
	SearchIssues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, error)
	GetIssue(ctx context.Context, number int) (*github.Issue, error)
	ListComments(ctx context.Context, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, error)
	ListByRepo(ctx context.Context, opts *github.IssueListByRepoOptions) ([]*github.Issue, error)
}

// Client calls the GitHub Issues REST API for the configured
// repository. Safe for concurrent use; holds no mutable state beyond
// the underlying http.Client.
type Client struct {
	gh *github.Client
}

// NewClient builds a Client. When token is non-empty, requests are
// authenticated via a static oauth2 token source; otherwise they go
// out unauthenticated against GitHub's public rate limits. Every
// request is bounded by a 30-second timeout.
func NewClient(token string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = requestTimeout

	gh := github.NewClient(hc)
	gh.UserAgent = userAgent
	return &Client{gh: gh}
}

// SearchIssues runs a search-syntax query against the search endpoint.
func (c *Client) SearchIssues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, error) {
	logging.Debug("searching issues", "query", query, "page", opts.Page, "per_page", opts.PerPage)
	result, _, err := c.gh.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}
	return result, nil
}

// GetIssue fetches a single issue by number.
func (c *Client) GetIssue(ctx context.Context, number int) (*github.Issue, error) {
	logging.Debug("fetching issue", "number", number)
	issue, _, err := c.gh.Issues.Get(ctx, Owner, Repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching issue #%d: %w", number, err)
	}
	return issue, nil
}

// ListComments fetches a page of an issue's comments.
func (c *Client) ListComments(ctx context.Context, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, error) {
	logging.Debug("fetching comments", "number", number, "per_page", opts.PerPage)
	comments, _, err := c.gh.Issues.ListComments(ctx, Owner, Repo, number, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching comments for issue #%d: %w", number, err)
	}
	return comments, nil
}

// ListByRepo fetches a page of the repository's issues with the given
// filters.
func (c *Client) ListByRepo(ctx context.Context, opts *github.IssueListByRepoOptions) ([]*github.Issue, error) {
	logging.Debug("listing issues", "labels", opts.Labels, "state", opts.State, "page", opts.Page)
	result, _, err := c.gh.Issues.ListByRepo(ctx, Owner, Repo, opts)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	return result, nil
}
