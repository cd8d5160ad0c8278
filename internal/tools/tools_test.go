package tools

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v45/github"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeAPI implements githubapi.IssuesAPI for handler tests, recording
// every call it receives.
type fakeAPI struct {
	searchResult  *github.IssuesSearchResult
	searchErr     error
	searchQueries []string
	searchOpts    []*github.SearchOptions

	issue    *github.Issue
	issueErr error
	getCalls int

	comments     []*github.IssueComment
	commentsErr  error
	commentCalls int
	commentOpts  *github.IssueListCommentsOptions

	listResult []*github.Issue
	listErr    error
	listCalls  int
	listOpts   *github.IssueListByRepoOptions
}

func (f *fakeAPI) SearchIssues(_ context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, error) {
	f.searchQueries = append(f.searchQueries, query)
	f.searchOpts = append(f.searchOpts, opts)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeAPI) GetIssue(_ context.Context, _ int) (*github.Issue, error) {
	f.getCalls++
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	return f.issue, nil
}

func (f *fakeAPI) ListComments(_ context.Context, _ int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, error) {
	f.commentCalls++
	f.commentOpts = opts
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func (f *fakeAPI) ListByRepo(_ context.Context, opts *github.IssueListByRepoOptions) ([]*github.Issue, error) {
	f.listCalls++
	f.listOpts = opts
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

// toolReq builds a CallToolRequest with the given arguments.
func toolReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult reports whether the result is a tool-level error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// apiTestError builds a go-github error response with the given
// status, as the transport would surface it.
func apiTestError(t *testing.T, status int) *github.ErrorResponse {
	t.Helper()
	u, err := url.Parse("https://api.github.com/repos/openvinotoolkit/openvino/issues")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{Method: http.MethodGet, URL: u},
		},
		Message: http.StatusText(status),
	}
}

func ghTime(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func upstreamIssue(number, comments int) *github.Issue {
	return &github.Issue{
		Number:    github.Int(number),
		Title:     github.String("Crash during inference"),
		State:     github.String("open"),
		User:      &github.User{Login: github.String("octocat")},
		CreatedAt: ghTime("2024-01-02T03:04:05Z"),
		UpdatedAt: ghTime("2024-02-03T04:05:06Z"),
		Comments:  github.Int(comments),
		Labels:    []*github.Label{{Name: github.String("bug")}},
		Body:      github.String("Steps to reproduce..."),
		HTMLURL:   github.String("https://github.com/openvinotoolkit/openvino/issues/1"),
	}
}

func upstreamPage(n int) []*github.Issue {
	out := make([]*github.Issue, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, upstreamIssue(i, 2))
	}
	return out
}
