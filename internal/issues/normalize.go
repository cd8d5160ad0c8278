package issues

import (
	"time"

	"github.com/google/go-github/v45/github"
)

// Truncation cutoffs for rendered excerpts.
const (
	IssueBodyCutoff   = 500
	CommentBodyCutoff = 300
	PreviewCutoff     = 200
)

// Issue is the normalized, format-agnostic shape of an upstream issue.
// Optional upstream fields are defaulted here so the renderers never
// see nil: a missing body becomes "", missing labels an empty slice,
// a missing milestone or closed_at an empty string. Timestamps are
// carried as RFC 3339 strings; formatting happens at render time.
type Issue struct {
	Number    int
	Title     string
	State     string
	Author    string
	CreatedAt string
	UpdatedAt string
	ClosedAt  string
	Comments  int
	Labels    []string
	Body      string
	URL       string
	Assignees []string
	Milestone string
}

// Comment is the normalized shape of an upstream issue comment.
type Comment struct {
	Author    string
	CreatedAt string
	Body      string
}

// NormalizeIssue extracts the documented field subset from an upstream
// issue, tolerating absent optional fields.
func NormalizeIssue(issue *github.Issue) Issue {
	out := Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		Author:    issue.GetUser().GetLogin(),
		CreatedAt: timestampString(issue.CreatedAt),
		UpdatedAt: timestampString(issue.UpdatedAt),
		Comments:  issue.GetComments(),
		Labels:    []string{},
		Body:      issue.GetBody(),
		URL:       issue.GetHTMLURL(),
		Assignees: []string{},
	}

	if issue.ClosedAt != nil {
		out.ClosedAt = timestampString(issue.ClosedAt)
	}
	for _, label := range issue.Labels {
		out.Labels = append(out.Labels, label.GetName())
	}
	for _, assignee := range issue.Assignees {
		out.Assignees = append(out.Assignees, assignee.GetLogin())
	}
	if issue.Milestone != nil {
		out.Milestone = issue.Milestone.GetTitle()
	}

	return out
}

// NormalizeIssues normalizes a page of upstream issues, preserving
// order.
func NormalizeIssues(upstream []*github.Issue) []Issue {
	out := make([]Issue, 0, len(upstream))
	for _, issue := range upstream {
		out = append(out, NormalizeIssue(issue))
	}
	return out
}

// NormalizeComment extracts the documented field subset from an
// upstream comment.
func NormalizeComment(comment *github.IssueComment) Comment {
	return Comment{
		Author:    comment.GetUser().GetLogin(),
		CreatedAt: timestampString(comment.CreatedAt),
		Body:      comment.GetBody(),
	}
}

// NormalizeComments normalizes a page of upstream comments, preserving
// order.
func NormalizeComments(upstream []*github.IssueComment) []Comment {
	out := make([]Comment, 0, len(upstream))
	for _, comment := range upstream {
		out = append(out, NormalizeComment(comment))
	}
	return out
}

// Excerpt truncates s to at most cutoff characters, appending an
// ellipsis marker only when truncation actually occurred. Counts are
// in runes so multi-byte text is never split mid-character.
func Excerpt(s string, cutoff int) string {
	runes := []rune(s)
	if len(runes) <= cutoff {
		return s
	}
	return string(runes[:cutoff]) + "..."
}

// Truncate cuts s to at most cutoff characters with no marker. Used
// for the body_preview field in structured list payloads.
func Truncate(s string, cutoff int) string {
	runes := []rune(s)
	if len(runes) <= cutoff {
		return s
	}
	return string(runes[:cutoff])
}

// SearchHasMore reports whether the search result set extends past the
// current page. The search endpoint's total_count is authoritative.
func SearchHasMore(totalCount, page, perPage int) bool {
	return totalCount > page*perPage
}

// ListHasMore derives a best-effort "more may exist" signal for the
// repository listing endpoint, which reports no total count: a full
// page suggests more, an under-full page is the end.
func ListHasMore(returned, perPage int) bool {
	return returned == perPage
}

// FormatTimestamp renders an ISO-8601 instant as
// "YYYY-MM-DD HH:MM:SS UTC". Anything that fails to parse is returned
// unchanged so a malformed upstream timestamp never fails a response.
func FormatTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

func timestampString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
