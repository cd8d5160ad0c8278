package issues

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-github/v45/github"
)

func testTime(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse test time %q: %v", s, err)
	}
	return &parsed
}

func fullUpstreamIssue(t *testing.T) *github.Issue {
	t.Helper()
	return &github.Issue{
		Number:    github.Int(12345),
		Title:     github.String("Segfault in CPU plugin"),
		State:     github.String("open"),
		User:      &github.User{Login: github.String("octocat")},
		CreatedAt: testTime(t, "2024-01-02T03:04:05Z"),
		UpdatedAt: testTime(t, "2024-02-03T04:05:06Z"),
		Comments:  github.Int(4),
		Labels: []*github.Label{
			{Name: github.String("bug")},
			{Name: github.String("CPU")},
		},
		Body:      github.String("It crashes."),
		HTMLURL:   github.String("https://github.com/openvinotoolkit/openvino/issues/12345"),
		Assignees: []*github.User{{Login: github.String("maintainer")}},
		Milestone: &github.Milestone{Title: github.String("2024.1")},
	}
}

func TestNormalizeIssue_FullObject(t *testing.T) {
	issue := NormalizeIssue(fullUpstreamIssue(t))

	if issue.Number != 12345 {
		t.Errorf("Number = %d, want 12345", issue.Number)
	}
	if issue.Title != "Segfault in CPU plugin" {
		t.Errorf("Title = %q", issue.Title)
	}
	if issue.State != "open" {
		t.Errorf("State = %q, want open", issue.State)
	}
	if issue.Author != "octocat" {
		t.Errorf("Author = %q, want octocat", issue.Author)
	}
	if issue.CreatedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %q", issue.CreatedAt)
	}
	if issue.Comments != 4 {
		t.Errorf("Comments = %d, want 4", issue.Comments)
	}
	if !reflect.DeepEqual(issue.Labels, []string{"bug", "CPU"}) {
		t.Errorf("Labels = %v", issue.Labels)
	}
	if !reflect.DeepEqual(issue.Assignees, []string{"maintainer"}) {
		t.Errorf("Assignees = %v", issue.Assignees)
	}
	if issue.Milestone != "2024.1" {
		t.Errorf("Milestone = %q", issue.Milestone)
	}
	if issue.ClosedAt != "" {
		t.Errorf("ClosedAt = %q, want empty for open issue", issue.ClosedAt)
	}
}

func TestNormalizeIssue_MissingOptionalFields(t *testing.T) {
	issue := NormalizeIssue(&github.Issue{
		Number: github.Int(7),
		Title:  github.String("Bare issue"),
		State:  github.String("open"),
	})

	if issue.Body != "" {
		t.Errorf("missing body should normalize to empty, got %q", issue.Body)
	}
	if issue.Labels == nil || len(issue.Labels) != 0 {
		t.Errorf("missing labels should normalize to empty slice, got %v", issue.Labels)
	}
	if issue.Assignees == nil || len(issue.Assignees) != 0 {
		t.Errorf("missing assignees should normalize to empty slice, got %v", issue.Assignees)
	}
	if issue.Milestone != "" {
		t.Errorf("missing milestone should normalize to empty, got %q", issue.Milestone)
	}
	if issue.Author != "" {
		t.Errorf("missing user should normalize to empty author, got %q", issue.Author)
	}
	if issue.ClosedAt != "" {
		t.Errorf("missing closed_at should normalize to empty, got %q", issue.ClosedAt)
	}
}

func TestNormalizeIssue_ClosedAt(t *testing.T) {
	issue := NormalizeIssue(&github.Issue{
		Number:   github.Int(8),
		State:    github.String("closed"),
		ClosedAt: testTime(t, "2024-03-04T05:06:07Z"),
	})
	if issue.ClosedAt != "2024-03-04T05:06:07Z" {
		t.Errorf("ClosedAt = %q", issue.ClosedAt)
	}
}

func TestNormalizeComment(t *testing.T) {
	comment := NormalizeComment(&github.IssueComment{
		User:      &github.User{Login: github.String("reviewer")},
		CreatedAt: testTime(t, "2024-01-02T03:04:05Z"),
		Body:      github.String("Reproduced on 2024.0."),
	})

	if comment.Author != "reviewer" {
		t.Errorf("Author = %q", comment.Author)
	}
	if comment.CreatedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %q", comment.CreatedAt)
	}
	if comment.Body != "Reproduced on 2024.0." {
		t.Errorf("Body = %q", comment.Body)
	}
}

func TestExcerpt_Boundaries(t *testing.T) {
	exact := strings.Repeat("a", 500)
	if got := Excerpt(exact, IssueBodyCutoff); got != exact {
		t.Errorf("500-character body must render with no ellipsis")
	}

	over := strings.Repeat("a", 501)
	got := Excerpt(over, IssueBodyCutoff)
	if got != strings.Repeat("a", 500)+"..." {
		t.Errorf("501-character body must truncate to 500 plus ellipsis, got length %d", len(got))
	}

	exactComment := strings.Repeat("b", 300)
	if got := Excerpt(exactComment, CommentBodyCutoff); got != exactComment {
		t.Errorf("300-character comment must render with no ellipsis")
	}
	overComment := strings.Repeat("b", 301)
	if got := Excerpt(overComment, CommentBodyCutoff); got != strings.Repeat("b", 300)+"..." {
		t.Errorf("301-character comment must truncate to 300 plus ellipsis")
	}
}

func TestExcerpt_CountsRunes(t *testing.T) {
	s := strings.Repeat("é", 501)
	got := Excerpt(s, 500)
	if got != strings.Repeat("é", 500)+"..." {
		t.Errorf("excerpt must count characters, not bytes")
	}
}

func TestTruncate_NoMarker(t *testing.T) {
	s := strings.Repeat("x", 250)
	got := Truncate(s, PreviewCutoff)
	if got != strings.Repeat("x", 200) {
		t.Errorf("preview truncation must not append a marker, got length %d", len(got))
	}
	if Truncate("short", PreviewCutoff) != "short" {
		t.Error("short strings must pass through unchanged")
	}
}

func TestSearchHasMore(t *testing.T) {
	tests := []struct {
		total, page, perPage int
		want                 bool
	}{
		{25, 1, 10, true},
		{25, 2, 10, true},
		{25, 3, 10, false},
		{10, 1, 10, false},
		{11, 1, 10, true},
		{0, 1, 10, false},
		{30, 1, 30, false},
	}

	for _, tt := range tests {
		if got := SearchHasMore(tt.total, tt.page, tt.perPage); got != tt.want {
			t.Errorf("SearchHasMore(%d, %d, %d) = %v, want %v",
				tt.total, tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestListHasMore(t *testing.T) {
	if !ListHasMore(10, 10) {
		t.Error("a full page must signal more may exist")
	}
	if ListHasMore(9, 10) {
		t.Error("an under-full page must signal the end")
	}
	if ListHasMore(0, 10) {
		t.Error("an empty page must signal the end")
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-02T03:04:05Z", "2024-01-02 03:04:05 UTC"},
		{"2024-01-02T03:04:05+00:00", "2024-01-02 03:04:05 UTC"},
		{"2024-06-01T12:00:00+02:00", "2024-06-01 10:00:00 UTC"},
		// Anything unparseable passes through unchanged.
		{"not a timestamp", "not a timestamp"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
