package issues

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v45/github"
)

// BuildSearchQuery composes the GitHub search syntax for a validated
// search input: the caller's keywords scoped to the repository and the
// issue type, then a state clause unless state is "all", then one
// label clause per comma-separated label.
func BuildSearchQuery(in SearchInput, repo string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s repo:%s is:issue", in.Query, repo))

	if in.State != StateAll {
		sb.WriteString(fmt.Sprintf(" state:%s", in.State))
	}

	for _, label := range SplitLabels(in.Labels) {
		sb.WriteString(fmt.Sprintf(" label:%s", label))
	}

	return sb.String()
}

// SearchOptions maps a search input onto the search endpoint's request
// parameters.
func SearchOptions(in SearchInput) *github.SearchOptions {
	return &github.SearchOptions{
		Sort:  string(in.Sort),
		Order: string(in.Order),
		ListOptions: github.ListOptions{
			PerPage: in.PerPage,
			Page:    in.Page,
		},
	}
}

// ByLabelOptions maps a list-by-label input onto the repository issues
// endpoint's request parameters. This endpoint names its sort
// direction "direction" where search uses "order"; both come from the
// same user-facing order field.
func ByLabelOptions(in ByLabelInput) *github.IssueListByRepoOptions {
	return &github.IssueListByRepoOptions{
		Labels:    SplitLabels(in.Labels),
		State:     string(in.State),
		Sort:      string(in.Sort),
		Direction: string(in.Order),
		ListOptions: github.ListOptions{
			PerPage: in.PerPage,
			Page:    in.Page,
		},
	}
}

// CommentOptions builds the request for an issue's most recent
// comments: up to MaxComments, newest first.
func CommentOptions(in DetailsInput) *github.IssueListCommentsOptions {
	return &github.IssueListCommentsOptions{
		Sort:      github.String("created"),
		Direction: github.String("desc"),
		ListOptions: github.ListOptions{
			PerPage: in.MaxComments,
		},
	}
}

// SplitLabels splits a comma-separated label filter into individual
// trimmed labels, dropping empty entries.
func SplitLabels(labels string) []string {
	if labels == "" {
		return nil
	}
	var out []string
	for _, label := range strings.Split(labels, ",") {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
