package issues

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Renderers convert normalized records into the tool's final text
// payload. Each operation has a markdown and a JSON rendering; both
// are pure functions of the normalized data plus pagination inputs.

// issueSummary is the per-issue entry in list-shaped JSON payloads.
type issueSummary struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	URL         string   `json:"url"`
	Author      string   `json:"author"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Comments    int      `json:"comments"`
	Labels      []string `json:"labels"`
	BodyPreview string   `json:"body_preview"`
}

type searchPayload struct {
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	HasMore    bool           `json:"has_more"`
	Issues     []issueSummary `json:"issues"`
}

type byLabelPayload struct {
	LabelsFilter []string       `json:"labels_filter"`
	State        string         `json:"state"`
	Page         int            `json:"page"`
	PerPage      int            `json:"per_page"`
	ResultsCount int            `json:"results_count"`
	HasMore      bool           `json:"has_more"`
	Issues       []issueSummary `json:"issues"`
}

type commentPayload struct {
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
	Body      string `json:"body"`
}

type detailsPayload struct {
	Number        int              `json:"number"`
	Title         string           `json:"title"`
	State         string           `json:"state"`
	URL           string           `json:"url"`
	Author        string           `json:"author"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	ClosedAt      *string          `json:"closed_at"`
	CommentsCount int              `json:"comments_count"`
	Labels        []string         `json:"labels"`
	Assignees     []string         `json:"assignees"`
	Milestone     *string          `json:"milestone"`
	Body          string           `json:"body"`
	Comments      []commentPayload `json:"comments"`
}

// RenderSearchJSON renders a search result page as an indented JSON
// document with a stable key set.
func RenderSearchJSON(results []Issue, totalCount, page, perPage int) (string, error) {
	payload := searchPayload{
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		HasMore:    SearchHasMore(totalCount, page, perPage),
		Issues:     summarize(results),
	}
	return marshalIndent(payload)
}

// RenderSearchMarkdown renders a search result page as a
// human-readable document with pagination affordances.
func RenderSearchMarkdown(results []Issue, totalCount, page, perPage int) string {
	if len(results) == 0 {
		return "No issues found matching your criteria."
	}

	hasMore := SearchHasMore(totalCount, page, perPage)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# OpenVINO Issues (Page %d)\n\n", page))
	sb.WriteString(fmt.Sprintf("**Total Results:** %d  \n", totalCount))
	sb.WriteString(fmt.Sprintf("**Showing:** %d issues on page %d  \n", len(results), page))
	sb.WriteString(fmt.Sprintf("**Has More:** %s\n\n", yesNo(hasMore)))
	sb.WriteString("---\n\n")

	for _, issue := range results {
		sb.WriteString(fmt.Sprintf("### #%d: %s\n", issue.Number, issue.Title))
		sb.WriteString(fmt.Sprintf("**State:** %s | ", issue.State))
		sb.WriteString(fmt.Sprintf("**Comments:** %d | ", issue.Comments))
		sb.WriteString(fmt.Sprintf("**Updated:** %s\n", FormatTimestamp(issue.UpdatedAt)))
		if labels := backtickLabels(issue.Labels); labels != "" {
			sb.WriteString(fmt.Sprintf("**Labels:** %s\n", labels))
		}
		sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", issue.URL))
	}

	if hasMore {
		sb.WriteString(fmt.Sprintf("\n*Use `page: %d` to see more results*\n", page+1))
	}

	return sb.String()
}

// RenderDetailsJSON renders a single issue, optionally with comments,
// as an indented JSON document. Absent optional fields render as null
// or empty collections, never omitted.
func RenderDetailsJSON(issue Issue, comments []Comment, includeComments bool) (string, error) {
	payload := detailsPayload{
		Number:        issue.Number,
		Title:         issue.Title,
		State:         issue.State,
		URL:           issue.URL,
		Author:        issue.Author,
		CreatedAt:     issue.CreatedAt,
		UpdatedAt:     issue.UpdatedAt,
		ClosedAt:      optional(issue.ClosedAt),
		CommentsCount: issue.Comments,
		Labels:        nonNil(issue.Labels),
		Assignees:     nonNil(issue.Assignees),
		Milestone:     optional(issue.Milestone),
		Body:          issue.Body,
		Comments:      []commentPayload{},
	}
	if includeComments {
		for _, c := range comments {
			payload.Comments = append(payload.Comments, commentPayload(c))
		}
	}
	return marshalIndent(payload)
}

// RenderDetailsMarkdown renders a single issue's full detail view,
// followed by assignees, milestone, and recent comments when present.
func RenderDetailsMarkdown(issue Issue, comments []Comment, includeComments bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## #%d: %s\n\n", issue.Number, issue.Title))
	sb.WriteString(fmt.Sprintf("**State:** %s  \n", strings.ToUpper(issue.State)))
	sb.WriteString(fmt.Sprintf("**Author:** @%s  \n", issue.Author))
	sb.WriteString(fmt.Sprintf("**Created:** %s  \n", FormatTimestamp(issue.CreatedAt)))
	sb.WriteString(fmt.Sprintf("**Updated:** %s  \n", FormatTimestamp(issue.UpdatedAt)))
	sb.WriteString(fmt.Sprintf("**Comments:** %d  \n", issue.Comments))

	labels := backtickLabels(issue.Labels)
	if labels == "" {
		labels = "None"
	}
	sb.WriteString(fmt.Sprintf("**Labels:** %s\n\n", labels))
	sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", issue.URL))

	sb.WriteString("**Description:**\n")
	if issue.Body == "" {
		sb.WriteString("No description provided.\n")
	} else {
		sb.WriteString(Excerpt(issue.Body, IssueBodyCutoff) + "\n")
	}

	if len(issue.Assignees) > 0 {
		handles := make([]string, 0, len(issue.Assignees))
		for _, a := range issue.Assignees {
			handles = append(handles, "@"+a)
		}
		sb.WriteString(fmt.Sprintf("\n**Assignees:** %s\n", strings.Join(handles, ", ")))
	}

	if issue.Milestone != "" {
		sb.WriteString(fmt.Sprintf("**Milestone:** %s\n", issue.Milestone))
	}

	if includeComments && len(comments) > 0 {
		sb.WriteString(fmt.Sprintf("\n## Recent Comments (%d of %d)\n", len(comments), issue.Comments))
		for _, comment := range comments {
			sb.WriteString("---\n")
			sb.WriteString(fmt.Sprintf("**Author:** @%s  \n", comment.Author))
			sb.WriteString(fmt.Sprintf("**Posted:** %s\n\n", FormatTimestamp(comment.CreatedAt)))
			sb.WriteString(Excerpt(comment.Body, CommentBodyCutoff) + "\n")
		}
	}

	return sb.String()
}

// RenderByLabelJSON renders a label-filtered listing page as an
// indented JSON document. This endpoint has no authoritative total, so
// the payload carries results_count and the full-page has_more
// heuristic instead of a total_count.
func RenderByLabelJSON(results []Issue, labels []string, state IssueState, page, perPage int) (string, error) {
	payload := byLabelPayload{
		LabelsFilter: nonNil(labels),
		State:        string(state),
		Page:         page,
		PerPage:      perPage,
		ResultsCount: len(results),
		HasMore:      ListHasMore(len(results), perPage),
		Issues:       summarize(results),
	}
	return marshalIndent(payload)
}

// RenderByLabelMarkdown renders a label-filtered listing page. Zero
// results produce a single sentence naming the active state and label
// filters.
func RenderByLabelMarkdown(results []Issue, labels []string, state IssueState, page, perPage int) string {
	if len(results) == 0 {
		return fmt.Sprintf("No %s issues found with labels: %s", state, strings.Join(labels, ", "))
	}

	hasMore := ListHasMore(len(results), perPage)

	quoted := make([]string, 0, len(labels))
	for _, l := range labels {
		quoted = append(quoted, "`"+l+"`")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# OpenVINO Issues with Labels: %s\n\n", strings.Join(quoted, ", ")))
	sb.WriteString(fmt.Sprintf("**State:** %s  \n", state))
	sb.WriteString(fmt.Sprintf("**Page:** %d  \n", page))
	sb.WriteString(fmt.Sprintf("**Showing:** %d issues  \n", len(results)))
	sb.WriteString(fmt.Sprintf("**Has More:** %s\n\n", yesNo(hasMore)))
	sb.WriteString("---\n\n")

	for _, issue := range results {
		sb.WriteString(fmt.Sprintf("### #%d: %s\n", issue.Number, issue.Title))
		sb.WriteString(fmt.Sprintf("**State:** %s | ", issue.State))
		sb.WriteString(fmt.Sprintf("**Comments:** %d | ", issue.Comments))
		sb.WriteString(fmt.Sprintf("**Updated:** %s\n", FormatTimestamp(issue.UpdatedAt)))
		sb.WriteString(fmt.Sprintf("**Labels:** %s\n", backtickLabels(issue.Labels)))
		sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", issue.URL))
	}

	if hasMore {
		sb.WriteString(fmt.Sprintf("\n*Use `page: %d` to see more results*\n", page+1))
	}

	return sb.String()
}

// ─── Private Helpers ────────────────────────────────────────────────────────

func summarize(results []Issue) []issueSummary {
	out := make([]issueSummary, 0, len(results))
	for _, issue := range results {
		out = append(out, issueSummary{
			Number:      issue.Number,
			Title:       issue.Title,
			State:       issue.State,
			URL:         issue.URL,
			Author:      issue.Author,
			CreatedAt:   issue.CreatedAt,
			UpdatedAt:   issue.UpdatedAt,
			Comments:    issue.Comments,
			Labels:      nonNil(issue.Labels),
			BodyPreview: Truncate(issue.Body, PreviewCutoff),
		})
	}
	return out
}

func backtickLabels(labels []string) string {
	quoted := make([]string, 0, len(labels))
	for _, l := range labels {
		quoted = append(quoted, "`"+l+"`")
	}
	return strings.Join(quoted, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// optional maps an empty string to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil guarantees an empty JSON array instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding response payload: %w", err)
	}
	return string(data), nil
}
