package tools

import (
	"context"

	"github.com/HendryAvila/openvino-issues-mcp/internal/githubapi"
	"github.com/HendryAvila/openvino-issues-mcp/internal/issues"
	"github.com/mark3labs/mcp-go/mcp"
)

// DetailsTool handles the get_openvino_issue_details MCP tool: a
// single-issue lookup with optional recent comments.
type DetailsTool struct {
	api githubapi.IssuesAPI
}

// NewDetailsTool creates a DetailsTool backed by the given API.
func NewDetailsTool(api githubapi.IssuesAPI) *DetailsTool {
	return &DetailsTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *DetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_openvino_issue_details",
		mcp.WithDescription(
			"Get complete details for a specific OpenVINO GitHub issue: description, "+
				"labels, assignees, milestone, timestamps, and optionally its most "+
				"recent comments. Use this to deeply understand a single issue.",
		),
		mcp.WithToolAnnotation(readOnlyAnnotation("Get OpenVINO Issue Details")),
		mcp.WithNumber("issue_number",
			mcp.Required(),
			mcp.Description("GitHub issue number (e.g., 12345)"),
		),
		mcp.WithBoolean("include_comments",
			mcp.Description("Include the issue's comments in the response (default false)"),
		),
		mcp.WithNumber("max_comments",
			mcp.Description("Maximum number of comments to include (1-20, default 5)"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' for human-readable or 'json' for structured data"),
			mcp.Enum("markdown", "json"),
			mcp.DefaultString("markdown"),
		),
	)
}

// Handle processes a get_openvino_issue_details call. The comments
// request only goes out when comments were asked for and the issue
// reports a non-zero comment count — a second round-trip is never
// wasted on an issue with nothing to fetch.
func (t *DetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := issues.ParseDetailsInput(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	upstream, err := t.api.GetIssue(ctx, in.IssueNumber)
	if err != nil {
		return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
	}

	var comments []issues.Comment
	if in.IncludeComments && upstream.GetComments() > 0 {
		upstreamComments, err := t.api.ListComments(ctx, in.IssueNumber, issues.CommentOptions(in))
		if err != nil {
			return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
		}
		comments = issues.NormalizeComments(upstreamComments)
	}

	issue := issues.NormalizeIssue(upstream)

	if in.Format == issues.FormatJSON {
		out, err := issues.RenderDetailsJSON(issue, comments, in.IncludeComments)
		if err != nil {
			return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
	return mcp.NewToolResultText(issues.RenderDetailsMarkdown(issue, comments, in.IncludeComments)), nil
}
