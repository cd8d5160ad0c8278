package tools

import (
	"context"

	"github.com/HendryAvila/openvino-issues-mcp/internal/githubapi"
	"github.com/HendryAvila/openvino-issues-mcp/internal/issues"
	"github.com/mark3labs/mcp-go/mcp"
)

// ByLabelTool handles the list_openvino_issues_by_label MCP tool:
// listing the repository's issues filtered by one or more labels.
type ByLabelTool struct {
	api githubapi.IssuesAPI
}

// NewByLabelTool creates a ByLabelTool backed by the given API.
func NewByLabelTool(api githubapi.IssuesAPI) *ByLabelTool {
	return &ByLabelTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *ByLabelTool) Definition() mcp.Tool {
	return mcp.NewTool("list_openvino_issues_by_label",
		mcp.WithDescription(
			"List OpenVINO GitHub issues filtered by specific labels like 'bug', "+
				"'enhancement', 'documentation', 'CPU', 'GPU'. Combine multiple labels "+
				"(comma-separated) to narrow down results.",
		),
		mcp.WithToolAnnotation(readOnlyAnnotation("List OpenVINO Issues by Label")),
		mcp.WithString("labels",
			mcp.Required(),
			mcp.Description("Comma-separated labels, 1-100 characters (e.g., 'bug', 'bug,CPU')"),
		),
		mcp.WithString("state",
			mcp.Description("Filter by issue state"),
			mcp.Enum("open", "closed", "all"),
			mcp.DefaultString("open"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort results by"),
			mcp.Enum("created", "updated", "comments"),
			mcp.DefaultString("created"),
		),
		mcp.WithString("order",
			mcp.Description("Sort order"),
			mcp.Enum("asc", "desc"),
			mcp.DefaultString("desc"),
		),
		mcp.WithNumber("per_page",
			mcp.Description("Number of results per page (1-30, default 10)"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (default 1)"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' for human-readable or 'json' for structured data"),
			mcp.Enum("markdown", "json"),
			mcp.DefaultString("markdown"),
		),
	)
}

// Handle processes a list_openvino_issues_by_label call. The listing
// endpoint reports no total count, so pagination is derived from
// whether the returned page was full.
func (t *ByLabelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := issues.ParseByLabelInput(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := t.api.ListByRepo(ctx, issues.ByLabelOptions(in))
	if err != nil {
		return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
	}

	normalized := issues.NormalizeIssues(result)
	labels := issues.SplitLabels(in.Labels)

	if in.Format == issues.FormatJSON {
		out, err := issues.RenderByLabelJSON(normalized, labels, in.State, in.Page, in.PerPage)
		if err != nil {
			return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
	return mcp.NewToolResultText(issues.RenderByLabelMarkdown(normalized, labels, in.State, in.Page, in.PerPage)), nil
}
