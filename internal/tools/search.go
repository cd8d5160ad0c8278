package tools

import (
	"context"

	"github.com/HendryAvila/openvino-issues-mcp/internal/githubapi"
	"github.com/HendryAvila/openvino-issues-mcp/internal/issues"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTool handles the search_openvino_issues MCP tool: full-text
// search over the repository's issues with state/label filters and
// sorted, paginated results.
type SearchTool struct {
	api githubapi.IssuesAPI
}

// NewSearchTool creates a SearchTool backed by the given API.
func NewSearchTool(api githubapi.IssuesAPI) *SearchTool {
	return &SearchTool{api: api}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_openvino_issues",
		mcp.WithDescription(
			"Search OpenVINO GitHub issues by keyword, labels, and filters. "+
				"Searches the openvinotoolkit/openvino repository for issues matching "+
				"your query, with filtering by state and labels and sortable, paginated "+
				"results. Useful for finding relevant bugs, feature requests, or discussions.",
		),
		mcp.WithToolAnnotation(readOnlyAnnotation("Search OpenVINO GitHub Issues")),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query, 1-200 characters (e.g., 'segmentation fault', 'python API', 'performance')"),
		),
		mcp.WithString("state",
			mcp.Description("Filter by issue state"),
			mcp.Enum("open", "closed", "all"),
			mcp.DefaultString("open"),
		),
		mcp.WithString("labels",
			mcp.Description("Comma-separated labels to filter by (e.g., 'bug,CPU'), up to 100 characters"),
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

// Handle processes a search_openvino_issues call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := issues.ParseSearchInput(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := issues.BuildSearchQuery(in, githubapi.Slug())
	result, err := t.api.SearchIssues(ctx, query, issues.SearchOptions(in))
	if err != nil {
		return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
	}

	normalized := issues.NormalizeIssues(result.Issues)
	total := result.GetTotal()

	if in.Format == issues.FormatJSON {
		out, err := issues.RenderSearchJSON(normalized, total, in.Page, in.PerPage)
		if err != nil {
			return mcp.NewToolResultText(issues.ClassifyAPIError(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
	return mcp.NewToolResultText(issues.RenderSearchMarkdown(normalized, total, in.Page, in.PerPage)), nil
}
