// Package server wires the MCP server instance: it creates the GitHub
// transport, injects it into the tool facades, and registers them.
// No query or rendering logic lives here — only wiring.
package server

import (
	"os"

	"github.com/HendryAvila/openvino-issues-mcp/internal/githubapi"
	"github.com/HendryAvila/openvino-issues-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with the three issue
// tools registered. A GITHUB_TOKEN environment variable, when set, is
// passed through to the transport; the server works unauthenticated
// against GitHub's public rate limits otherwise.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		"openvino-issues",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	api := githubapi.NewClient(os.Getenv("GITHUB_TOKEN"))

	search := tools.NewSearchTool(api)
	s.AddTool(search.Definition(), search.Handle)

	details := tools.NewDetailsTool(api)
	s.AddTool(details.Definition(), details.Handle)

	byLabel := tools.NewByLabelTool(api)
	s.AddTool(byLabel.Definition(), byLabel.Handle)

	return s
}

func serverInstructions() string {
	return `This server provides read-only access to the OpenVINO GitHub issue tracker
(openvinotoolkit/openvino).

Available tools:
- search_openvino_issues: full-text search with state/label filters and
  sorted, paginated results. Start here when looking for issues about a
  topic or error message.
- get_openvino_issue_details: full details for one issue by number,
  optionally including its most recent comments.
- list_openvino_issues_by_label: browse issues carrying specific labels
  such as 'bug', 'enhancement', 'CPU', or 'GPU'.

All tools accept response_format: 'markdown' (default, human-readable)
or 'json' (structured data with pagination metadata). Results are
paginated; list outputs say whether more pages exist and which page to
request next. No tool modifies anything on GitHub.`
}
