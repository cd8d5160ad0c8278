// Package tools implements the three MCP tool facades over the GitHub
// Issues API.
//
// Each tool is a struct that receives the transport capability
// (githubapi.IssuesAPI) via its constructor and exposes the mcp-go
// Definition/Handle pair. A handler sequences: parse and validate the
// arguments, build the request, call the API, then either classify the
// failure into an in-band message or normalize and render the result.
//
// Error conventions:
//   - validation failures return mcp.NewToolResultError before any
//     network call happens
//   - anything after the network call goes through
//     issues.ClassifyAPIError and comes back as plain result text, so
//     the calling agent sees the message as normal tool output
package tools

import "github.com/mark3labs/mcp-go/mcp"

// readOnlyAnnotation is shared by all three tools: read-only,
// idempotent, non-destructive queries against an open-world remote
// API. The hosting protocol surfaces these hints to callers.
func readOnlyAnnotation(title string) mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    boolPtr(true),
		DestructiveHint: boolPtr(false),
		IdempotentHint:  boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
