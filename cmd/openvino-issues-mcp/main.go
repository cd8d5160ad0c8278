// openvino-issues-mcp: an MCP server exposing read-only query tools
// over the OpenVINO GitHub issue tracker.
//
// It integrates with any MCP-capable AI tool (Claude Code, Cursor,
// VS Code Copilot, ...) and lets agents search issues, fetch issue
// details with comments, and browse issues by label.
//
// Usage:
//
//	openvino-issues-mcp serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"

	issueserver "github.com/HendryAvila/openvino-issues-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("openvino-issues-mcp v%s\n", issueserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s := issueserver.New()
	// stdout carries the protocol; anything human-facing goes to stderr.
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `openvino-issues-mcp v%s — OpenVINO GitHub Issues MCP Server

Usage:
  openvino-issues-mcp serve    Start the MCP server (stdio transport)

Environment:
  GITHUB_TOKEN   Optional token for authenticated API requests
                 (higher rate limits). Unauthenticated by default.
  LOG_LEVEL      debug, info (default), warn, or error. Logs go to stderr.

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "openvino-issues": {
        "command": "openvino-issues-mcp",
        "args": ["serve"]
      }
    }
  }
`, issueserver.Version)
}
