// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names exposed to MCP clients.
const (
	toolGetSpec = "get_spec"
	toolGetStub = "get_stub"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - get_spec: Returns the normative specification of an artifact kind
//   - get_stub: Returns the fill-in starter template of a stub kind
//
// The enum lists come from the acm package, so the advertised schema and the
// values the handlers accept cannot drift apart.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(toolGetSpec,
				mcp.WithDescription("Get the ACM specification for an artifact type. Use when you need to understand what a valid artifact looks like: required sections, frontmatter, formatting rules."),
				mcp.WithString("artifact",
					mcp.Required(),
					mcp.Description("Artifact type"),
					mcp.Enum(acm.ArtifactKindNames()...),
				),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: handleGetSpec,
			Role:    "spec",
		},
		{
			Tool: mcp.NewTool(toolGetStub,
				mcp.WithDescription("Get a starter template for an ACM artifact. Use when initializing a new project or creating a new artifact. Returns the template with placeholder values ready to fill in."),
				mcp.WithString("artifact",
					mcp.Required(),
					mcp.Description("Artifact to get stub for"),
					mcp.Enum(acm.StubKindNames()...),
				),
				mcp.WithString("project_type",
					mcp.Description("Project type, used to select the correct claude_md stub. Defaults to 'app'. Ignored for non-claude_md artifacts."),
					mcp.Enum(acm.ProjectTypeNames()...),
				),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: handleGetStub,
			Role:    "stub",
		},
	}
}
