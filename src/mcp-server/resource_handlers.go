// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleConfigResource returns an example configuration file as JSON.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exampleConfig := map[string]any{
		"root": "/path/to/acm",
		"log": map[string]any{
			"silent": false,
		},
	}

	jsonData, err := json.MarshalIndent(exampleConfig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns server metadata and capabilities as JSON.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for version information
//   - version: Server version string
//   - tools: Tool definitions to list
//
// Returns:
//   - A slice containing version and capability information as JSON content
//   - An error if JSON marshaling fails
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest, version string, tools []ToolDefinition) ([]mcp.ResourceContents, error) {
	toolNames := make([]string, 0, len(tools))
	for _, t := range tools {
		toolNames = append(toolNames, t.Tool.Name)
	}

	versionInfo := map[string]any{
		"name":    serverName,
		"version": version,
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     toolNames,
			"resources": []string{uriVersion, uriConfigTemplate, uriCatalog},
			"prompts":   []string{promptScaffoldProject},
		},
		"artifacts":    acm.ArtifactKindNames(),
		"stubs":        acm.StubKindNames(),
		"projectTypes": acm.ProjectTypeNames(),
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleCatalogResource renders the current catalog of lib as a markdown table.
// Availability is probed on every read.
func handleCatalogResource(ctx context.Context, request mcp.ReadResourceRequest, lib *acm.Library) ([]mcp.ResourceContents, error) {
	if lib == nil {
		return nil, fmt.Errorf("ACM library is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriCatalog,
			MIMEType: "text/markdown",
			Text:     "# ACM Artifact Catalog\n\n" + acm.RenderCatalog(lib.Catalog()),
		},
	}, nil
}
