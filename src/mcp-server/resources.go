// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs served by the server.
const (
	uriVersion        = "info://version"
	uriConfigTemplate = "config://template"
	uriCatalog        = "acm://catalog"
)

// createResources returns the static and library-derived resources.
//
// Parameters:
//   - lib: ACM library the catalog is computed from
//   - version: Version reported by info://version
//   - tools: Tools listed by info://version
func createResources(lib *acm.Library, version string, tools []ToolDefinition) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriVersion, "Server Version",
				mcp.WithResourceDescription("Server name, version and the tools it exposes"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleVersionResource(ctx, request, version, tools)
			},
		},
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example configuration file for this server"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriCatalog, "ACM Artifact Catalog",
				mcp.WithResourceDescription("Every specification and stub the server can serve, with the file each maps to and whether it is present"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleCatalogResource(ctx, request, lib)
			},
		},
	}
}
