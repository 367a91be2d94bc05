// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"
)

// fixtureContent is the body written for each known ACM file.
func fixtureContent(rel string) string {
	return fmt.Sprintf("# %s\n\nFixture content for %s.\n", filepath.Base(rel), rel)
}

// newACMRoot creates a complete ACM root and returns its canonical path.
func newACMRoot(t *testing.T) string {
	t.Helper()

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	root := filepath.Join(base, "acm")

	for _, rel := range acm.KnownPaths() {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(fixtureContent(rel)), 0o644))
	}
	return root
}

func newTestLibrary(t *testing.T) (*acm.Library, string) {
	t.Helper()
	root := newACMRoot(t)
	lib, err := acm.Open(root)
	require.NoError(t, err)
	return lib, root
}

// startToolServer starts an in-memory MCP server exposing the default tools
// bound to lib.
func startToolServer(t *testing.T, lib *acm.Library) *mcptest.Server {
	t.Helper()

	srv := mcptest.NewUnstartedServer(t)
	for _, def := range createTools() {
		def := def
		srv.AddTools(server.ServerTool{
			Tool: def.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return def.Handler(ctx, request, lib)
			},
		})
	}
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Close)
	return srv
}

// callTool invokes name with args and returns the result and its first text.
func callTool(t *testing.T, srv *mcptest.Server, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()

	result, err := srv.Client().CallTool(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return result, text.Text
}

// toStrings converts a decoded JSON array into strings.
func toStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out
}
