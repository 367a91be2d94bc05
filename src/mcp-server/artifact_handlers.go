// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleGetSpec handles the get_spec tool.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: Tool call carrying the required "artifact" argument
//   - lib: ACM library bound by the server builder
//
// Returns:
//   - *mcp.CallToolResult: The specification text, or an error result
//   - error: Always nil; every failure is reported as an error result
func handleGetSpec(ctx context.Context, request mcp.CallToolRequest, lib *acm.Library) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("artifact")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kind, err := acm.ParseArtifactKind(name)
	if err != nil {
		return mcp.NewToolResultError(invalidChoice("artifact", name, acm.ArtifactKindNames())), nil
	}

	content, err := lib.Spec(ctx, kind)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

// handleGetStub handles the get_stub tool.
//
// project_type is validated even when the artifact ignores it, so a typo is
// reported instead of silently accepted.
func handleGetStub(ctx context.Context, request mcp.CallToolRequest, lib *acm.Library) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("artifact")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kind, err := acm.ParseStubKind(name)
	if err != nil {
		return mcp.NewToolResultError(invalidChoice("artifact", name, acm.StubKindNames())), nil
	}

	ptName, ok := optionalString(request, "project_type")
	if !ok {
		return mcp.NewToolResultError(invalidChoice("project_type", ptName, acm.ProjectTypeNames())), nil
	}
	projectType, err := acm.ParseProjectType(ptName)
	if err != nil {
		return mcp.NewToolResultError(invalidChoice("project_type", ptName, acm.ProjectTypeNames())), nil
	}

	content, err := lib.Stub(ctx, kind, projectType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

// optionalString returns the string argument key, or "" when it is absent or
// null. A value of any other type yields its printed form and false.
func optionalString(request mcp.CallToolRequest, key string) (string, bool) {
	raw, present := request.GetArguments()[key]
	if !present || raw == nil {
		return "", true
	}
	s, ok := raw.(string)
	if !ok {
		return fmt.Sprint(raw), false
	}
	return s, true
}

// invalidChoice formats the error text for an argument outside its enum.
func invalidChoice(arg, got string, allowed []string) string {
	return fmt.Sprintf("invalid %s %q: expected one of %s", arg, got, strings.Join(allowed, ", "))
}
