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
	"github.com/mark3labs/mcp-go/server"
)

const promptScaffoldProject = "scaffold-project"

// createPrompts creates and returns all MCP prompt definitions with their handlers.
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt(promptScaffoldProject,
				mcp.WithPromptDescription("Walk through creating the core ACM artifacts for a new project"),
				mcp.WithArgument("project_type",
					mcp.ArgumentDescription("Project type: "+strings.Join(acm.ProjectTypeNames(), ", ")+" (default: app)"),
				),
			),
			Handler: handleScaffoldProjectPrompt,
		},
	}
}

// handleScaffoldProjectPrompt handles the scaffold-project workflow prompt.
func handleScaffoldProjectPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectType, err := acm.ParseProjectType(request.Params.Arguments["project_type"])
	if err != nil {
		return nil, fmt.Errorf("invalid project_type: expected one of %s", strings.Join(acm.ProjectTypeNames(), ", "))
	}
	pt := projectType.String()

	var steps strings.Builder
	fmt.Fprintf(&steps, "Set up the ACM artifacts for a new %s project.\n\n", pt)
	fmt.Fprintf(&steps, "1. Call `%s` with artifact `project_types` and confirm that %q fits this project.\n", toolGetSpec, pt)
	fmt.Fprintf(&steps, "2. Call `%s` with artifact `claude_md` and project_type `%s`, and write the result to CLAUDE.md.\n", toolGetStub, pt)

	n := 3
	for _, k := range acm.StubKinds() {
		if k == acm.StubClaudeMD {
			continue
		}
		fmt.Fprintf(&steps, "%d. Call `%s` with artifact `%s`, fill in the placeholders with the user, and save it.\n", n, toolGetStub, k)
		n++
	}
	fmt.Fprintf(&steps, "%d. Before finishing, call `%s` for each artifact you wrote and check it against its specification.\n", n, toolGetSpec)

	return mcp.NewGetPromptResult(
		fmt.Sprintf("Scaffold a new %s project", pt),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(steps.String())),
		},
	), nil
}
