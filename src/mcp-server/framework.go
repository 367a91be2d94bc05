// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/logger"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName is reported to MCP clients during initialization.
const serverName = "ACM Artifact Resolver"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithLibrary defines tool handlers that read from the ACM library.
// The builder binds the library once; handlers never see configuration.
type ToolHandlerWithLibrary func(ctx context.Context, request mcp.CallToolRequest, lib *acm.Library) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool specification with its implementation.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Short key used by the instructions template to refer to the tool
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithLibrary
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
type ServerDependencies struct {
	Config       *Config
	Embed        templates.EmbedFS
	Version      string
	Library      *acm.Library
	Logger       logger.Logger
	Tools        []ToolDefinition
	Resources    []server.ServerResource
	Prompts      []server.ServerPrompt
	Instructions string
}

// ServerBuilder helps construct the MCP server with proper dependencies.
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithVersion(version.Version).
//		WithLibrary(lib).
//		WithDefaultTools().
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration. Build falls back to it for the
// library root and log settings.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for templates.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLibrary sets the ACM library every tool and the catalog read from.
func (b *ServerBuilder) WithLibrary(lib *acm.Library) *ServerBuilder {
	b.deps.Library = lib
	return b
}

// WithLogger sets the logger used for per-call tool logs.
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithTools adds tools to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds get_spec and get_stub.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools()...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds prompts to the server.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialize.
// When unset, Build renders them from the embedded template.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the MCP server with all configured dependencies.
//
// Returns:
//   - *server.MCPServer: The configured MCP server instance
//   - error: If no library is available for the tools, or the instructions
//     template fails to render
//
// Missing dependencies are derived from the others: the library is opened at
// Config.Root, the logger writes JSON to stderr honouring Config.Log.Silent,
// and the instructions are rendered from Embed for the registered tools.
//
// Every tool handler is bound to the library and wrapped so each call is logged
// with its tool name, artifact and outcome. Panics inside handlers are turned
// into error results by the server's recovery middleware.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	config := b.deps.Config

	lib := b.deps.Library
	if lib == nil && config != nil && config.Root != "" {
		opened, err := acm.Open(config.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to open ACM root: %w", err)
		}
		lib = opened
	}
	if lib == nil && len(b.deps.Tools) > 0 {
		return nil, errors.New("ACM library is required to serve tools")
	}

	log := b.deps.Logger
	switch {
	case log != nil:
	case config != nil:
		log = logger.NewMCPLogger(os.Stderr, config.Log.Silent)
	default:
		log = logger.NewMCPLogger(nil, true)
	}

	instructions := b.deps.Instructions
	if instructions == "" && b.deps.Embed != nil {
		rendered, err := loadInstructions(b.deps.Embed, b.deps.Tools)
		if err != nil {
			return nil, fmt.Errorf("failed to load instructions: %w", err)
		}
		instructions = rendered
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if instructions != "" {
		opts = append(opts, server.WithInstructions(instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, bindTool(tool, lib, log))
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// bindTool closes over lib and logs each call of tool.
func bindTool(tool ToolDefinition, lib *acm.Library, log logger.Logger) ToolHandler {
	name := tool.Tool.Name
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Handler(ctx, request, lib)

		fields := []any{
			"tool", name,
			"artifact", request.GetString("artifact", ""),
		}
		if pt := request.GetString("project_type", ""); pt != "" {
			fields = append(fields, "project_type", pt)
		}

		switch {
		case err != nil:
			log.Log(logger.LevelError, "tool call failed", append(fields, "error", err)...)
		case result != nil && result.IsError:
			log.Log(logger.LevelError, "tool call failed", append(fields, "error", resultText(result))...)
		default:
			log.Log(logger.LevelInfo, "tool call served", fields...)
		}

		return result, err
	}
}

// resultText returns the text of the first text content in result.
func resultText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if text, ok := c.(mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
