// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for the Artifact-Centered Method (ACM).
//
// It exposes two read-only tools, get_spec and get_stub, that return the
// normative specification or the starter template of an ACM artifact from a
// configured root directory, plus informational resources and a scaffolding
// prompt. The server is assembled with [ServerBuilder] and started from the
// cobra command built by [CLIFramework]; it speaks MCP over stdio and logs JSON
// lines to stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
