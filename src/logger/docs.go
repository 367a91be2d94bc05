// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and MCPLogger for JSON lines written next to
// the MCP stdio stream (normally stderr). MCPLogger encodes each line into a pooled
// buffer and writes it with a single call, so lines from concurrent tool calls
// never interleave.
package logger
