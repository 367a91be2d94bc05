// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// It ships three files:
//   - ACM_instructions.md: text/template for the instructions sent to MCP clients on initialize
//   - cli_help.md: text/template for the CLI long description and examples
//   - config.schema.json: JSON Schema every configuration file is validated against
//
// All access goes through [MagicEmbed].
package templates
