// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// acm-artifact-resolver is a Model Context Protocol (MCP) server that hands the
// Artifact-Centered Method specifications and stub templates to AI agents over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/acm-artifact-resolver/cmd/acm-artifact-resolver@latest
//
// # Usage
//
//	acm-artifact-resolver [FLAGS]
//	acm-artifact-resolver catalog [FLAGS]
//
// # Flags
//
//	--root          ACM root directory (overrides config and ACM_ROOT)
//	--config        Path to configuration file (JSON or YAML)
//	--instructions  Print the instructions sent to MCP clients
//	--help          Show help information
//	--version       Show version information
//
// # Environment Variables
//
//	ACM_ROOT             ACM root directory
//	ACM_LOG_SILENT       Suppress the JSON log stream on stderr ("true"/"false")
//	MCP_ACM_CONFIG_FILE  Path to configuration file (alternative to --config flag)
//
// # MCP Tools
//
//	get_spec  artifact=brief|intent|status|readme|context|rules|design|backlog|
//	          folder_structure|project_types|stages|review
//	get_stub  artifact=brief|intent|status|rules_constraints|claude_md
//	          project_type=app|workflow|artifact (claude_md only, default app)
//
// # MCP Resources
//
//	info://version     server name, version and tools
//	config://template  example configuration file
//	acm://catalog      every mapping and whether its file is present
package main
