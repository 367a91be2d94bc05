// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version the server reports.
func GetVersion() string { return appVersion }

// Run executes the command line with the process arguments.
//
// Parameters:
//   - version: Version string to report (e.g. set via ldflags)
//
// Returns:
//   - error: Configuration, root, or transport errors; nil on clean shutdown
//
// SIGINT and SIGTERM cancel the server context, which ends the stdio loop.
func Run(version string) error {
	appVersion = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewCLIFramework("", templates.MagicEmbed, version).BuildRootCommand()
	return cmd.ExecuteContext(ctx)
}
