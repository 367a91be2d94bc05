// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/acm"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/logger"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// cliHelpData holds the values substituted into cli_help.md.
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	RootFlagName         string
	HelpFlagName         string
}

// CLIFramework wires the cobra command tree to the MCP server.
//
// It owns the values of the persistent flags; the ACM root is resolved from
// them exactly once per command invocation.
type CLIFramework struct {
	configFile string
	root       string
	embed      templates.EmbedFS
	version    string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewCLIFramework creates a CLI framework.
//
// Parameters:
//   - configFile: Initial value of the --config flag
//   - embed: Filesystem holding cli_help.md and the instructions template
//   - version: Version reported by --version and the server
//
// Returns:
//   - *CLIFramework: Framework reading stdio from the process streams
func NewCLIFramework(configFile string, embed templates.EmbedFS, version string) *CLIFramework {
	return &CLIFramework{
		configFile: configFile,
		embed:      embed,
		version:    version,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// BuildRootCommand creates the root command and its subcommands.
//
// Running the root command without arguments starts the stdio MCP server.
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "ACM specification and stub server for AI agents (MCP over stdio)",
		Version:       cf.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	rootCmd.SetIn(cf.stdin)
	rootCmd.SetOut(cf.stdout)
	rootCmd.SetErr(cf.stderr)

	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)
	rootCmd.Flags().Bool("instructions", false, "print the instructions sent to MCP clients and exit")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to configuration file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVar(&cf.root, "root", "", "ACM root directory (overrides config and ACM_ROOT)")

	if cf.embed == nil {
		panic("CLIFramework embed filesystem not initialized")
	}

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, extractFlagNames(rootCmd))
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		show, err := cmd.Flags().GetBool("instructions")
		if err != nil {
			return err
		}
		if show {
			return cf.printInstructions(cmd.OutOrStdout())
		}
		return cf.startMCPServer(cmd.Context())
	}

	rootCmd.AddCommand(cf.buildCatalogCommand())

	return rootCmd
}

// buildCatalogCommand creates the "catalog" subcommand.
func (cf *CLIFramework) buildCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print every specification and stub with its file and availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lib, err := cf.openLibrary()
			if err != nil {
				return err
			}

			out := logger.NewCLILogger()
			out.SetOutput(cmd.OutOrStdout())

			entries := lib.Catalog()
			out.Printf("ACM root: %s\n\n%s", lib.Root(), acm.RenderCatalog(entries))

			missing := 0
			for _, e := range entries {
				if !e.Available {
					missing++
				}
			}
			if missing > 0 {
				out.SetOutput(cmd.ErrOrStderr())
				out.Errorf("%d of %d files missing under %s", missing, len(entries), lib.Root())
			}
			return nil
		},
	}
}

// loadAndExecuteCLIHelpTemplate renders cli_help.md and splits it into the long
// description and the examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName string, flags cliHelpData) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile("cli_help.md")
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	flags.ExeName = exeName

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, flags); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help at the "## Examples" heading line.
// The heading itself is dropped; both halves are trimmed.
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"
	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", errors.New("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(templateResult[:lineStart])
	examples = strings.TrimRight(strings.TrimLeft(templateResult[lineEnd:], "\n"), " \n")

	return longDesc, examples, nil
}

// extractFlagNames returns the long names of the flags referenced by cli_help.md.
func extractFlagNames(rootCmd *cobra.Command) cliHelpData {
	name := func(lookup func(string) bool, flag string) string {
		if lookup(flag) {
			return "--" + flag
		}
		return ""
	}
	local := func(n string) bool { return rootCmd.Flags().Lookup(n) != nil }
	persistent := func(n string) bool { return rootCmd.PersistentFlags().Lookup(n) != nil }

	return cliHelpData{
		InstructionsFlagName: name(local, "instructions"),
		ConfigFlagName:       name(persistent, "config"),
		RootFlagName:         name(persistent, "root"),
		HelpFlagName:         name(local, "help"),
	}
}

// openLibrary loads the configuration and opens the ACM root it names.
func (cf *CLIFramework) openLibrary() (*Config, *acm.Library, error) {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	root, err := resolveRoot(cf.root, config)
	if err != nil {
		return nil, nil, err
	}

	lib, err := acm.Open(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ACM root: %w", err)
	}
	return config, lib, nil
}

// buildServer assembles the MCP server for lib. Instructions are rendered by
// the builder from the framework's embedded templates.
func (cf *CLIFramework) buildServer(config *Config, lib *acm.Library, log logger.Logger) (*server.MCPServer, error) {
	tools := createTools()

	return NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithLibrary(lib).
		WithLogger(log).
		WithTools(tools...).
		WithResources(createResources(lib, cf.version, tools)...).
		WithPrompts(createPrompts()...).
		Build()
}

// startMCPServer serves MCP over the framework's stdin/stdout until ctx is
// cancelled or the input stream ends.
func (cf *CLIFramework) startMCPServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	config, lib, err := cf.openLibrary()
	if err != nil {
		return err
	}

	log := logger.NewMCPLogger(cf.stderr, config.Log.Silent)

	mcpServer, err := cf.buildServer(config, lib, log)
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	log.Log(logger.LevelInfo, "ACM artifact resolver MCP server started", "root", lib.Root(), "version", cf.version)

	err = server.NewStdioServer(mcpServer).Listen(ctx, cf.stdin, cf.stdout)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		log.Println("ACM artifact resolver MCP server stopped")
		return nil
	}
	log.Errorf("ACM artifact resolver MCP server failed: %v", err)
	return err
}

// printInstructions writes the rendered server instructions to w.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	instructions, err := loadInstructions(cf.embed, createTools())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, instructions)
	return err
}
