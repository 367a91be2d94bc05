// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/mcp-server/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCLI returns a framework wired to in-memory streams.
func newTestCLI(stdin string) (*CLIFramework, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cf := NewCLIFramework("", templates.MagicEmbed, "9.9.9")
	cf.stdin = strings.NewReader(stdin)
	cf.stdout = &stdout
	cf.stderr = &stderr
	return cf, &stdout, &stderr
}

// fakeEmbed serves a single cli_help.md.
type fakeEmbed struct{ help string }

func (f fakeEmbed) ReadFile(name string) ([]byte, error) {
	if name == "cli_help.md" {
		return []byte(f.help), nil
	}
	return nil, fs.ErrNotExist
}
func (f fakeEmbed) ReadDir(string) ([]fs.DirEntry, error) { return nil, fs.ErrNotExist }
func (f fakeEmbed) Open(string) (fs.File, error)          { return nil, fs.ErrNotExist }

func TestParseTemplateResult(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLong     string
		wantExamples string
		wantErr      bool
	}{
		{
			name:         "standard",
			input:        "Long text.\n\n## Examples\n\n  acm --root /srv\n",
			wantLong:     "Long text.",
			wantExamples: "  acm --root /srv",
		},
		{
			name:         "marker at start",
			input:        "## Examples\n  acm\n",
			wantLong:     "",
			wantExamples: "  acm",
		},
		{
			name:     "marker at end without newline",
			input:    "Only long.\n## Examples",
			wantLong: "Only long.",
		},
		{
			name:    "missing marker",
			input:   "No examples here.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long, examples, err := parseTemplateResult(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLong, long)
			assert.Equal(t, tt.wantExamples, examples)
		})
	}
}

func TestBuildRootCommand(t *testing.T) {
	cf, _, _ := newTestCLI("")
	cmd := cf.BuildRootCommand()

	assert.Equal(t, "9.9.9", cmd.Version)
	assert.NotNil(t, cmd.Flags().Lookup("instructions"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("root"))

	assert.Contains(t, cmd.Long, "Model Context Protocol")
	assert.NotContains(t, cmd.Long, "## Examples")
	assert.Contains(t, cmd.Example, "--root /srv/acm")
	assert.Contains(t, cmd.Example, "--instructions")
	assert.Contains(t, cmd.Example, " catalog ")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "catalog")
}

func TestBuildRootCommand_BadTemplatePanics(t *testing.T) {
	cf := NewCLIFramework("", fakeEmbed{help: "no marker"}, "1")
	assert.Panics(t, func() { cf.BuildRootCommand() })

	cf = NewCLIFramework("", nil, "1")
	assert.Panics(t, func() { cf.BuildRootCommand() })
}

func TestRootCommand_Instructions(t *testing.T) {
	cf, stdout, _ := newTestCLI("")
	cmd := cf.BuildRootCommand()
	cmd.SetArgs([]string{"--instructions"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "# ACM Artifact Resolver")
	assert.Contains(t, stdout.String(), "get_spec")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	cf, _, _ := newTestCLI("")
	cmd := cf.BuildRootCommand()
	cmd.SetArgs([]string{"serve-everything"})

	assert.Error(t, cmd.Execute())
}

func TestCatalogCommand(t *testing.T) {
	clearConfigEnv(t)
	root := newACMRoot(t)
	require.NoError(t, os.Remove(filepath.Join(root, "ACM-STAGES-SPEC.md")))

	cf, stdout, stderr := newTestCLI("")
	cmd := cf.BuildRootCommand()
	cmd.SetArgs([]string{"catalog", "--root", root})

	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.Contains(t, out, "ACM root: "+root)
	assert.Contains(t, out, "ACM-STAGES-SPEC.md")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "stubs/claude-md/workflow.md")
	assert.NotContains(t, out, "error:")

	assert.Equal(t, "error: 1 of 19 files missing under "+root+"\n", stderr.String())
}

func TestCatalogCommand_RootFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	root := newACMRoot(t)
	t.Setenv("ACM_ROOT", root)

	cf, stdout, stderr := newTestCLI("")
	cmd := cf.BuildRootCommand()
	cmd.SetArgs([]string{"catalog"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "ACM root: "+root)
	assert.Empty(t, stderr.String(), "a complete root reports nothing on stderr")
}

func TestCatalogCommand_InvalidRoot(t *testing.T) {
	clearConfigEnv(t)

	cf, _, _ := newTestCLI("")
	cmd := cf.BuildRootCommand()
	cmd.SetArgs([]string{"catalog", "--root", filepath.Join(t.TempDir(), "missing")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestStartMCPServer_EndOfInput(t *testing.T) {
	clearConfigEnv(t)
	root := newACMRoot(t)

	cf, stdout, stderr := newTestCLI("")
	cf.root = root

	require.NoError(t, cf.startMCPServer(context.Background()))
	assert.Empty(t, stdout.String(), "nothing but protocol messages may reach stdout")
	assert.Contains(t, stderr.String(), `"message":"ACM artifact resolver MCP server started"`)
	assert.Contains(t, stderr.String(), root)
}

func TestStartMCPServer_SilentLogs(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ACM_LOG_SILENT", "true")
	root := newACMRoot(t)

	cf, _, stderr := newTestCLI("")
	cf.root = root

	require.NoError(t, cf.startMCPServer(context.Background()))
	assert.Empty(t, stderr.String())
}

func TestStartMCPServer_CancelledContext(t *testing.T) {
	clearConfigEnv(t)
	root := newACMRoot(t)

	cf, _, _ := newTestCLI("")
	cf.root = root

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, cf.startMCPServer(ctx))
}

func TestStartMCPServer_BadConfig(t *testing.T) {
	clearConfigEnv(t)

	cf, _, _ := newTestCLI("")
	cf.configFile = writeConfig(t, "acm.json", `{"unknown": 1}`)

	err := cf.startMCPServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")

	cf.configFile = ""
	cf.root = filepath.Join(t.TempDir(), "missing")
	err = cf.startMCPServer(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
