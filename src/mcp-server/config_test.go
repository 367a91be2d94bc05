// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv unsets every variable loadConfig reads for the duration of t.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{configFileEnv, "ACM_ROOT", "ACM_LOG_SILENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectConfigFormat(t *testing.T) {
	tests := map[string]configFormat{
		"config.json": configFormatJSON,
		"config.yaml": configFormatYAML,
		"config.yml":  configFormatYAML,
		"CONFIG.YML":  configFormatYAML,
		"config":      configFormatJSON,
		"config.toml": configFormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, detectConfigFormat(path), path)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantRoot   string
		wantSilent bool
		wantErr    string
	}{
		{
			name:       "json",
			file:       "acm.json",
			content:    `{"root": "/srv/acm", "log": {"silent": true}}`,
			wantRoot:   "/srv/acm",
			wantSilent: true,
		},
		{
			name:     "yaml",
			file:     "acm.yaml",
			content:  "root: /srv/acm\nlog:\n  silent: false\n",
			wantRoot: "/srv/acm",
		},
		{
			name:    "empty yaml",
			file:    "acm.yml",
			content: "",
		},
		{
			name:    "empty json object",
			file:    "acm.json",
			content: "{}",
		},
		{
			name:    "unknown key rejected by schema",
			file:    "acm.json",
			content: `{"rooot": "/srv/acm"}`,
			wantErr: "invalid config file",
		},
		{
			name:    "wrong type rejected by schema",
			file:    "acm.yaml",
			content: "log:\n  silent: \"maybe\"\n",
			wantErr: "invalid config file",
		},
		{
			name:    "malformed json",
			file:    "acm.json",
			content: `{"root": `,
			wantErr: "failed to parse JSON config file",
		},
		{
			name:    "malformed yaml",
			file:    "acm.yaml",
			content: "root: [unterminated\n",
			wantErr: "failed to parse YAML config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			path := writeConfig(t, tt.file, tt.content)

			config, err := loadConfig(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, config.Root)
			assert.Equal(t, tt.wantSilent, config.Log.Silent)
		})
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	clearConfigEnv(t)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, config.Root)
	assert.False(t, config.Log.Silent)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_PathFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, "acm.yaml", "root: /from/env/file\n")
	t.Setenv(configFileEnv, path)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env/file", config.Root)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, "acm.json", `{"root": "/from/file", "log": {"silent": false}}`)
	t.Setenv("ACM_ROOT", "/from/env")
	t.Setenv("ACM_LOG_SILENT", "true")

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", config.Root)
	assert.True(t, config.Log.Silent)
}

func TestLoadConfig_InvalidEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ACM_LOG_SILENT", "not-a-bool")

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestResolveRoot(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	file := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	t.Run("flag wins over config", func(t *testing.T) {
		got, err := resolveRoot(dir, &Config{Root: "/does/not/matter"})
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("config used without flag", func(t *testing.T) {
		got, err := resolveRoot("", &Config{Root: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("working directory by default", func(t *testing.T) {
		t.Chdir(dir)
		got, err := resolveRoot("", &Config{})
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("relative path made absolute", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "acm"), 0o755))
		t.Chdir(dir)
		got, err := resolveRoot("acm", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "acm"), got)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := resolveRoot(filepath.Join(dir, "missing"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("file instead of directory", func(t *testing.T) {
		_, err := resolveRoot(file, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}
