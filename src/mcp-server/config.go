// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/mcp-server/templates"
	"github.com/caarlos0/env/v11"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configFileEnv names the environment variable consulted when no --config flag is given.
const configFileEnv = "MCP_ACM_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file named by the --config
// flag or the MCP_ACM_CONFIG_FILE environment variable. Environment variables
// override file values, and the --root flag overrides both.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Root: Directory holding the ACM specification and stub files
	Root string `json:"root,omitempty" yaml:"root,omitempty" env:"ACM_ROOT"`

	// Log: Settings for the JSON log stream on stderr
	Log struct {
		// Silent: Suppress all server logs
		Silent bool `json:"silent" yaml:"silent" env:"ACM_LOG_SILENT"`
	} `json:"log" yaml:"log"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything that is not .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// decodeDocument parses raw configuration data into a generic document
// suitable for schema validation.
func decodeDocument(data []byte, format configFormat) (any, error) {
	var doc any
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	if doc == nil {
		// An empty file is an empty configuration.
		doc = map[string]any{}
	}
	return doc, nil
}

// unmarshalConfig unmarshals configuration data based on the specified format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validateConfigDocument checks doc against the embedded config.schema.json.
func validateConfigDocument(doc any) error {
	schema, err := templates.MagicEmbed.ReadFile("config.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("invalid config file: %s", strings.Join(problems, "; "))
}

// loadConfig loads MCP server configuration from a JSON or YAML file and the environment.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct
//   - An error if the configuration file cannot be read, parsed, or fails schema validation
//
// Configuration Priority:
//  1. MCP_ACM_CONFIG_FILE environment variable is checked if configPath is empty
//  2. Config file values (if a file is given)
//  3. Environment variables override config file values (ACM_ROOT, ACM_LOG_SILENT)
//
// The root is not resolved here; see [resolveRoot].
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath == "" {
		configPath = os.Getenv(configFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		doc, err := decodeDocument(data, format)
		if err != nil {
			return nil, err
		}
		if err := validateConfigDocument(doc); err != nil {
			return nil, err
		}
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return config, nil
}

// resolveRoot picks the ACM root from the flag value or the config, defaulting
// to the working directory, and returns it as an absolute path to an existing
// directory.
func resolveRoot(flagRoot string, config *Config) (string, error) {
	root := flagRoot
	if root == "" && config != nil {
		root = config.Root
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid ACM root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("ACM root %q does not exist", abs)
		}
		return "", fmt.Errorf("ACM root %q is not accessible: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("ACM root %q is not a directory", abs)
	}

	return abs, nil
}
