// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultExecutableName is returned when the program name cannot be determined.
const DefaultExecutableName = "acm-artifact-resolver"

// GetExecutableName returns the name of the running binary without directory
// or ".exe" suffix, falling back to [DefaultExecutableName].
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}
	return ExecutableName(os.Args[0])
}

// ExecutableName strips any directory (with either separator style) and a
// trailing ".exe" from argv0.
//
// Parameters:
//   - argv0: Program path as passed to the process
//
// Returns:
//   - string: Bare program name, or [DefaultExecutableName] when nothing is left
func ExecutableName(argv0 string) string {
	// Split on both separators so a Windows path is handled on Unix too.
	parts := strings.FieldsFunc(argv0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return DefaultExecutableName
	}

	name := parts[len(parts)-1]
	if ext := len(name) - len(".exe"); ext > 0 && strings.EqualFold(name[ext:], ".exe") {
		name = name[:ext]
	}
	if name == "" || name == "." || name == ".." {
		return DefaultExecutableName
	}
	return name
}
