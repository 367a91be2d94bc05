// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathguard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscape is matched by every [EscapeError] through [errors.Is].
var ErrPathEscape = errors.New("path escapes base directory")

// EscapeError reports a candidate path that does not stay within the base directory.
//
// Reason is human-readable and safe to surface to a calling agent as-is: it never
// contains the absolute candidate or root path.
type EscapeError struct {
	// Candidate is the path that was checked (as given by the caller).
	Candidate string
	// Root is the base directory the candidate was checked against.
	Root string
	// Reason explains why the candidate was rejected.
	Reason string
}

// Error returns the human-readable rejection reason.
func (e *EscapeError) Error() string { return e.Reason }

// Unwrap lets errors.Is match [ErrPathEscape].
func (e *EscapeError) Unwrap() error { return ErrPathEscape }

// ResolveError reports a candidate whose symbolic links could not be
// evaluated for a reason other than the path not existing, such as a link
// loop. It says nothing about containment and never matches [ErrPathEscape].
type ResolveError struct {
	// Candidate is the path that was checked (as given by the caller).
	Candidate string
	// Err is the underlying filesystem error.
	Err error
}

// Error returns a message free of absolute paths.
func (e *ResolveError) Error() string { return "path could not be resolved within base directory" }

// Unwrap exposes the filesystem error.
func (e *ResolveError) Unwrap() error { return e.Err }

// Guard validates candidate paths against a single base directory.
//
// The base directory is made absolute and canonicalised (symlinks resolved) once
// in [New]; a Guard is immutable afterwards and safe for concurrent use.
type Guard struct {
	lexical string // absolute and clean, as configured
	root    string // lexical with symlinks resolved
}

// New creates a Guard rooted at root.
//
// Parameters:
//   - root: Base directory; relative paths are resolved against the working directory
//
// Returns:
//   - *Guard: Guard bound to the canonical form of root
//   - error: If root cannot be made absolute, does not exist, or is not a directory
func New(root string) (*Guard, error) {
	lexical, canonical, err := canonicalRoot(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return nil, fmt.Errorf("base directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %q is not a directory", root)
	}

	return &Guard{lexical: lexical, root: canonical}, nil
}

// Root returns the canonical base directory of the guard.
func (g *Guard) Root() string { return g.root }

// Resolve joins rel to the base directory and validates the result.
//
// Parameters:
//   - rel: Slash- or OS-separated path relative to the base directory
//
// Returns:
//   - string: Canonical absolute path inside the base directory
//   - error: *EscapeError if the path leaves the base directory, *ResolveError
//     if it could not be resolved
func (g *Guard) Resolve(rel string) (string, error) {
	return g.Validate(filepath.Join(g.root, filepath.FromSlash(rel)))
}

// Validate checks an already-joined candidate against the base directory.
// Relative candidates are interpreted relative to the base directory.
func (g *Guard) Validate(candidate string) (string, error) {
	return validate(g.lexical, g.root, candidate)
}

// Validate reports whether candidate lies inside root after normalisation.
//
// Both paths are cleaned and made absolute; the candidate is first checked
// lexically, then again after symbolic links in both paths have been resolved,
// so a link planted under root that points elsewhere is rejected. Containment
// is segment-wise: "/srv/acm-evil" is not inside "/srv/acm".
//
// A candidate that does not exist yet is resolved through its deepest existing
// ancestor. Existence itself is left to the caller.
//
// Parameters:
//   - root: Base directory (trusted, operator-configured)
//   - candidate: Absolute path, or path relative to root
//
// Returns:
//   - string: Canonical absolute candidate path when it is inside root
//   - error: *EscapeError when it is not, *ResolveError when links under root
//     cannot be evaluated, or a resolution error for root itself
func Validate(root, candidate string) (string, error) {
	lexical, canonical, err := canonicalRoot(root)
	if err != nil {
		return "", err
	}
	return validate(lexical, canonical, candidate)
}

// validate checks candidate lexically against either form of the root, then
// checks its symlink-resolved form against the canonical root.
func validate(lexical, root, candidate string) (string, error) {
	abs := candidate
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(lexical, abs)
	}
	abs = filepath.Clean(abs)

	// "..", "." and duplicate separators are already folded by Clean, so a
	// lexical escape is rejected without touching the filesystem.
	if !within(lexical, abs) && !within(root, abs) {
		return "", escape(candidate, root)
	}

	resolved, err := resolveExisting(abs)
	if err != nil {
		return "", &ResolveError{Candidate: candidate, Err: err}
	}

	if !within(root, resolved) {
		return "", escape(candidate, root)
	}

	return resolved, nil
}

// canonicalRoot returns root as an absolute clean path, both as given and
// with symlinks resolved.
func canonicalRoot(root string) (lexical, canonical string, err error) {
	if root == "" {
		return "", "", errors.New("base directory is not configured")
	}

	lexical, err = filepath.Abs(root)
	if err != nil {
		return "", "", fmt.Errorf("cannot make base directory absolute: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(lexical)
	if err != nil {
		return "", "", fmt.Errorf("cannot resolve base directory %q: %w", root, err)
	}

	return lexical, filepath.Clean(resolved), nil
}

// resolveExisting resolves symlinks in p. When p does not exist, the deepest
// existing ancestor is resolved and the missing tail is re-appended.
func resolveExisting(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err == nil {
		return filepath.Clean(resolved), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(p)
	if parent == p {
		return "", err
	}

	resolvedParent, err := resolveExisting(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(p)), nil
}

// within reports whether p equals root or is a descendant of it, segment-wise.
func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func escape(candidate, root string) *EscapeError {
	return &EscapeError{
		Candidate: candidate,
		Root:      root,
		Reason:    ErrPathEscape.Error(),
	}
}
