// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package acm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/pathguard"
)

// Library serves specification and stub files from a single ACM root.
//
// A Library holds no mutable state after [NewLibrary] and is safe for
// concurrent use. Every lookup re-reads the file, so edits under the root are
// visible to the next call without a restart.
type Library struct {
	guard *pathguard.Guard
	pool  gc.Pool
}

// NewLibrary creates a Library reading below the guard's base directory.
//
// Parameters:
//   - guard: Path guard bound to the ACM root
//
// Returns:
//   - *Library: Library ready to serve lookups
func NewLibrary(guard *pathguard.Guard) *Library {
	return &Library{guard: guard, pool: gc.Default}
}

// Open is a convenience wrapper that builds the guard for root and returns a Library.
func Open(root string) (*Library, error) {
	guard, err := pathguard.New(root)
	if err != nil {
		return nil, err
	}
	return NewLibrary(guard), nil
}

// Root returns the canonical ACM root.
func (l *Library) Root() string { return l.guard.Root() }

// Spec returns the full text of the specification document for kind.
//
// Parameters:
//   - ctx: Context for cancellation; checked before the file is opened
//   - kind: Artifact kind to look up
//
// Returns:
//   - string: File content, unmodified
//   - error: *LookupError describing why no content was returned
func (l *Library) Spec(ctx context.Context, kind ArtifactKind) (string, error) {
	return l.load(ctx, "Spec", SpecPath(kind))
}

// Stub returns the full text of the stub template for kind.
// projectType is only consulted for [StubClaudeMD].
func (l *Library) Stub(ctx context.Context, kind StubKind, projectType ProjectType) (string, error) {
	return l.load(ctx, "Stub", StubPath(kind, projectType))
}

// Exists reports whether rel resolves inside the root to a regular file.
func (l *Library) Exists(rel string) bool {
	abs, err := l.guard.Resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

// load resolves rel, checks containment, and reads the file whole.
// label is "Spec" or "Stub" and only shapes the not-found message.
func (l *Library) load(ctx context.Context, label, rel string) (string, error) {
	abs, err := l.guard.Resolve(rel)
	if err != nil {
		if errors.Is(err, pathguard.ErrPathEscape) {
			return "", &LookupError{
				Failure: FailurePathEscape,
				Path:    rel,
				Message: err.Error(),
				Err:     err,
			}
		}
		if missing(err) {
			return "", notFound(label, rel, err)
		}
		return "", readFailure(label, rel, err)
	}

	info, err := os.Stat(abs)
	switch {
	case missing(err):
		return "", notFound(label, rel, err)
	case err != nil:
		return "", readFailure(label, rel, err)
	case info.IsDir():
		return "", readFailure(label, rel, fmt.Errorf("%s is a directory", rel))
	}

	if err := ctx.Err(); err != nil {
		return "", readFailure(label, rel, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		if missing(err) {
			// Removed between Stat and Open.
			return "", notFound(label, rel, err)
		}
		return "", readFailure(label, rel, err)
	}
	defer f.Close()

	content, err := gc.ReadString(l.pool, f)
	if err != nil {
		return "", readFailure(label, rel, err)
	}
	return content, nil
}

// missing reports errors meaning the file is not there, including a regular
// file standing where a parent directory is expected.
func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func notFound(label, rel string, err error) *LookupError {
	return &LookupError{
		Failure: FailureNotFound,
		Path:    rel,
		Message: fmt.Sprintf("%s file not found: %s", label, rel),
		Err:     err,
	}
}

func readFailure(label, rel string, err error) *LookupError {
	return &LookupError{
		Failure: FailureReadFailure,
		Path:    rel,
		Message: fmt.Sprintf("failed to read %s file: %s", strings.ToLower(label), rel),
		Err:     err,
	}
}
