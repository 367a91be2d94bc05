// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package acm

import "errors"

// Failure classifies why a lookup did not return content.
type Failure int

const (
	// FailurePathEscape: the resolved path left the ACM root.
	FailurePathEscape Failure = iota + 1
	// FailureNotFound: the mapped file does not exist.
	FailureNotFound
	// FailureReadFailure: the file exists but could not be read.
	FailureReadFailure
)

// Sentinels matched by [LookupError] through errors.Is.
var (
	ErrPathEscape  = errors.New("path escape")
	ErrNotFound    = errors.New("not found")
	ErrReadFailure = errors.New("read failure")
)

// String returns a short name for logs.
func (f Failure) String() string {
	switch f {
	case FailurePathEscape:
		return "path_escape"
	case FailureNotFound:
		return "not_found"
	case FailureReadFailure:
		return "read_failure"
	default:
		return "unknown"
	}
}

func (f Failure) sentinel() error {
	switch f {
	case FailurePathEscape:
		return ErrPathEscape
	case FailureNotFound:
		return ErrNotFound
	default:
		return ErrReadFailure
	}
}

// LookupError is the single error type returned by [Library] lookups.
//
// Message is meant for the calling agent: it names the logical (relative) file
// and never the absolute location under the root. Err keeps the underlying
// cause for logs.
type LookupError struct {
	Failure Failure
	// Path is the relative path the resolver produced.
	Path    string
	Message string
	Err     error
}

// Error returns the caller-facing message.
func (e *LookupError) Error() string { return e.Message }

// Unwrap exposes both the failure sentinel and the underlying cause.
func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Failure.sentinel()}
	}
	return []error{e.Failure.sentinel(), e.Err}
}
