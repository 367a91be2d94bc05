// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pathguard confines file access to a single base directory.
//
// Every path the server is about to read goes through [Guard.Resolve] or
// [Validate]. A candidate is accepted only if, after cleaning and after
// resolving symbolic links, it is the base directory itself or lies beneath
// it segment by segment. Rejections are reported as [*EscapeError], which
// matches [ErrPathEscape] and carries a reason that is safe to show to the
// caller.
//
// Example usage:
//
//	guard, err := pathguard.New("/srv/acm")
//	if err != nil {
//		return err
//	}
//	abs, err := guard.Resolve("stubs/claude-md/app.md")
//	if errors.Is(err, pathguard.ErrPathEscape) {
//		return err
//	}
package pathguard
