// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package acm maps ACM artifact kinds to files under an ACM root and serves
// their contents.
//
// The ACM root holds one normative specification document per artifact kind
// (ACM-BRIEF-SPEC.md, ACM-STATUS-SPEC.md, ...) and a stubs/ directory with
// fill-in templates. Kinds are closed sets: a request can only name a value
// from [ArtifactKinds], [StubKinds] or [ProjectTypes], so every path the
// package reads comes from a fixed table and never from caller text.
//
// Example usage:
//
//	lib, err := acm.Open("/srv/acm")
//	if err != nil {
//		log.Fatal(err)
//	}
//	kind, err := acm.ParseArtifactKind("status")
//	if err != nil {
//		return err
//	}
//	text, err := lib.Spec(ctx, kind)
//	var lookupErr *acm.LookupError
//	if errors.As(err, &lookupErr) {
//		fmt.Println(lookupErr.Failure, lookupErr.Message)
//	}
//
// Each lookup is additionally checked with [pathguard] before any read, so a
// symlink planted under the root cannot redirect it elsewhere.
//
// [pathguard]: github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/pathguard
package acm
