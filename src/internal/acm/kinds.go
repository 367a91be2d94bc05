// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package acm

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by the Parse functions for values outside the closed sets.
var ErrUnknownKind = errors.New("unknown value")

// ArtifactKind identifies a normative ACM specification document.
//
// The set is closed: the only values are the Artifact* variables below, and
// other packages can obtain one only through [ParseArtifactKind]. The zero
// value is not a valid kind.
type ArtifactKind struct{ name string }

// Artifact kinds served by get_spec.
var (
	ArtifactBrief           = ArtifactKind{"brief"}
	ArtifactIntent          = ArtifactKind{"intent"}
	ArtifactStatus          = ArtifactKind{"status"}
	ArtifactReadme          = ArtifactKind{"readme"}
	ArtifactContext         = ArtifactKind{"context"}
	ArtifactRules           = ArtifactKind{"rules"}
	ArtifactDesign          = ArtifactKind{"design"}
	ArtifactBacklog         = ArtifactKind{"backlog"}
	ArtifactFolderStructure = ArtifactKind{"folder_structure"}
	ArtifactProjectTypes    = ArtifactKind{"project_types"}
	ArtifactStages          = ArtifactKind{"stages"}
	ArtifactReview          = ArtifactKind{"review"}
)

var artifactKinds = [...]ArtifactKind{
	ArtifactBrief, ArtifactIntent, ArtifactStatus, ArtifactReadme,
	ArtifactContext, ArtifactRules, ArtifactDesign, ArtifactBacklog,
	ArtifactFolderStructure, ArtifactProjectTypes, ArtifactStages, ArtifactReview,
}

// String returns the wire name of the kind (e.g. "folder_structure").
func (k ArtifactKind) String() string { return k.name }

// ArtifactKinds returns every artifact kind in declaration order.
func ArtifactKinds() []ArtifactKind { return append([]ArtifactKind(nil), artifactKinds[:]...) }

// ParseArtifactKind maps a wire name to its kind.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	for _, k := range artifactKinds {
		if k.name == s {
			return k, nil
		}
	}
	return ArtifactKind{}, fmt.Errorf("artifact %q: %w", s, ErrUnknownKind)
}

// StubKind identifies a fill-in starter template.
//
// Like [ArtifactKind] the set is closed and the zero value is invalid.
type StubKind struct{ name string }

// Stub kinds served by get_stub.
var (
	StubBrief            = StubKind{"brief"}
	StubIntent           = StubKind{"intent"}
	StubStatus           = StubKind{"status"}
	StubRulesConstraints = StubKind{"rules_constraints"}
	StubClaudeMD         = StubKind{"claude_md"}
)

var stubKinds = [...]StubKind{
	StubBrief, StubIntent, StubStatus, StubRulesConstraints, StubClaudeMD,
}

// String returns the wire name of the stub kind.
func (k StubKind) String() string { return k.name }

// StubKinds returns every stub kind in declaration order.
func StubKinds() []StubKind { return append([]StubKind(nil), stubKinds[:]...) }

// ParseStubKind maps a wire name to its stub kind.
func ParseStubKind(s string) (StubKind, error) {
	for _, k := range stubKinds {
		if k.name == s {
			return k, nil
		}
	}
	return StubKind{}, fmt.Errorf("stub %q: %w", s, ErrUnknownKind)
}

// ProjectType selects among the claude_md stub variants.
//
// The zero value stands for "not given" and behaves exactly like [ProjectApp].
type ProjectType struct{ name string }

// Project types accepted for the claude_md stub.
var (
	ProjectApp      = ProjectType{"app"}
	ProjectWorkflow = ProjectType{"workflow"}
	ProjectArtifact = ProjectType{"artifact"}
)

// DefaultProjectType is used when a request omits project_type.
var DefaultProjectType = ProjectApp

var projectTypes = [...]ProjectType{ProjectApp, ProjectWorkflow, ProjectArtifact}

// String returns the wire name, resolving the zero value to the default.
func (p ProjectType) String() string { return p.orDefault().name }

func (p ProjectType) orDefault() ProjectType {
	if p == (ProjectType{}) {
		return DefaultProjectType
	}
	return p
}

// ProjectTypes returns every project type in declaration order.
func ProjectTypes() []ProjectType { return append([]ProjectType(nil), projectTypes[:]...) }

// ParseProjectType maps a wire name to its project type. An empty string is
// accepted and yields the zero value (the default).
func ParseProjectType(s string) (ProjectType, error) {
	if s == "" {
		return ProjectType{}, nil
	}
	for _, p := range projectTypes {
		if p.name == s {
			return p, nil
		}
	}
	return ProjectType{}, fmt.Errorf("project_type %q: %w", s, ErrUnknownKind)
}

// names renders the wire names of a closed set, used for tool enums.
func names[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

// ArtifactKindNames returns the wire names of every artifact kind.
func ArtifactKindNames() []string { return names(ArtifactKinds()) }

// StubKindNames returns the wire names of every stub kind.
func StubKindNames() []string { return names(StubKinds()) }

// ProjectTypeNames returns the wire names of every project type.
func ProjectTypeNames() []string { return names(ProjectTypes()) }
