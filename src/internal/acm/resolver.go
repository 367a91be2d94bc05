// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package acm

import "fmt"

// specFiles maps each artifact kind to its specification file, relative to the
// ACM root. Read-only after package initialisation.
var specFiles = map[ArtifactKind]string{
	ArtifactBrief:           "ACM-BRIEF-SPEC.md",
	ArtifactIntent:          "ACM-INTENT-SPEC.md",
	ArtifactStatus:          "ACM-STATUS-SPEC.md",
	ArtifactReadme:          "ACM-README-SPEC.md",
	ArtifactContext:         "ACM-CONTEXT-ARTIFACT-SPEC.md",
	ArtifactRules:           "ACM-RULES-SPEC.md",
	ArtifactDesign:          "ACM-DESIGN-SPEC.md",
	ArtifactBacklog:         "ACM-BACKLOG-SPEC.md",
	ArtifactFolderStructure: "ACM-FOLDER-STRUCTURE-SPEC.md",
	ArtifactProjectTypes:    "ACM-PROJECT-TYPES-SPEC.md",
	ArtifactStages:          "ACM-STAGES-SPEC.md",
	ArtifactReview:          "ACM-REVIEW-SPEC.md",
}

// stubFiles maps stub kinds to their template file. claude_md is absent on
// purpose: its path depends on the project type, see claudeMDPattern.
var stubFiles = map[StubKind]string{
	StubBrief:            "stubs/brief.md",
	StubIntent:           "stubs/intent.md",
	StubStatus:           "stubs/status.md",
	StubRulesConstraints: "stubs/rules-constraints.md",
}

const claudeMDPattern = "stubs/claude-md/%s.md"

// SpecPath returns the specification file of kind, relative to the ACM root.
//
// The result is always one of the literals in the mapping table. A kind without
// an entry can only come from the zero value or a table that fell out of sync
// with [ArtifactKinds]; both are programming errors and panic.
func SpecPath(kind ArtifactKind) string {
	p, ok := specFiles[kind]
	if !ok {
		panic(fmt.Sprintf("acm: artifact kind %q has no specification file", kind.name))
	}
	return p
}

// StubPath returns the stub template of kind, relative to the ACM root.
//
// projectType only matters for [StubClaudeMD]; it is ignored for every other
// kind. The zero ProjectType selects the "app" variant. Because ProjectType is
// closed, the substituted segment is always one of app, workflow or artifact.
func StubPath(kind StubKind, projectType ProjectType) string {
	if kind == StubClaudeMD {
		return fmt.Sprintf(claudeMDPattern, projectType.orDefault().name)
	}
	p, ok := stubFiles[kind]
	if !ok {
		panic(fmt.Sprintf("acm: stub kind %q has no template file", kind.name))
	}
	return p
}

// KnownPaths returns every relative path the resolver can produce: all
// specification files, the fixed stubs, and one claude_md variant per project
// type, in that order.
func KnownPaths() []string {
	paths := make([]string, 0, len(artifactKinds)+len(stubKinds)-1+len(projectTypes))
	for _, k := range artifactKinds {
		paths = append(paths, SpecPath(k))
	}
	for _, k := range stubKinds {
		if k == StubClaudeMD {
			continue
		}
		paths = append(paths, StubPath(k, ProjectType{}))
	}
	for _, p := range projectTypes {
		paths = append(paths, StubPath(StubClaudeMD, p))
	}
	return paths
}
