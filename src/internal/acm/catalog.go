// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package acm

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry describes one mapping served by the library.
type Entry struct {
	// Tool is the MCP tool that serves the entry ("get_spec" or "get_stub").
	Tool string
	// Kind is the wire name of the artifact or stub kind.
	Kind string
	// Variant is the project type for claude_md entries, empty otherwise.
	Variant string
	// Title is a human-readable label derived from Kind and Variant.
	Title string
	// Path is the file location relative to the ACM root.
	Path string
	// Available reports whether Path is currently a regular file under the root.
	Available bool
}

// title turns a wire name such as "folder_structure" into "Folder Structure".
// A Caser keeps state, so each call gets its own.
func title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// Catalog lists every mapping the library can serve, specs first, in the same
// order as [KnownPaths]. Availability is probed on each call.
func (l *Library) Catalog() []Entry {
	entries := make([]Entry, 0, len(artifactKinds)+len(stubKinds)-1+len(projectTypes))

	for _, k := range artifactKinds {
		p := SpecPath(k)
		entries = append(entries, Entry{
			Tool:      "get_spec",
			Kind:      k.name,
			Title:     title(k.name),
			Path:      p,
			Available: l.Exists(p),
		})
	}

	for _, k := range stubKinds {
		if k == StubClaudeMD {
			continue
		}
		p := StubPath(k, ProjectType{})
		entries = append(entries, Entry{
			Tool:      "get_stub",
			Kind:      k.name,
			Title:     title(k.name),
			Path:      p,
			Available: l.Exists(p),
		})
	}

	for _, pt := range projectTypes {
		p := StubPath(StubClaudeMD, pt)
		entries = append(entries, Entry{
			Tool:      "get_stub",
			Kind:      StubClaudeMD.name,
			Variant:   pt.name,
			Title:     title("claude_md " + pt.name),
			Path:      p,
			Available: l.Exists(p),
		})
	}

	return entries
}

// RenderCatalog renders entries as a markdown table.
//
// Returns:
//   - string: Markdown table with one row per entry
func RenderCatalog(entries []Entry) string {
	if len(entries) == 0 {
		return "No artifacts to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Tool", "Kind", "Project Type", "Title", "Path", "Available"})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "missing"
		if e.Available {
			status = "yes"
		}
		variant := e.Variant
		if variant == "" {
			variant = "-"
		}
		rows = append(rows, []string{e.Tool, e.Kind, variant, e.Title, e.Path, status})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
