package ifttt

import (
	"sort"
	"strings"

	"msgraphifttt/internal/graph"
)

// Option is one entry in a dropdown-population response. IFTTT accepts one
// level of nesting via Values.
type Option struct {
	Label  string        `json:"label"`
	Value  string        `json:"value,omitempty"`
	Values []OptionValue `json:"values,omitempty"`
}

// OptionValue is a leaf option inside a nested Option.
type OptionValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionsResponse is the envelope for field-option endpoints.
type OptionsResponse struct {
	Data []Option `json:"data"`
}

// Options maps directory entries to dropdown options sorted
// case-insensitively by label.
func Options(entries []graph.DirectoryEntry) OptionsResponse {
	opts := make([]Option, 0, len(entries))
	for _, entry := range entries {
		opts = append(opts, Option{
			Label: entry.DisplayName,
			Value: entry.ID,
		})
	}

	sort.SliceStable(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Label) < strings.ToLower(opts[j].Label)
	})

	return OptionsResponse{Data: opts}
}

// SectionOptions maps OneNote sections to options labelled
// "Notebook:Section" so the notebook is visible in the dropdown.
func SectionOptions(sections []graph.Section) OptionsResponse {
	entries := make([]graph.DirectoryEntry, 0, len(sections))
	for _, section := range sections {
		entries = append(entries, graph.DirectoryEntry{
			ID:          section.ID,
			DisplayName: section.NotebookName + ":" + section.Name,
		})
	}
	return Options(entries)
}
