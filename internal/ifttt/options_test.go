package ifttt

import (
	"testing"

	"msgraphifttt/internal/graph"
)

func TestOptionsSortCaseInsensitive(t *testing.T) {
	entries := []graph.DirectoryEntry{
		{ID: "1", DisplayName: "Zeta"},
		{ID: "2", DisplayName: "alpha"},
		{ID: "3", DisplayName: "Beta"},
	}

	resp := Options(entries)

	got := make([]string, len(resp.Data))
	for i, opt := range resp.Data {
		got[i] = opt.Label
	}
	want := []string{"alpha", "Beta", "Zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}

func TestOptionsPreservesValues(t *testing.T) {
	resp := Options([]graph.DirectoryEntry{{ID: "team-1", DisplayName: "Ops"}})
	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	if resp.Data[0].Value != "team-1" || resp.Data[0].Label != "Ops" {
		t.Errorf("option = %+v", resp.Data[0])
	}
}

func TestOptionsEmptyInput(t *testing.T) {
	resp := Options(nil)
	if resp.Data == nil {
		t.Fatal("Data must be non-nil so it marshals as []")
	}
	if len(resp.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(resp.Data))
	}
}

func TestSectionOptionsLabelIncludesNotebook(t *testing.T) {
	sections := []graph.Section{
		{ID: "s1", Name: "Ideas", NotebookName: "Work"},
		{ID: "s2", Name: "Archive", NotebookName: "Home"},
	}

	resp := SectionOptions(sections)

	if len(resp.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(resp.Data))
	}
	// Sorted case-insensitively: Home:Archive before Work:Ideas
	if resp.Data[0].Label != "Home:Archive" || resp.Data[1].Label != "Work:Ideas" {
		t.Errorf("labels = [%s %s]", resp.Data[0].Label, resp.Data[1].Label)
	}
}
