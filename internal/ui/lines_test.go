package ui

import (
	"testing"

	"mazeglow/internal/core"
)

func testSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			core.IntParam("w", "Width", 21),
			core.IntParam("h", "Height", 11),
		}},
		{Name: "Empty"},
		{Name: "Wave", Params: []core.Parameter{
			core.StringParam("mode", "Mode", "idle"),
		}},
	}}
}

func TestLinesGroupsParameters(t *testing.T) {
	got := Lines(testSnapshot())
	want := []string{"World", "  Width: 21", "  Height: 11", "Wave", "  Mode: idle"}
	if len(got) != len(want) {
		t.Fatalf("Lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestStatusLineSkipsMissingKeys(t *testing.T) {
	got := StatusLine(testSnapshot(), "mode", "missing", "w")
	if got != "mode=idle  w=21" {
		t.Fatalf("StatusLine = %q", got)
	}
	if StatusLine(core.ParameterSnapshot{}) != "" {
		t.Fatal("empty snapshot should give an empty status line")
	}
}
