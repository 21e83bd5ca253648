package ui

import (
	"strings"

	"mazeglow/internal/core"
)

// Lines flattens a parameter snapshot into display rows: one header per group
// followed by "label: value" rows. Empty groups are skipped.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		out = append(out, g.Name)
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}

// StatusLine joins selected parameters into a single row, in key order.
// Keys missing from the snapshot are skipped.
func StatusLine(snap core.ParameterSnapshot, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := snap.Lookup(k); ok {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, "  ")
}

// KeyHelp lists the shared key bindings of the interactive presenters.
var KeyHelp = []string{
	"R restart",
	"Space pause",
	"S skip carve",
	"E hue mode",
	"N step",
	"H panel",
	"Q quit",
}
