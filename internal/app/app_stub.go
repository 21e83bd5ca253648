//go:build !ebiten

package app

import (
	"errors"

	"mazeglow/internal/sim"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag (go build -tags ebiten ./cmd/mazeglow)")

// Run always reports that the GUI build tag is missing.
func Run(*sim.Board) error { return ErrNoGUI }
