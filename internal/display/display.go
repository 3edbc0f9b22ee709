// Package display decides how entry names are shown to a terminal.
package display

import (
	"github.com/fatih/color"

	"github.com/jmgilman/go/nsfs/internal/config"
	"github.com/jmgilman/go/nsfs/namespace"
)

// Namer renders entry names for listings. Directories are shown in bright
// blue when color is enabled; everything else is shown as is.
type Namer struct {
	dir *color.Color
}

// New returns a Namer for a color mode: config.ColorAlways,
// config.ColorNever, or config.ColorAuto, which colors only when the
// output is a terminal and NO_COLOR is unset.
func New(mode string) *Namer {
	dir := color.New(color.FgHiBlue)
	switch mode {
	case config.ColorAlways:
		dir.EnableColor()
	case config.ColorNever:
		dir.DisableColor()
	}
	return &Namer{dir: dir}
}

// Plain returns a Namer that never colors.
func Plain() *Namer {
	return New(config.ColorNever)
}

// DisplayName returns name as it should appear for an entry of kind.
func (n *Namer) DisplayName(name string, kind namespace.Kind) string {
	if kind != namespace.KindDirectory {
		return name
	}
	return n.dir.Sprint(name)
}
