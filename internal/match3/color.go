// Package match3 implements the board simulation for the candy match game:
// match detection, swap validation, gravity, refill, the cascade loop and the
// session state machine that gates player input.
//
// Everything here is pure in-memory logic with no terminal dependency.
// Randomness is injected through the Rand interface so boards are
// reproducible for a given seed.
package match3

import (
	"fmt"
	"strings"
)

// Color is a tile color. The zero value Empty marks a vacant cell and is
// never part of a Palette.
type Color uint8

const (
	Empty Color = iota
	Red
	Blue
	Green
	Yellow
	Purple
	Orange
)

// AllColors lists every paintable color in palette order.
var AllColors = []Color{Red, Blue, Green, Yellow, Purple, Orange}

var colorNames = map[Color]string{
	Empty:  "Empty",
	Red:    "Red",
	Blue:   "Blue",
	Green:  "Green",
	Yellow: "Yellow",
	Purple: "Purple",
	Orange: "Orange",
}

// String returns the color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// IsEmpty reports whether c is the empty marker.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// ParseColor converts a case-insensitive color name to a paintable Color.
// "empty" is rejected since it can't be drawn.
func ParseColor(s string) (Color, bool) {
	name := strings.TrimSpace(s)
	for _, c := range AllColors {
		if strings.EqualFold(colorNames[c], name) {
			return c, true
		}
	}
	return Empty, false
}

// MinPaletteSize is the smallest palette that can always build a board
// without initial runs: each cell forbids at most two colors.
const MinPaletteSize = 3

// Palette is the set of colors eligible for random generation.
type Palette []Color

// Validate checks the palette can be drawn from.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[Color]bool, len(p))
	for _, c := range p {
		if c.IsEmpty() || colorNames[c] == "" {
			return fmt.Errorf("palette contains %v: %w", c, ErrInvalidColor)
		}
		if seen[c] {
			return fmt.Errorf("palette repeats %v: %w", c, ErrInvalidColor)
		}
		seen[c] = true
	}
	return nil
}

// Contains reports whether c is in the palette.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// String joins the color names, e.g. "Red,Blue,Green".
func (p Palette) String() string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
