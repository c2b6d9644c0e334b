package core

// Color is a terminal color slot for a screen cell. The platform maps each
// slot to a concrete color through the active theme, so games only pick
// roles.
type Color uint8

const (
	ColorDefault Color = iota // Terminal default

	// Tile colors
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange

	// Interface roles
	ColorText
	ColorDim
	ColorAccent
	ColorFrame
	ColorCursor
	ColorSelect
	ColorMatch
	ColorWin
	ColorLose
	ColorPanel
)

// ColorCount is the number of color slots.
const ColorCount = int(ColorPanel) + 1

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorBlue:    "blue",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorPurple:  "purple",
	ColorOrange:  "orange",
	ColorText:    "text",
	ColorDim:     "dim",
	ColorAccent:  "accent",
	ColorFrame:   "frame",
	ColorCursor:  "cursor",
	ColorSelect:  "select",
	ColorMatch:   "match",
	ColorWin:     "win",
	ColorLose:    "lose",
	ColorPanel:   "panel",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Style is the foreground/background pair of a cell.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// Plain is the default style.
var Plain = Style{}

// Fg returns a style with only a foreground color.
func Fg(c Color) Style {
	return Style{FG: c}
}
