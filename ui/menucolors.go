package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the dusk palette shared by the panels.
var MenuColors = struct {
	Border      tcell.Color // Muted violet for borders
	CardBG      tcell.Color // Near-black background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Red seal accent
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Error       tcell.Color // Soft pink for field errors
	FieldBG     tcell.Color // Input background
	ButtonBG    tcell.Color // Button background
	ButtonText  tcell.Color // Button text
	MeterFill   tcell.Color // Password meter filled cells
	MeterEmpty  tcell.Color // Password meter empty cells
}{
	Border:      tcell.PaletteColor(60),
	CardBG:      tcell.PaletteColor(234),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(160),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Error:       tcell.PaletteColor(218),
	FieldBG:     tcell.PaletteColor(238),
	ButtonBG:    tcell.PaletteColor(167),
	ButtonText:  tcell.PaletteColor(255),
	MeterFill:   tcell.PaletteColor(221),
	MeterEmpty:  tcell.PaletteColor(240),
}
