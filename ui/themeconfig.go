package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"xiangqi-arena/config"
)

type paletteEntry struct {
	code int
	name string
}

// Wood and paper tones for the board surface.
var surfaceColors = []paletteEntry{
	{180, "Tan"},
	{223, "Peach"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{179, "Light Brown"},
	{172, "Brown"},
	{136, "Dark Brown"},
	{188, "Light Beige"},
	{252, "Light Gray"},
	{250, "Gray"},
}

// Ink tones for grid lines.
var inkColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{16, "True Black"},
}

// ThemeConfigUI lets the user pick board and line colors with a live preview
// and stores the choice in the config file.
type ThemeConfigUI struct {
	flex    *tview.Flex
	list    *tview.List
	preview *tview.Box
	cfg     *config.Config
	onDone  func()

	surface     int
	ink         int
	editingLine bool
}

// NewThemeConfig creates the theme screen. onDone runs after a choice is
// saved.
func NewThemeConfig(cfg *config.Config, onDone func()) *ThemeConfigUI {
	tc := &ThemeConfigUI{
		cfg:     cfg,
		onDone:  onDone,
		surface: cfg.Theme.Colors.BoardColor,
		ink:     cfg.Theme.Colors.LineColor,
	}

	tc.list = tview.NewList()
	tc.list.SetBorder(true)
	tc.list.ShowSecondaryText(false)
	tc.populate()

	tc.list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		entries := tc.entries()
		if index < 0 || index >= len(entries) {
			return
		}
		if tc.editingLine {
			tc.ink = entries[index].code
		} else {
			tc.surface = entries[index].code
		}
	})
	tc.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		tc.Apply()
	})

	tc.preview = tview.NewBox()
	tc.preview.SetBorder(true)
	tc.preview.SetTitle(" Preview ")
	tc.preview.SetDrawFunc(tc.drawPreview)

	tc.flex = tview.NewFlex().
		AddItem(tc.list, 30, 0, true).
		AddItem(tc.preview, 0, 1, false)
	return tc
}

func (tc *ThemeConfigUI) entries() []paletteEntry {
	if tc.editingLine {
		return inkColors
	}
	return surfaceColors
}

func (tc *ThemeConfigUI) populate() {
	tc.list.Clear()
	current := tc.surface
	tc.list.SetTitle(" Board Color (Tab: lines) ")
	if tc.editingLine {
		current = tc.ink
		tc.list.SetTitle(" Line Color (Tab: board) ")
	}
	for i, c := range tc.entries() {
		tc.list.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range tc.entries() {
		if c.code == current {
			tc.list.SetCurrentItem(i)
			break
		}
	}
}

// Apply writes the previewed colors to the config and saves it. Save errors
// are logged; the colors stay applied for this session.
func (tc *ThemeConfigUI) Apply() {
	tc.cfg.Theme.Colors.BoardColor = tc.surface
	tc.cfg.Theme.Colors.LineColor = tc.ink
	if err := tc.cfg.Save(); err != nil {
		log.Error().Str("module", "ui").Err(err).Msg("saving theme")
	}
	if tc.onDone != nil {
		tc.onDone()
	}
}

// ToggleMode switches between editing the board and the line color.
func (tc *ThemeConfigUI) ToggleMode() {
	tc.editingLine = !tc.editingLine
	tc.populate()
}

// Flex returns the flex container for this UI.
func (tc *ThemeConfigUI) Flex() *tview.Flex {
	return tc.flex
}

// SetInputCapture sets the input capture for the color list.
func (tc *ThemeConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	tc.list.SetInputCapture(capture)
}

// drawPreview renders one palace with two pieces in the previewed colors.
func (tc *ThemeConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const span = 2 // palace width and height in steps
	const stepX, stepY = 6, 3
	if width < span*stepX+6 || height < span*stepY+4 {
		return x, y, width, height
	}
	surface := tcell.PaletteColor(tc.surface)
	ink := tcell.PaletteColor(tc.ink)
	colors := tc.cfg.Theme.Colors
	lineStyle := tcell.StyleDefault.Background(surface).Foreground(ink)

	left, top := x+2, y+1
	right, bottom := left+span*stepX, top+span*stepY
	for row := top - 1; row <= bottom+1; row++ {
		for col := left - 2; col <= right+2; col++ {
			screen.SetContent(col, row, ' ', nil, lineStyle)
		}
	}
	for i := 0; i <= span; i++ {
		for col := left; col <= right; col++ {
			screen.SetContent(col, top+i*stepY, '─', nil, lineStyle)
		}
		for row := top; row <= bottom; row++ {
			screen.SetContent(left+i*stepX, row, '│', nil, lineStyle)
		}
	}
	for i := 0; i <= span; i++ {
		for j := 0; j <= span; j++ {
			screen.SetContent(left+i*stepX, top+j*stepY, edgeRune(j == 0, j == span, i == 0, i == span), nil, lineStyle)
		}
	}
	for row := top + 1; row < bottom; row++ {
		if row == top+stepY {
			continue
		}
		off := (row - top) * stepX / stepY
		screen.SetContent(left+off, row, '╲', nil, lineStyle)
		screen.SetContent(right-off, row, '╱', nil, lineStyle)
	}

	red := tcell.StyleDefault.Foreground(tcell.PaletteColor(colors.RedPieceFG)).
		Background(tcell.PaletteColor(colors.RedPieceBG)).Bold(true)
	black := tcell.StyleDefault.Foreground(tcell.PaletteColor(colors.BlackPieceFG)).
		Background(tcell.PaletteColor(colors.BlackPieceBG)).Bold(true)
	screen.SetContent(left+stepX, top+stepY, '帥', nil, red)
	screen.SetContent(left, bottom, '仕', nil, red)
	screen.SetContent(right, top, '將', nil, black)

	info := fmt.Sprintf("Board: %d  Line: %d", tc.surface, tc.ink)
	tview.Print(screen, info, left, bottom+2, width-4, tview.AlignLeft, MenuColors.Label)
	return x, y, width, height
}
