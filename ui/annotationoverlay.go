package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xiangqi-arena/annotation"
	"xiangqi-arena/config"
)

// Border plus one column of padding on each side.
const annotationInset = 2

// frameScheduler runs work after the frame currently being handled is drawn.
type frameScheduler struct {
	app *tview.Application
}

func (f frameScheduler) NextFrame(fn func()) {
	// Spawn goroutine to avoid deadlock when called from the event loop
	go f.app.QueueUpdateDraw(fn)
}

// annotationLines wraps text to the inside of a box of the given width.
func annotationLines(text string, width float64) []string {
	inner := int(width) - 2*annotationInset
	if inner < 1 {
		inner = 1
	}
	return tview.WordWrap(text, inner)
}

// measureAnnotation is the rendered height of the framed annotation.
func measureAnnotation(text string, width float64) float64 {
	return float64(len(annotationLines(text, width)) + 2)
}

// AnnotationOverlay draws the active annotation above everything else. It
// is drawn after the whole tree and never takes input.
type AnnotationOverlay struct {
	tips *annotation.Machine
	cfg  *config.Config
}

// NewAnnotationOverlay creates an overlay for the given machine.
func NewAnnotationOverlay(tips *annotation.Machine, cfg *config.Config) *AnnotationOverlay {
	return &AnnotationOverlay{tips: tips, cfg: cfg}
}

// Draw renders the annotation once its position is final.
func (o *AnnotationOverlay) Draw(screen tcell.Screen) {
	s := o.tips.Snapshot()
	if s.State != annotation.Shown {
		return
	}
	x := int(math.Round(s.Placement.Left))
	y := int(math.Round(s.Placement.Top))
	width, height := int(s.Width), int(s.Height)
	if width < 2*annotationInset+1 || height < 3 {
		return
	}

	colors := o.cfg.Theme.Colors
	bgStyle := tcell.StyleDefault.Background(tcell.PaletteColor(colors.AnnotationBG))
	frameStyle := bgStyle.Foreground(tcell.PaletteColor(colors.AnnotationFrame))
	textStyle := bgStyle.Foreground(tcell.PaletteColor(colors.AnnotationFG))

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// Top border: ╭───╮
	screen.SetContent(x, y, '╭', nil, frameStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, frameStyle)
		screen.SetContent(col, y+height-1, '─', nil, frameStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, frameStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, frameStyle)
		screen.SetContent(x+width-1, row, '│', nil, frameStyle)
	}

	// Bottom border: ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, frameStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, frameStyle)

	// Mark the edge facing the anchor.
	pointerCol := x + width/2
	if s.Below {
		screen.SetContent(pointerCol, y, '▲', nil, frameStyle)
	} else {
		screen.SetContent(pointerCol, y+height-1, '▼', nil, frameStyle)
	}

	for i, line := range annotationLines(s.Text, s.Width) {
		row := y + 1 + i
		if row >= y+height-1 {
			break
		}
		col := x + annotationInset
		for _, ch := range line {
			screen.SetContent(col, row, ch, nil, textStyle)
			col++
		}
	}
}
