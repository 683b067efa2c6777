// Package ui specifies custom controls for tview to show the xiangqi arena in
// the terminal.
package ui

import (
	"errors"
	"fmt"
	"math"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"xiangqi-arena/annotation"
	"xiangqi-arena/board"
	"xiangqi-arena/config"
	"xiangqi-arena/types"
)

const (
	// Terminal cells are about twice as tall as wide, so a 9:10 board is
	// 1.8 columns per row.
	boardAspect    = 1.8
	minBoardHeight = 14
	riverLabelPad  = 0.12
)

var riverLabels = [2]string{"楚河", "漢界"}

// ErrNoAnnotation is returned when copying with no annotation visible.
var ErrNoAnnotation = errors.New("no annotation to copy")

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// boardTarget is one hoverable element and its on-screen cells.
type boardTarget struct {
	subject annotation.Subject
	rect    types.Rect
}

// cellRect maps board percentages to terminal cells.
type cellRect struct {
	x, y, w, h int
}

func (c cellRect) col(pct float64) int {
	return c.x + int(math.Round(pct/100*float64(c.w-1)))
}

func (c cellRect) row(pct float64) int {
	return c.y + int(math.Round(pct/100*float64(c.h-1)))
}

// fitBoard returns the largest 9:10 board centered in the given area.
func fitBoard(x, y, width, height int) (cellRect, bool) {
	bh := height
	bw := int(math.Round(float64(bh) * boardAspect))
	if bw > width {
		bw = width
		bh = int(float64(bw) / boardAspect)
	}
	if bh < minBoardHeight {
		return cellRect{}, false
	}
	return cellRect{x: x + (width-bw)/2, y: y + (height-bh)/2, w: bw, h: bh}, true
}

type XiangqiBoardUI struct {
	Box      *tview.Box
	hint     *tview.TextView
	cfg      *config.Config
	layout   board.Layout
	pieces   []types.Piece
	tips     *annotation.Machine
	styles   []tcell.Color
	viewport types.Size
	targets  []boardTarget
	hovered  int
	focused  int
	tooSmall bool
}

func NewXiangqiBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *XiangqiBoardUI {
	xb := &XiangqiBoardUI{
		Box:     tview.NewBox(),
		hint:    hint,
		pieces:  board.InitialPieces(),
		hovered: -1,
		focused: -1,
	}
	xb.tips = annotation.NewMachine(c.Annotation, frameScheduler{app}, measureAnnotation)
	xb.tips.SetChangeFunc(func(s annotation.Snapshot) { xb.refreshHint(s) })
	xb.SetConfig(c)
	xb.Box.SetBlurFunc(func() { xb.Blur() })
	xb.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		sw, sh := screen.Size()
		xb.viewport = types.Size{Width: float64(sw), Height: float64(sh)}
		area, ok := fitBoard(x, y, width, height)
		xb.tooSmall = !ok
		if !ok {
			xb.Dismiss()
			xb.targets = nil
			tview.Print(screen, "Terminal too small for the board", x, y+height/2, width, tview.AlignCenter, MenuColors.Hint)
			return x, y, width, height
		}
		xb.targets = xb.buildTargets(area)
		xb.drawBoard(screen, area)
		xb.reanchor()
		return area.x, area.y, area.w, area.h
	})
	xb.refreshHint(annotation.Snapshot{})
	return xb
}

// Annotations returns the machine driving the board's annotation.
func (g *XiangqiBoardUI) Annotations() *annotation.Machine {
	return g.tips
}

func (g *XiangqiBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),     // 0
		tcell.PaletteColor(c.Theme.Colors.LineColor),      // 1
		tcell.PaletteColor(c.Theme.Colors.PalaceColor),    // 2
		tcell.PaletteColor(c.Theme.Colors.LabelColor),     // 3
		tcell.PaletteColor(c.Theme.Colors.RedPieceFG),     // 4
		tcell.PaletteColor(c.Theme.Colors.RedPieceBG),     // 5
		tcell.PaletteColor(c.Theme.Colors.BlackPieceFG),   // 6
		tcell.PaletteColor(c.Theme.Colors.BlackPieceBG),   // 7
		tcell.PaletteColor(c.Theme.Colors.HighlightColor), // 8
	}
	g.cfg = c
	g.layout = board.ComputeLayout(c.Board)
	g.tips.SetMetrics(c.Annotation)
}

// PointerAt feeds a pointer position in screen cells. Entering a target
// shows its annotation, moving within it repositions, leaving hides.
func (g *XiangqiBoardUI) PointerAt(x, y int) {
	i := g.hitTest(float64(x), float64(y))
	if i < 0 {
		if g.hovered >= 0 {
			g.hovered = -1
			g.tips.Hide()
		}
		return
	}
	t := g.targets[i]
	if i == g.hovered {
		g.tips.Move(t.subject, t.rect, g.viewport)
		return
	}
	g.hovered = i
	g.tips.Show(t.subject, t.rect, g.viewport)
}

// FocusNext moves keyboard focus to the next target, wrapping around.
func (g *XiangqiBoardUI) FocusNext() {
	g.moveFocus(1)
}

// FocusPrev moves keyboard focus to the previous target.
func (g *XiangqiBoardUI) FocusPrev() {
	g.moveFocus(-1)
}

func (g *XiangqiBoardUI) moveFocus(step int) {
	if len(g.targets) == 0 {
		return
	}
	if g.focused < 0 {
		if step > 0 {
			g.focused = 0
		} else {
			g.focused = len(g.targets) - 1
		}
	} else {
		g.focused = (g.focused + step + len(g.targets)) % len(g.targets)
	}
	t := g.targets[g.focused]
	g.tips.Show(t.subject, t.rect, g.viewport)
}

// Blur drops keyboard focus and hides the annotation.
func (g *XiangqiBoardUI) Blur() {
	if g.focused < 0 {
		return
	}
	g.focused = -1
	g.tips.Hide()
}

// Dismiss clears hover and focus and hides the annotation, as when the board
// goes out of view.
func (g *XiangqiBoardUI) Dismiss() {
	g.hovered, g.focused = -1, -1
	g.tips.Hide()
}

// CopyAnnotation puts the active annotation text on the system clipboard.
func (g *XiangqiBoardUI) CopyAnnotation() error {
	s := g.tips.Snapshot()
	if s.State == annotation.Hidden {
		return ErrNoAnnotation
	}
	if err := writeClipboard(s.Text); err != nil {
		return fmt.Errorf("copy annotation: %w", err)
	}
	return nil
}

// Focused returns the subject under keyboard focus.
func (g *XiangqiBoardUI) Focused() (annotation.Subject, bool) {
	if g.focused < 0 || g.focused >= len(g.targets) {
		return annotation.Subject{}, false
	}
	return g.targets[g.focused].subject, true
}

// Pieces come first so they win over the palace zones beneath them.
func (g *XiangqiBoardUI) hitTest(x, y float64) int {
	for i, t := range g.targets {
		if t.rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (g *XiangqiBoardUI) buildTargets(area cellRect) []boardTarget {
	l := g.layout
	targets := make([]boardTarget, 0, len(g.pieces)+4)
	for _, p := range g.pieces {
		px, py := l.Node(p.File, p.Rank)
		// A wide glyph starts one cell left so it straddles the intersection.
		w := runewidth.RuneWidth(board.Glyph(p))
		left := area.col(px) - w/2
		targets = append(targets, boardTarget{
			subject: annotation.PieceOf(p),
			rect:    types.Rect{Left: float64(left), Top: float64(area.row(py)), Width: float64(w), Height: 1},
		})
	}
	for i, label := range riverLabels {
		col, row := riverLabelCell(area, l, i)
		targets = append(targets, boardTarget{
			subject: annotation.RiverOf(label),
			rect:    types.Rect{Left: float64(col), Top: float64(row), Width: 4, Height: 1},
		})
	}
	for _, p := range []board.Palace{board.TopPalace, board.BottomPalace} {
		r := l.Palaces[p]
		left, top := area.col(r.Left), area.row(r.Top)
		right, bottom := area.col(r.Left+r.Width), area.row(r.Top+r.Height)
		targets = append(targets, boardTarget{
			subject: annotation.PalaceOf(p),
			rect: types.Rect{
				Left:   float64(left - 1),
				Top:    float64(top),
				Width:  float64(right - left + 2),
				Height: float64(bottom - top + 1),
			},
		})
	}
	return targets
}

// riverLabelCell places 楚河 near the left and 漢界 near the right of the
// river midline.
func riverLabelCell(area cellRect, l board.Layout, i int) (int, int) {
	first, last := l.Grid.Files[0], l.Grid.Files[len(l.Grid.Files)-1]
	pad := (last - first) * riverLabelPad
	row := area.row(l.River.Midline)
	if i == 0 {
		return area.col(first + pad), row
	}
	return area.col(last-pad) - 3, row
}

// reanchor keeps a visible annotation attached after a resize.
func (g *XiangqiBoardUI) reanchor() {
	s := g.tips.Snapshot()
	if s.State == annotation.Hidden {
		return
	}
	for _, t := range g.targets {
		if t.subject == s.Subject {
			g.tips.Move(t.subject, t.rect, g.viewport)
			return
		}
	}
}

func (g *XiangqiBoardUI) activeSubject() (annotation.Subject, bool) {
	s := g.tips.Snapshot()
	return s.Subject, s.State != annotation.Hidden
}

func (g *XiangqiBoardUI) drawBoard(screen tcell.Screen, area cellRect) {
	l := g.layout
	active, hasActive := g.activeSubject()
	boardStyle := tcell.StyleDefault.Background(g.styles[0]).Foreground(g.styles[1])

	for row := area.y; row < area.y+area.h; row++ {
		for col := area.x; col < area.x+area.w; col++ {
			screen.SetContent(col, row, ' ', nil, boardStyle)
		}
	}

	// Palace shading first, under the grid.
	for _, t := range g.targets[len(g.targets)-2:] {
		bg := g.styles[2]
		if hasActive && t.subject == active {
			bg = g.styles[8]
		}
		fillBackground(screen, t.rect, bg)
	}

	fileCols := make([]int, len(l.Grid.Files))
	for i, f := range l.Grid.Files {
		fileCols[i] = area.col(f)
	}
	rankRows := make([]int, len(l.Grid.Ranks))
	for i, r := range l.Grid.Ranks {
		rankRows[i] = area.row(r)
	}
	riverTop, riverBottom := area.row(l.River.TopEdge), area.row(l.River.BottomEdge)
	lineColor := g.styles[1]

	for _, row := range rankRows {
		for col := fileCols[0]; col <= fileCols[len(fileCols)-1]; col++ {
			setForeground(screen, col, row, '─', lineColor)
		}
	}
	// Files leave a full gap over the river band.
	for _, col := range fileCols {
		for row := rankRows[0]; row <= rankRows[len(rankRows)-1]; row++ {
			if row > riverTop && row < riverBottom {
				continue
			}
			setForeground(screen, col, row, '│', lineColor)
		}
	}
	for fi, col := range fileCols {
		for ri, row := range rankRows {
			setForeground(screen, col, row, gridRune(fi, ri, len(fileCols), len(rankRows)), lineColor)
		}
	}

	if g.cfg.Theme.DrawPalaceDiagonals {
		for _, p := range l.Palaces {
			drawPalaceDiagonals(screen, area, p, lineColor)
		}
	}

	labelStyle := tcell.StyleDefault.Foreground(g.styles[3]).Bold(true)
	for i, label := range riverLabels {
		col, row := riverLabelCell(area, l, i)
		style := labelStyle.Background(g.styles[0])
		if hasActive && active == annotation.RiverOf(label) {
			style = style.Background(g.styles[8])
		}
		for _, ch := range label {
			screen.SetContent(col, row, ch, nil, style)
			col += 2
		}
	}

	for _, t := range g.targets[:len(g.pieces)] {
		p := t.subject.Piece
		style := tcell.StyleDefault.Foreground(g.styles[6]).Background(g.styles[7]).Bold(true)
		if p.Side == types.Red {
			style = tcell.StyleDefault.Foreground(g.styles[4]).Background(g.styles[5]).Bold(true)
		}
		if hasActive && t.subject == active {
			style = style.Background(g.styles[8])
		}
		screen.SetContent(int(t.rect.Left), int(t.rect.Top), board.Glyph(p), nil, style)
	}
}

func drawPalaceDiagonals(screen tcell.Screen, area cellRect, p board.Rect, color tcell.Color) {
	left, right := area.col(p.Left), area.col(p.Left+p.Width)
	top, bottom := area.row(p.Top), area.row(p.Top+p.Height)
	if bottom-top < 2 {
		return
	}
	mid := area.row(p.Top + p.Height/2)
	for row := top + 1; row < bottom; row++ {
		if row == mid {
			continue
		}
		t := float64(row-top) / float64(bottom-top)
		span := t * float64(right-left)
		setForeground(screen, left+int(math.Round(span)), row, '╲', color)
		setForeground(screen, right-int(math.Round(span)), row, '╱', color)
	}
}

// gridRune returns the box-drawing character for an intersection. Files
// stop at the river, so ranks 4 and 5 close like board edges.
func gridRune(file, rank, files, ranks int) rune {
	return edgeRune(
		rank == 0 || rank == ranks/2,
		rank == ranks-1 || rank == ranks/2-1,
		file == 0,
		file == files-1,
	)
}

// edgeRune picks the junction for a grid point on the given edges.
func edgeRune(isTop, isBottom, isLeft, isRight bool) rune {
	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// setForeground draws r keeping the cell's background.
func setForeground(s tcell.Screen, x, y int, r rune, fg tcell.Color) {
	_, _, style, _ := s.GetContent(x, y)
	s.SetContent(x, y, r, nil, style.Foreground(fg))
}

func fillBackground(s tcell.Screen, r types.Rect, bg tcell.Color) {
	for row := int(r.Top); row < int(r.Bottom()); row++ {
		for col := int(r.Left); col < int(r.Right()); col++ {
			mainc, combc, style, _ := s.GetContent(col, row)
			s.SetContent(col, row, mainc, combc, style.Background(bg))
		}
	}
}

func (g *XiangqiBoardUI) refreshHint(s annotation.Snapshot) {
	if g.hint == nil {
		return
	}
	var focusLine string
	switch {
	case s.State == annotation.Hidden:
		focusLine = "  ◌ Hover or Tab over a piece, river label or palace"
	case s.Subject.Kind == annotation.PieceSubject:
		p := s.Subject.Piece
		focusLine = fmt.Sprintf("  %c %s piece on file %d, rank %d", board.Glyph(p), p.Side, p.File+1, p.Rank+1)
	case s.Subject.Kind == annotation.RiverSubject:
		focusLine = fmt.Sprintf("  %s River", s.Subject.Label)
	default:
		focusLine = fmt.Sprintf("  ◈ %s palace", s.Subject.Palace)
	}
	g.hint.SetText(focusLine + `
  tab/l/→ next   shift-tab/h/← prev   esc clear   y copy   f focus   c colors   ctrl-f form   ctrl-c quit`)
}
