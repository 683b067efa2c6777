package board

import (
	"errors"
	"fmt"
	"math"
)

// Config describes the board grid and its margins, all in percent of the
// board box. Left and right share InsetX.
type Config struct {
	Files       int     `json:"-"`
	Ranks       int     `json:"-"`
	InsetX      float64 `json:"inset_x"`
	InsetTop    float64 `json:"inset_top"`
	InsetBottom float64 `json:"inset_bottom"`
}

// DefaultConfig gives equal top and bottom margins.
var DefaultConfig = Config{
	Files:       Files,
	Ranks:       Ranks,
	InsetX:      4,
	InsetTop:    8,
	InsetBottom: 8,
}

// Validate checks that the grid is the standard 9x10 and leaves a positive
// usable area.
func (c Config) Validate() error {
	if c.Files != Files || c.Ranks != Ranks {
		return fmt.Errorf("board must be %dx%d, got %dx%d", Files, Ranks, c.Files, c.Ranks)
	}
	for _, v := range []float64{c.InsetX, c.InsetTop, c.InsetBottom} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("insets must be finite and non-negative")
		}
	}
	if 100-2*c.InsetX <= 0 {
		return fmt.Errorf("horizontal inset %.2f leaves no usable width", c.InsetX)
	}
	if 100-c.InsetTop-c.InsetBottom <= 0 {
		return fmt.Errorf("vertical insets %.2f/%.2f leave no usable height", c.InsetTop, c.InsetBottom)
	}
	return nil
}

// Grid holds the percentage position of every file and rank line.
type Grid struct {
	Files []float64
	Ranks []float64
}

// River is the band between rank 4 and rank 5.
type River struct {
	TopEdge    float64
	BottomEdge float64
	Midline    float64
}

// Rect is a percentage rectangle on the board.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Palace indexes into Layout.Palaces.
type Palace int

const (
	TopPalace Palace = iota
	BottomPalace
)

func (p Palace) String() string {
	if p == TopPalace {
		return "Top"
	}
	return "Bottom"
}

// Layout is the static geometry derived from a Config.
type Layout struct {
	Grid    Grid
	River   River
	Palaces [2]Rect
	StepX   float64
	StepY   float64
	// PieceSize is the piece disc diameter in percent.
	PieceSize float64
}

const (
	riverTopRank     = 4
	riverBottomRank  = 5
	palaceFirstFile  = 3
	palaceSpan       = 2
	bottomPalaceRank = 7
	pieceScale       = 0.62
)

// ComputeLayout derives the board geometry. c must be valid.
func ComputeLayout(c Config) Layout {
	stepX := (100 - 2*c.InsetX) / float64(c.Files-1)
	stepY := (100 - c.InsetTop - c.InsetBottom) / float64(c.Ranks-1)

	files := make([]float64, c.Files)
	for i := range files {
		files[i] = c.InsetX + float64(i)*stepX
	}
	ranks := make([]float64, c.Ranks)
	for i := range ranks {
		ranks[i] = c.InsetTop + float64(i)*stepY
	}

	palace := func(topRank int) Rect {
		return Rect{
			Left:   files[palaceFirstFile],
			Top:    ranks[topRank],
			Width:  palaceSpan * stepX,
			Height: palaceSpan * stepY,
		}
	}

	top, bottom := ranks[riverTopRank], ranks[riverBottomRank]
	return Layout{
		Grid:      Grid{Files: files, Ranks: ranks},
		River:     River{TopEdge: top, BottomEdge: bottom, Midline: (top + bottom) / 2},
		Palaces:   [2]Rect{palace(0), palace(bottomPalaceRank)},
		StepX:     stepX,
		StepY:     stepY,
		PieceSize: math.Min(stepX, stepY) * pieceScale,
	}
}

// Node returns the percentage position of a grid intersection.
func (l Layout) Node(file, rank int) (x, y float64) {
	return l.Grid.Files[file], l.Grid.Ranks[rank]
}
