package annotation

import (
	"math"
	"testing"

	"xiangqi-arena/types"
)

func TestPlaceFlipsBelowNearTop(t *testing.T) {
	anchor := types.Rect{Top: 5, Left: 100, Width: 40, Height: 40}
	got := Place(anchor, types.Size{Height: 80}, types.Size{Width: 1000, Height: 800})
	if got.Top != 57 {
		t.Fatalf("expected top 57, got %v", got.Top)
	}
	// centered over x=120 with width 360 → -60, clamped to margin
	if got.Left != 8 {
		t.Fatalf("expected left 8, got %v", got.Left)
	}
}

func TestPlacePrefersAbove(t *testing.T) {
	anchor := types.Rect{Top: 400, Left: 480, Width: 40, Height: 40}
	got := Place(anchor, types.Size{Height: 80}, types.Size{Width: 1000, Height: 800})
	if got.Top != 400-80-12 {
		t.Fatalf("expected top %v, got %v", 400-80-12, got.Top)
	}
	if got.Left != 500-180 {
		t.Fatalf("expected left %v, got %v", 500-180, got.Left)
	}
}

func TestVerticalFlipRule(t *testing.T) {
	m := DefaultMetrics
	tests := []struct {
		name      string
		anchorTop float64
		height    float64
		below     bool
		top       float64
	}{
		{"exactly at margin stays above", 100, 80, false, 8},
		{"one pixel short flips", 99, 80, true, 99 + 20 + 12},
		{"plenty of room", 300, 50, false, 238},
		{"tall box flips", 50, 200, true, 82},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := types.Rect{Top: tt.anchorTop, Left: 10, Width: 20, Height: 20}
			top, below := m.Vertical(anchor, tt.height, 800)
			if below != tt.below {
				t.Fatalf("below: expected %v, got %v", tt.below, below)
			}
			if top != tt.top {
				t.Fatalf("top: expected %v, got %v", tt.top, top)
			}
		})
	}
}

func TestVerticalFlipDoesNotCheckBottom(t *testing.T) {
	// Flipping below overflows the bottom; the clamp pulls it back up.
	anchor := types.Rect{Top: 50, Left: 10, Width: 20, Height: 700}
	top, below := DefaultMetrics.Vertical(anchor, 100, 800)
	if !below {
		t.Fatal("expected flip below")
	}
	if top != 800-100-8 {
		t.Fatalf("expected clamp to %v, got %v", 800-100-8, top)
	}
}

func TestPlaceStaysInsideViewport(t *testing.T) {
	viewports := []types.Size{
		{Width: 1000, Height: 800},
		{Width: 376, Height: 300},
		{Width: 200, Height: 600},
		{Width: 1920, Height: 1080},
	}
	for _, vp := range viewports {
		w := DefaultMetrics.Width(vp.Width)
		for _, h := range []float64{20, 80, 150} {
			if h > vp.Height-16 {
				continue
			}
			for ax := 0.0; ax < vp.Width; ax += vp.Width / 7 {
				for ay := 0.0; ay < vp.Height; ay += vp.Height / 9 {
					anchor := types.Rect{Top: ay, Left: ax, Width: math.Min(30, vp.Width-ax), Height: math.Min(30, vp.Height-ay)}
					p := Place(anchor, types.Size{Width: w, Height: h}, vp)
					if p.Left < 8 || p.Left+w > vp.Width-8+1e-9 {
						t.Fatalf("vp %v anchor %+v: left %v width %v escapes", vp, anchor, p.Left, w)
					}
					if p.Top < 8 || p.Top+h > vp.Height-8+1e-9 {
						t.Fatalf("vp %v anchor %+v: top %v height %v escapes", vp, anchor, p.Top, h)
					}
				}
			}
		}
	}
}

func TestWidthBound(t *testing.T) {
	tests := []struct {
		vw, want float64
	}{
		{1000, 360},
		{376, 360},
		{300, 284},
		{16, 0},
		{0, 0},
		{-50, 0},
	}
	for _, tt := range tests {
		if got := DefaultMetrics.Width(tt.vw); got != tt.want {
			t.Fatalf("width(%v): expected %v, got %v", tt.vw, tt.want, got)
		}
	}
}

func TestPathologicalViewport(t *testing.T) {
	anchor := types.Rect{Top: 5, Left: 5, Width: 10, Height: 10}
	for _, vp := range []types.Size{
		{Width: 0, Height: 0},
		{Width: -100, Height: -100},
		{Width: math.NaN(), Height: math.Inf(1)},
	} {
		p := Place(anchor, types.Size{Height: 40}, vp)
		if math.IsNaN(p.Top) || math.IsNaN(p.Left) || math.IsInf(p.Top, 0) || math.IsInf(p.Left, 0) {
			t.Fatalf("viewport %v: non-finite placement %+v", vp, p)
		}
		if p.Top != 8 || p.Left != 8 {
			t.Fatalf("viewport %v: collapsed bounds should settle on the margin, got %+v", vp, p)
		}
	}
}

func TestCornerAnchorClampsBothAxes(t *testing.T) {
	vp := types.Size{Width: 500, Height: 400}
	anchor := types.Rect{Top: 380, Left: 490, Width: 10, Height: 20}
	p := Place(anchor, types.Size{Height: 60}, vp)
	if p.Left != 500-360-8 {
		t.Fatalf("expected left %v, got %v", 500-360-8, p.Left)
	}
	if p.Top != 380-60-12 {
		t.Fatalf("expected top %v, got %v", 380-60-12, p.Top)
	}
}

func TestCellMetrics(t *testing.T) {
	m := Metrics{MaxWidth: 44, Margin: 1, Gap: 1}
	anchor := types.Rect{Top: 1, Left: 10, Width: 2, Height: 1}
	p := m.Place(anchor, types.Size{Height: 6}, types.Size{Width: 120, Height: 40})
	if p.Top != 3 {
		t.Fatalf("expected flip to row 3, got %v", p.Top)
	}
	if p.Left != 1 {
		t.Fatalf("expected left 1, got %v", p.Left)
	}
}
