package annotation

import (
	"math"

	"xiangqi-arena/types"
)

// Metrics are the positioner constants, in viewport units.
type Metrics struct {
	MaxWidth float64 `json:"max_width"`
	Margin   float64 `json:"margin"`
	Gap      float64 `json:"gap"`
}

// DefaultMetrics are the pixel constants for a browser-sized viewport.
var DefaultMetrics = Metrics{MaxWidth: 360, Margin: 8, Gap: 12}

// Placement is the top-left corner of the annotation box.
type Placement struct {
	Top  float64
	Left float64
}

// Width returns the annotation width for a viewport width.
func (m Metrics) Width(viewportWidth float64) float64 {
	return math.Max(0, math.Min(m.MaxWidth, finite(viewportWidth)-2*m.Margin))
}

// Horizontal centers a box of the given width over the anchor and keeps it
// Margin away from both viewport edges. The left margin wins when the
// viewport is too narrow for both.
func (m Metrics) Horizontal(anchor types.Rect, width, viewportWidth float64) float64 {
	left := finite(anchor.CenterX()) - width/2
	return clamp(left, m.Margin, finite(viewportWidth)-width-m.Margin)
}

// Vertical prefers the spot above the anchor and flips below only when the
// box would cross the top margin. It reports whether it flipped. The result
// is clamped to the viewport either way.
func (m Metrics) Vertical(anchor types.Rect, height, viewportHeight float64) (top float64, below bool) {
	height = finite(height)
	top = finite(anchor.Top) - height - m.Gap
	if top < m.Margin {
		top = finite(anchor.Bottom()) + m.Gap
		below = true
	}
	return clamp(top, m.Margin, finite(viewportHeight)-height-m.Margin), below
}

// Place runs both phases at once for a box whose height is already known.
// A zero size.Width means the box takes the full bounded width.
func (m Metrics) Place(anchor types.Rect, size types.Size, viewport types.Size) Placement {
	w := m.Width(viewport.Width)
	if size.Width > 0 && size.Width < w {
		w = size.Width
	}
	top, _ := m.Vertical(anchor, size.Height, viewport.Height)
	return Placement{Top: top, Left: m.Horizontal(anchor, w, viewport.Width)}
}

// Place positions with DefaultMetrics.
func Place(anchor types.Rect, size types.Size, viewport types.Size) Placement {
	return DefaultMetrics.Place(anchor, size, viewport)
}

// clamp bounds v to [lo, hi]; lo wins if the bounds cross.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
