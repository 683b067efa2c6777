// Package types contains shared data structures for xiangqi-arena.
package types

// Side is the owner of a piece.
type Side int

const (
	Red Side = iota
	Black
)

func (s Side) String() string {
	if s == Red {
		return "Red"
	}
	return "Black"
}

// Kind is the type of a xiangqi piece.
type Kind int

const (
	General Kind = iota
	Advisor
	Elephant
	Horse
	Chariot
	Cannon
	Soldier
)

// Kinds lists every piece kind in table order.
var Kinds = []Kind{General, Advisor, Elephant, Horse, Chariot, Cannon, Soldier}

// Piece is a single piece of the starting position.
// File is 0..8 left to right, Rank is 0..9 top to bottom.
type Piece struct {
	File int
	Rank int
	Kind Kind
	Side Side
}

// Rect is an axis-aligned rectangle in viewport units (pixels or cells).
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 {
	return r.Left + r.Width/2
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Size is a width/height pair in viewport units.
type Size struct {
	Width  float64
	Height float64
}
