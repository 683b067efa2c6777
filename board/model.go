// Package board holds the fixed xiangqi starting position and the percentage
// geometry used to draw it.
package board

import (
	"fmt"

	"xiangqi-arena/types"
)

const (
	Files = 9
	Ranks = 10
)

// Black at top, Red at bottom.
var backRank = []types.Kind{
	types.Chariot, types.Horse, types.Elephant, types.Advisor, types.General,
	types.Advisor, types.Elephant, types.Horse, types.Chariot,
}

var redGlyphs = map[types.Kind]rune{
	types.Chariot:  '俥',
	types.Horse:    '傌',
	types.Elephant: '相',
	types.Advisor:  '仕',
	types.General:  '帥',
	types.Cannon:   '炮',
	types.Soldier:  '兵',
}

var blackGlyphs = map[types.Kind]rune{
	types.Chariot:  '車',
	types.Horse:    '馬',
	types.Elephant: '象',
	types.Advisor:  '士',
	types.General:  '將',
	types.Cannon:   '砲',
	types.Soldier:  '卒',
}

// Glyph returns the character printed on a piece face.
func Glyph(p types.Piece) rune {
	glyphs := blackGlyphs
	if p.Side == types.Red {
		glyphs = redGlyphs
	}
	r, ok := glyphs[p.Kind]
	if !ok {
		panic(fmt.Sprintf("board: no glyph for piece kind %d", p.Kind))
	}
	return r
}

// InitialPieces returns the 32 pieces of the starting position.
func InitialPieces() []types.Piece {
	pcs := make([]types.Piece, 0, 32)
	for _, side := range []types.Side{types.Black, types.Red} {
		back, cannons, soldiers := 0, 2, 3
		if side == types.Red {
			back, cannons, soldiers = 9, 7, 6
		}
		for f, k := range backRank {
			pcs = append(pcs, types.Piece{File: f, Rank: back, Kind: k, Side: side})
		}
		for _, f := range []int{1, 7} {
			pcs = append(pcs, types.Piece{File: f, Rank: cannons, Kind: types.Cannon, Side: side})
		}
		for _, f := range []int{0, 2, 4, 6, 8} {
			pcs = append(pcs, types.Piece{File: f, Rank: soldiers, Kind: types.Soldier, Side: side})
		}
	}
	return pcs
}
