// Package annotation resolves, positions and tracks the floating annotation
// shown for hovered or focused board elements.
package annotation

import (
	"fmt"
	"strconv"

	"xiangqi-arena/board"
	"xiangqi-arena/types"
)

// SubjectKind tells which board element an annotation describes.
type SubjectKind int

const (
	PieceSubject SubjectKind = iota
	RiverSubject
	PalaceSubject
)

// Subject identifies an annotated board element. Two subjects are the same
// anchor when they compare equal.
type Subject struct {
	Kind   SubjectKind
	Piece  types.Piece
	Palace board.Palace
	// Label distinguishes the two river glyphs.
	Label string
}

// PieceOf returns the subject for a piece.
func PieceOf(p types.Piece) Subject {
	return Subject{Kind: PieceSubject, Piece: p}
}

// RiverOf returns the subject for a river label.
func RiverOf(label string) Subject {
	return Subject{Kind: RiverSubject, Label: label}
}

// PalaceOf returns the subject for a palace zone.
func PalaceOf(p board.Palace) Subject {
	return Subject{Kind: PalaceSubject, Palace: p}
}

type pieceInfo struct {
	name    string
	move    string
	offense float64
	defense float64
}

var pieceTable = map[types.Kind]pieceInfo{
	types.General:  {"General", "Moves 1 orthogonally inside the 3x3 palace. Cannot face the opposing general on an open file.", 0.5, 5.0},
	types.Advisor:  {"Advisor", "Moves 1 diagonal step inside the palace.", 1.0, 3.0},
	types.Elephant: {"Elephant", "Moves 2 points diagonally. Blocked by a leg and cannot cross the river.", 1.5, 2.5},
	types.Horse:    {"Horse", "Moves 1 orthogonal then 1 diagonal outward. Blocked by the adjacent leg.", 4.0, 3.5},
	types.Chariot:  {"Chariot", "Moves any number of points orthogonally.", 9.5, 9.0},
	types.Cannon:   {"Cannon", "Moves like a chariot. Captures by jumping over exactly 1 screen.", 6.5, 3.5},
	types.Soldier:  {"Soldier", "Moves 1 forward; after crossing the river may also move 1 left or right.", 2.0, 1.5},
}

const riverText = "River — Midboard boundary. Soldiers gain lateral moves after crossing and become more dangerous. " +
	"Elephants may not cross. Advisors and the General remain in the palace. " +
	"Chariots and Cannons use open files across the river to attack; Horses gain forward outposts. " +
	"Controlling crossings creates strong initiative."

const palaceText = "%s Palace — A 3x3 fortress for the General. The General and Advisors must stay inside. " +
	"Use the palace corners and diagonals for defense, keep the advisor triangle intact, and avoid blocking the General's file. " +
	"Attackers aim files, ranks, and palace diagonals with Chariots, Cannons, and Horse-leg tactics."

// Describe returns the annotation text for a subject. It panics on a piece
// kind or zone it has no text for.
func Describe(s Subject) string {
	switch s.Kind {
	case PieceSubject:
		info, ok := pieceTable[s.Piece.Kind]
		if !ok {
			panic(fmt.Sprintf("annotation: no description for piece kind %d", s.Piece.Kind))
		}
		return fmt.Sprintf("%s — %s Value: Offense %s, Defense %s.",
			info.name, info.move, rating(info.offense), rating(info.defense))
	case RiverSubject:
		return riverText
	case PalaceSubject:
		if s.Palace != board.TopPalace && s.Palace != board.BottomPalace {
			panic(fmt.Sprintf("annotation: unknown palace %d", s.Palace))
		}
		return fmt.Sprintf(palaceText, s.Palace)
	}
	panic(fmt.Sprintf("annotation: unknown subject kind %d", s.Kind))
}

// rating prints the shortest form, so 5.0 reads "5".
func rating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
