package ui

import (
	"github.com/rivo/tview"
)

const formWidth = 46

// CreateArenaLayout creates the main layout: the board on the left, the
// account panel on the right and a compact status bar at the bottom.
func CreateArenaLayout(board *XiangqiBoardUI, form *AuthFormUI, hint *tview.TextView) *tview.Flex {
	frame := tview.NewFlex()
	RebuildNormalLayout(frame, board, form, hint)
	return frame
}

// RebuildNormalLayout restores the two-column layout in place.
func RebuildNormalLayout(frame *tview.Flex, board *XiangqiBoardUI, form *AuthFormUI, hint *tview.TextView) {
	frame.Clear()

	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(board.Box, 0, 1, true)
	row.AddItem(form.Flex(), formWidth, 0, false)

	frame.SetDirection(tview.FlexRow)
	frame.AddItem(row, 0, 1, true)
	frame.AddItem(hint, 2, 0, false) // Compact: just 2 rows
}

// BuildFocusLayout shows only the board and its status bar.
func BuildFocusLayout(frame *tview.Flex, board *XiangqiBoardUI, hint *tview.TextView) {
	frame.Clear()
	frame.SetDirection(tview.FlexRow)
	frame.AddItem(board.Box, 0, 1, true)
	frame.AddItem(hint, 2, 0, false)
}

// CreateCenteredForm centers a panel horizontally with the given width.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}
