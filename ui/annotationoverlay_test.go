package ui

import (
	"math"
	"testing"

	"xiangqi-arena/annotation"
)

func TestMeasureAnnotation(t *testing.T) {
	if h := measureAnnotation("short", 20); h != 3 {
		t.Fatalf("expected one line plus frame, got %v", h)
	}
	text := "one two three four five six seven eight nine ten"
	lines := annotationLines(text, 14)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	if h := measureAnnotation(text, 14); h != float64(len(lines)+2) {
		t.Fatalf("height %v does not match %d lines", h, len(lines))
	}
	// Degenerate widths still wrap to something.
	if h := measureAnnotation("abc", 0); h < 3 {
		t.Fatalf("unexpected height %v", h)
	}
}

func TestOverlayDrawsOnlyWhenShown(t *testing.T) {
	xb, screen, frames := newTestBoard(t)
	overlay := NewAnnotationOverlay(xb.tips, xb.cfg)

	corners := func() int {
		n := 0
		for y := 0; y < screenHeight; y++ {
			for x := 0; x < screenWidth; x++ {
				if r, _, _, _ := screen.GetContent(x, y); r == '╭' {
					n++
				}
			}
		}
		return n
	}

	xb.FocusNext()
	screen.Clear()
	overlay.Draw(screen)
	if corners() != 0 {
		t.Fatal("pending annotation should not be drawn")
	}

	frames.flush()
	s := xb.tips.Snapshot()
	if s.State != annotation.Shown {
		t.Fatalf("expected shown, got %v", s.State)
	}
	overlay.Draw(screen)
	x, y := int(math.Round(s.Placement.Left)), int(math.Round(s.Placement.Top))
	if r, _, _, _ := screen.GetContent(x, y); r != '╭' {
		t.Fatalf("expected frame corner at %d,%d, got %q", x, y, r)
	}
	bottom := y + int(s.Height) - 1
	if r, _, _, _ := screen.GetContent(x, bottom); r != '╰' {
		t.Fatalf("expected bottom corner at %d,%d, got %q", x, bottom, r)
	}
	if s.Height != measureAnnotation(s.Text, s.Width) {
		t.Fatalf("height %v does not match measured text", s.Height)
	}

	xb.Blur()
	screen.Clear()
	overlay.Draw(screen)
	if corners() != 0 {
		t.Fatal("hidden annotation should not be drawn")
	}
}

func TestResizeRewrapsAnnotation(t *testing.T) {
	xb, screen, frames := newTestBoard(t)
	overlay := NewAnnotationOverlay(xb.tips, xb.cfg)
	xb.FocusNext()
	frames.flush()
	wide := xb.tips.Snapshot()

	// A narrow terminal bounds the annotation below its configured width.
	const narrow = 30
	screen.SetSize(narrow, screenHeight)
	xb.Box.SetRect(0, 0, narrow, boardHeight)
	xb.Box.Draw(screen)

	s := xb.tips.Snapshot()
	if s.State != annotation.Shown || s.Width >= wide.Width {
		t.Fatalf("expected a narrower shown annotation, got %+v", s)
	}
	if s.Height != measureAnnotation(s.Text, s.Width) {
		t.Fatalf("height %v not remeasured for width %v", s.Height, s.Width)
	}
	if s.Height <= wide.Height {
		t.Fatalf("narrower text should wrap to more lines: %v vs %v", s.Height, wide.Height)
	}

	screen.Clear()
	overlay.Draw(screen)
	lines := annotationLines(s.Text, s.Width)
	last := []rune(lines[len(lines)-1])
	x := int(math.Round(s.Placement.Left)) + annotationInset
	y := int(math.Round(s.Placement.Top)) + len(lines)
	if r, _, _, _ := screen.GetContent(x, y); r != last[0] {
		t.Fatalf("last line not drawn: expected %q at %d,%d, got %q", last[0], x, y, r)
	}
}
