package annotation

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"xiangqi-arena/types"
)

// State is the visibility state of the annotation.
type State int

const (
	Hidden State = iota
	// Pending has content and a horizontal position but waits for the next
	// frame to learn its height.
	Pending
	Shown
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Shown:
		return "shown"
	}
	return "hidden"
}

// Scheduler runs fn once after the next frame has been drawn.
type Scheduler interface {
	NextFrame(fn func())
}

// MeasureFunc returns the rendered height of text laid out at width.
type MeasureFunc func(text string, width float64) float64

// Request is the active annotation: what to say and where it points.
type Request struct {
	Subject Subject
	Text    string
	Anchor  types.Rect
}

// Snapshot is a copy of the machine state for rendering.
type Snapshot struct {
	State     State
	Text      string
	Subject   Subject
	Placement Placement
	Width     float64
	Height    float64
	// Below is true when the box flipped under its anchor.
	Below bool
}

// Machine owns the single active annotation. It is not safe for concurrent
// use; call it from the UI event loop only.
type Machine struct {
	metrics  Metrics
	sched    Scheduler
	measure  MeasureFunc
	onChange func(Snapshot)

	state     State
	gen       uint64
	req       *Request
	viewport  types.Size
	placement Placement
	width     float64
	height    float64
	below     bool
}

// NewMachine creates a hidden annotation machine.
func NewMachine(m Metrics, sched Scheduler, measure MeasureFunc) *Machine {
	return &Machine{
		metrics: m,
		sched:   sched,
		measure: measure,
	}
}

// SetChangeFunc registers a callback invoked after every transition.
func (m *Machine) SetChangeFunc(fn func(Snapshot)) {
	m.onChange = fn
}

// SetMetrics replaces the positioner constants. The next placement uses them.
func (m *Machine) SetMetrics(metrics Metrics) {
	m.metrics = metrics
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Generation returns the id of the latest request.
func (m *Machine) Generation() uint64 {
	return m.gen
}

// Snapshot returns the current annotation for rendering.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{State: m.state}
	if m.req == nil {
		return s
	}
	s.Text = m.req.Text
	s.Subject = m.req.Subject
	s.Placement = m.placement
	s.Width = m.width
	s.Height = m.height
	s.Below = m.below
	return s
}

// Show activates the annotation for subject, replacing any active one.
func (m *Machine) Show(subject Subject, anchor types.Rect, viewport types.Size) {
	m.gen++
	text := Describe(subject)
	m.req = &Request{Subject: subject, Text: text, Anchor: anchor}
	m.viewport = viewport
	m.state = Pending
	m.height, m.below = 0, false
	m.width = m.metrics.Width(viewport.Width)
	m.placement = Placement{Top: m.placement.Top, Left: m.metrics.Horizontal(anchor, m.width, viewport.Width)}
	moduleLog().Debug().Uint64("gen", m.gen).Str("text", abbreviate(text)).Msg("annotation pending")
	m.changed()

	gen := m.gen
	m.sched.NextFrame(func() { m.finalize(gen) })
}

// Move tracks the anchor while the annotation is visible. A move over a
// different subject behaves like Show; a move while hidden is ignored.
func (m *Machine) Move(subject Subject, anchor types.Rect, viewport types.Size) {
	if m.state == Hidden {
		return
	}
	if m.req.Subject != subject {
		m.Show(subject, anchor, viewport)
		return
	}
	m.req.Anchor = anchor
	m.viewport = viewport
	width := m.metrics.Width(viewport.Width)
	resized := width != m.width
	m.width = width
	m.placement.Left = m.metrics.Horizontal(anchor, m.width, viewport.Width)
	if m.state == Shown {
		// Text wraps to the width, so a new width means a new height.
		if resized {
			m.height = m.measure(m.req.Text, m.width)
		}
		m.placement.Top, m.below = m.metrics.Vertical(anchor, m.height, viewport.Height)
	}
	m.changed()
}

// Hide dismisses the annotation. A pending measurement becomes stale.
func (m *Machine) Hide() {
	if m.state == Hidden {
		return
	}
	m.gen++
	m.state = Hidden
	m.req = nil
	m.placement = Placement{}
	m.width, m.height, m.below = 0, 0, false
	moduleLog().Debug().Uint64("gen", m.gen).Msg("annotation hidden")
	m.changed()
}

func (m *Machine) finalize(gen uint64) {
	if m.state != Pending || m.gen != gen {
		moduleLog().Debug().Uint64("gen", gen).Uint64("current", m.gen).Msg("dropping stale measurement")
		return
	}
	m.height = m.measure(m.req.Text, m.width)
	m.placement.Top, m.below = m.metrics.Vertical(m.req.Anchor, m.height, m.viewport.Height)
	m.state = Shown
	moduleLog().Debug().
		Uint64("gen", gen).
		Float64("top", m.placement.Top).
		Float64("left", m.placement.Left).
		Bool("below", m.below).
		Msg("annotation shown")
	m.changed()
}

func (m *Machine) changed() {
	if m.onChange != nil {
		m.onChange(m.Snapshot())
	}
}

func moduleLog() *zerolog.Logger {
	l := log.With().Str("module", "annotation").Logger()
	return &l
}

func abbreviate(s string) string {
	r := []rune(s)
	if len(r) <= 24 {
		return s
	}
	return string(r[:24]) + "…"
}
