// Package gesture turns raw mouse messages into pull-down drag callbacks.
package gesture

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

// Config tunes the tracker. Distances are in terminal rows.
type Config struct {
	Slop       int     // rows of downward travel before a press becomes a drag
	Threshold  int     // translation at which a release commits
	MaxOffset  int     // translation never exceeds this
	Resistance float64 // rows of translation per row of pointer travel
}

// DefaultConfig returns the tracker defaults.
func DefaultConfig() Config {
	return Config{
		Slop:       1,
		Threshold:  6,
		MaxOffset:  9,
		Resistance: 0.6,
	}
}

// Point is a position relative to the tracker's origin.
type Point struct {
	X, Y int
}

// Callback receives drag lifecycle notifications from a Tracker.
type Callback interface {
	OnActionDown()
	OnBeginDragging()
	OnActionMove(expanded bool, t *Tracker)
	OnActionUp(expanded bool)
	OnActionCancel(expanded bool)
}

// Tracker follows one pointer session at a time. The accumulated
// translation outlives the session and is only reset by EndDrag, so a
// committed drag can be picked up again where it stopped.
type Tracker struct {
	cb     Callback
	cfg    Config
	origin Point

	down          bool
	delivered     bool // OnActionDown sent for this session
	beginDragging bool
	downPoint     Point
	last          Point
	motionY       int // reference row for translation deltas
	translation   float64
}

// New creates a tracker reporting to cb.
func New(cb Callback, cfg Config) *Tracker {
	if cfg.Resistance <= 0 {
		cfg.Resistance = 1
	}
	if cfg.MaxOffset < cfg.Threshold {
		cfg.MaxOffset = cfg.Threshold
	}
	return &Tracker{cb: cb, cfg: cfg}
}

// Config returns the tracker configuration.
func (t *Tracker) Config() Config { return t.cfg }

// SetTouchSlop sets the slop in rows.
func (t *Tracker) SetTouchSlop(rows int) {
	if rows < 0 {
		rows = 0
	}
	t.cfg.Slop = rows
}

// SetOrigin sets the screen cell that maps to Point{0, 0}.
func (t *Tracker) SetOrigin(x, y int) {
	t.origin = Point{X: x, Y: y}
}

// EventToPoint converts a mouse message to a tracker-relative point.
func (t *Tracker) EventToPoint(msg tea.MouseMsg) Point {
	return Point{X: msg.X - t.origin.X, Y: msg.Y - t.origin.Y}
}

// Point returns the last pointer position seen in the current session.
func (t *Tracker) Point() Point { return t.last }

// Translation returns the accumulated drag translation in rows.
func (t *Tracker) Translation() float64 { return t.translation }

// Pressed reports whether a pointer session is open.
func (t *Tracker) Pressed() bool { return t.down }

// IsBeginDragging reports whether the current session has crossed the slop.
func (t *Tracker) IsBeginDragging() bool { return t.beginDragging }

// IsExpanded reports whether the translation has reached the threshold.
func (t *Tracker) IsExpanded() bool {
	return t.translation >= float64(t.cfg.Threshold)
}

// FeedIntercept observes a message that has not been claimed yet and
// reports whether the caller should take over the pointer stream.
func (t *Tracker) FeedIntercept(msg tea.MouseMsg) bool {
	p := t.EventToPoint(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			t.press(p)
		}
		return false
	case tea.MouseActionMotion:
		if !t.down {
			return false
		}
		if t.beginDragging {
			return true
		}
		dy := p.Y - t.downPoint.Y
		dx := p.X - t.downPoint.X
		if dx < 0 {
			dx = -dx
		}
		return dy > t.cfg.Slop && dy >= dx
	case tea.MouseActionRelease:
		// The session ended without being claimed.
		t.finish()
		return false
	}
	return false
}

// FeedTouch processes a claimed message and drives the callbacks.
// It reports whether the message was consumed.
func (t *Tracker) FeedTouch(msg tea.MouseMsg) bool {
	p := t.EventToPoint(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		t.press(p)
		t.deliverDown()
		return true
	case tea.MouseActionMotion:
		if !t.down {
			return false
		}
		t.deliverDown()
		if !t.beginDragging && p.Y-t.downPoint.Y > t.cfg.Slop {
			t.beginDragging = true
			t.motionY = t.downPoint.Y + t.cfg.Slop
			t.cb.OnBeginDragging()
		}
		if t.beginDragging {
			t.translate(p.Y - t.motionY)
			t.motionY = p.Y
		}
		t.last = p
		t.cb.OnActionMove(t.IsExpanded(), t)
		return true
	case tea.MouseActionRelease:
		if !t.down {
			return false
		}
		t.last = p
		expanded := t.IsExpanded()
		t.finish()
		t.cb.OnActionUp(expanded)
		return true
	}
	return false
}

// Cancel aborts the open session, if any, and reports it as cancelled.
func (t *Tracker) Cancel() {
	if !t.down {
		return
	}
	expanded := t.IsExpanded()
	t.finish()
	t.cb.OnActionCancel(expanded)
}

// EndDrag closes the drag and resets the translation. Safe to call twice.
func (t *Tracker) EndDrag() {
	t.beginDragging = false
	t.translation = 0
}

// TargetTopOffset returns the delta moving a surface at currentTop to the
// tracked position.
func (t *Tracker) TargetTopOffset(currentTop int) int {
	return int(math.Round(t.translation)) - currentTop
}

// TargetTopOffsetTo returns the delta moving a surface at currentTop to step.
func (t *Tracker) TargetTopOffsetTo(currentTop, step int) int {
	return step - currentTop
}

// ExpandProgress returns top as a fraction of the threshold. The result is
// not clamped.
func (t *Tracker) ExpandProgress(top int) float64 {
	if t.cfg.Threshold <= 0 {
		return 1
	}
	return float64(top) / float64(t.cfg.Threshold)
}

func (t *Tracker) press(p Point) {
	t.down = true
	t.delivered = false
	t.beginDragging = false
	t.downPoint = p
	t.last = p
}

func (t *Tracker) deliverDown() {
	if t.delivered {
		return
	}
	t.delivered = true
	t.cb.OnActionDown()
}

func (t *Tracker) translate(rows int) {
	t.translation += float64(rows) * t.cfg.Resistance
	if t.translation < 0 {
		t.translation = 0
	}
	if limit := float64(t.cfg.MaxOffset); t.translation > limit {
		t.translation = limit
	}
}

func (t *Tracker) finish() {
	t.down = false
	t.delivered = false
	t.beginDragging = false
}
