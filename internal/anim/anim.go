// Package anim drives short, frame-based animations from the Bubble Tea loop.
//
// An Animation is armed with Start, which returns the first frame command.
// Each FrameMsg carrying the animation's ID is passed to Update, which applies
// the eased fraction and returns the next frame command, or nil once the
// duration has elapsed and the end callback has run.
package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the delay between frames (about 60 fps).
const FrameInterval = time.Second / 60

// FrameMsg is a single animation frame.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// Easing maps elapsed fraction [0,1] to interpolated fraction.
type Easing func(t float64) float64

// Linear leaves the fraction unchanged.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and slows towards the end.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Animation is a single-purpose, time-bounded interpolation.
type Animation struct {
	id       int
	duration time.Duration
	easing   Easing
	apply    func(fraction float64)
	end      func()

	start   time.Time
	running bool
}

// New creates an animation. apply receives the eased fraction on every
// frame; end is called once after the final frame. Either may be nil.
func New(d time.Duration, easing Easing, apply func(float64), end func()) *Animation {
	if easing == nil {
		easing = Linear
	}
	return &Animation{
		id:       nextID(),
		duration: d,
		easing:   easing,
		apply:    apply,
		end:      end,
	}
}

// ID returns the identifier carried by this animation's frames.
func (a *Animation) ID() int { return a.id }

// Running reports whether the animation has started and not yet ended.
func (a *Animation) Running() bool { return a.running }

// Duration returns the configured duration.
func (a *Animation) Duration() time.Duration { return a.duration }

// Start arms the animation at now and returns the first frame command.
func (a *Animation) Start(now time.Time) tea.Cmd {
	a.start = now
	a.running = true
	return a.tick()
}

// Update applies a frame. Frames for other animations, or arriving after the
// animation ended, are ignored.
func (a *Animation) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != a.id || !a.running {
		return nil
	}

	fraction := 1.0
	if a.duration > 0 {
		fraction = float64(msg.Time.Sub(a.start)) / float64(a.duration)
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	if a.apply != nil {
		a.apply(a.easing(fraction))
	}
	if fraction < 1 {
		return a.tick()
	}

	a.running = false
	if a.end != nil {
		a.end()
	}
	return nil
}

func (a *Animation) tick() tea.Cmd {
	id := a.id
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}
