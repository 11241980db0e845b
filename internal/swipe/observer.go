package swipe

import (
	"log/slog"

	"pullmenu/internal/status"
)

// Observer receives lifecycle notifications from a Layout. Implementations
// run on the Bubble Tea update goroutine and must not block.
type Observer interface {
	// OnStatusChange is called after every status transition that changes
	// the current value.
	OnStatusChange(from, to status.Status)

	// OnRecoilStart is called when the snap-back animation launches from
	// fromTop rows.
	OnRecoilStart(fromTop int, fromCancel bool)

	// OnRecoilEnd is called when the snap-back animation finishes.
	OnRecoilEnd()

	// OnItemSelected is called when a selection is confirmed, before the
	// selection listener runs.
	OnItemSelected(index int)
}

// NoopObserver is an Observer that does nothing.
type NoopObserver struct{}

// Ensure NoopObserver implements Observer.
var _ Observer = NoopObserver{}

func (NoopObserver) OnStatusChange(status.Status, status.Status) {}
func (NoopObserver) OnRecoilStart(int, bool)                     {}
func (NoopObserver) OnRecoilEnd()                                {}
func (NoopObserver) OnItemSelected(int)                          {}

// MultiObserver fans out notifications to multiple observers.
// It handles nil observers gracefully by skipping them.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver that forwards calls to all provided observers.
// Nil observers are filtered out.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("swipe observer panicked", "panic", r)
		}
	}()
	fn()
}

// OnStatusChange forwards the call to all observers.
func (m *MultiObserver) OnStatusChange(from, to status.Status) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnStatusChange(from, to) })
	}
}

// OnRecoilStart forwards the call to all observers.
func (m *MultiObserver) OnRecoilStart(fromTop int, fromCancel bool) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnRecoilStart(fromTop, fromCancel) })
	}
}

// OnRecoilEnd forwards the call to all observers.
func (m *MultiObserver) OnRecoilEnd() {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnRecoilEnd() })
	}
}

// OnItemSelected forwards the call to all observers.
func (m *MultiObserver) OnItemSelected(index int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnItemSelected(index) })
	}
}

// LogObserver writes lifecycle notifications to a structured logger.
type LogObserver struct {
	Logger *slog.Logger
}

// Ensure LogObserver implements Observer.
var _ Observer = (*LogObserver)(nil)

// NewLogObserver returns an observer logging to logger, or to slog.Default
// when logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{Logger: logger.With("component", "swipe")}
}

func (o *LogObserver) OnStatusChange(from, to status.Status) {
	o.Logger.Debug("status changed", "from", from.String(), "to", to.String())
}

func (o *LogObserver) OnRecoilStart(fromTop int, fromCancel bool) {
	o.Logger.Debug("recoil started", "from_top", fromTop, "from_cancel", fromCancel)
}

func (o *LogObserver) OnRecoilEnd() {
	o.Logger.Debug("recoil finished")
}

func (o *LogObserver) OnItemSelected(index int) {
	o.Logger.Info("item selected", "index", index)
}
