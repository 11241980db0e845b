// Package progress carries expand-progress updates as values.
package progress

import "time"

// Event is one expand-progress broadcast.
type Event struct {
	Fraction   float64 // how much of the reveal panel is visible, in [0,1]
	FromCancel bool    // caused by a cancel or recoil rather than a live drag
	Timestamp  time.Time
}

// Recorder keeps the most recent events. It satisfies the swipe layout's
// expand listener contract.
type Recorder struct {
	// Limit caps the retained history; zero keeps only the last event.
	Limit int
	// Now stamps events; defaults to time.Now.
	Now func() time.Time

	events []Event
	count  int
}

// OnExpand records a broadcast.
func (r *Recorder) OnExpand(fraction float64, fromCancel bool) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	r.count++
	r.events = append(r.events, Event{Fraction: fraction, FromCancel: fromCancel, Timestamp: now()})
	limit := r.Limit
	if limit < 1 {
		limit = 1
	}
	if over := len(r.events) - limit; over > 0 {
		r.events = append(r.events[:0], r.events[over:]...)
	}
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Events returns a copy of the retained history, oldest first.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns the number of broadcasts seen, including dropped ones.
func (r *Recorder) Count() int { return r.count }

// Reset forgets all events.
func (r *Recorder) Reset() {
	r.events = nil
	r.count = 0
}
