package swipe

import "reflect"

// ExpandListener is told how much of the reveal panel is visible.
// fromCancel is true for updates caused by a cancel or recoil rather than a
// committed drag.
type ExpandListener interface {
	OnExpand(fraction float64, fromCancel bool)
}

type funcListener struct {
	fn func(float64, bool)
}

func (f *funcListener) OnExpand(fraction float64, fromCancel bool) { f.fn(fraction, fromCancel) }

// ListenerFunc adapts fn to an ExpandListener. Each call returns a distinct
// listener, so keep the result to remove it later.
func ListenerFunc(fn func(fraction float64, fromCancel bool)) ExpandListener {
	return &funcListener{fn: fn}
}

// Listeners is an ordered registry of expand listeners. The same listener
// may be registered more than once.
type Listeners struct {
	list []ExpandListener
}

// Add appends l. Nil listeners are ignored.
func (s *Listeners) Add(l ExpandListener) {
	if l == nil {
		return
	}
	s.list = append(s.list, l)
}

// Remove drops the first registration of l and reports whether one was found.
func (s *Listeners) Remove(l ExpandListener) bool {
	for i, cur := range s.list {
		if sameListener(cur, l) {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every registration.
func (s *Listeners) Clear() { s.list = nil }

// Len returns the number of registrations.
func (s *Listeners) Len() int { return len(s.list) }

// Snapshot returns the registrations in order.
func (s *Listeners) Snapshot() []ExpandListener {
	out := make([]ExpandListener, len(s.list))
	copy(out, s.list)
	return out
}

// Notify calls every listener registered at the time of the call, in
// registration order. Listeners may add or remove registrations while being
// notified; the change applies to the next broadcast.
func (s *Listeners) Notify(fraction float64, fromCancel bool) {
	for _, l := range s.Snapshot() {
		l.OnExpand(fraction, fromCancel)
	}
}

// sameListener compares by identity, treating values of non-comparable
// dynamic types as distinct instead of panicking.
func sameListener(a, b ExpandListener) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
