package swipe

import (
	tea "github.com/charmbracelet/bubbletea"

	"pullmenu/internal/gesture"
	"pullmenu/internal/ui"
)

// TouchWrapper hosts a child that does not claim pointer events itself, so
// the layout always gets first refusal on downward drags over it.
type TouchWrapper struct {
	child ui.View
}

// Ensure TouchWrapper implements View and claims pointer events.
var (
	_ ui.View           = (*TouchWrapper)(nil)
	_ ui.PointerClaimer = (*TouchWrapper)(nil)
)

// Wrap returns v inside a TouchWrapper.
func Wrap(v ui.View) *TouchWrapper {
	return &TouchWrapper{child: v}
}

// Unwrap returns the wrapped child.
func (w *TouchWrapper) Unwrap() ui.View { return w.child }

// ClaimsPointer implements ui.PointerClaimer.
func (w *TouchWrapper) ClaimsPointer() bool { return true }

// CanChildDragDown reports whether the child would consume a downward drag
// starting at p, in the child's coordinates.
func (w *TouchWrapper) CanChildDragDown(p gesture.Point) bool {
	switch c := w.child.(type) {
	case interface{ CanScrollUpAt(gesture.Point) bool }:
		return c.CanScrollUpAt(p)
	case ui.Scroller:
		return c.CanScrollUp()
	}
	return false
}

// Init implements ui.View.
func (w *TouchWrapper) Init() tea.Cmd { return w.child.Init() }

// Update implements ui.View.
func (w *TouchWrapper) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	child, cmd := w.child.Update(msg)
	if child != nil {
		w.child = child
	}
	return w, cmd
}

// View implements ui.View.
func (w *TouchWrapper) View() string { return w.child.View() }
