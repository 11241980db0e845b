package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
// Hosts size a View by sending it a tea.WindowSizeMsg with the View's own dimensions.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Scroller is implemented by views that scroll vertically.
type Scroller interface {
	// CanScrollUp reports whether the content can still scroll towards its top,
	// i.e. a downward drag belongs to the view rather than its host.
	CanScrollUp() bool
}

// PointerClaimer is implemented by views that always claim mouse events on
// drag-down, so a host does not need to wrap them to see those events.
type PointerClaimer interface {
	ClaimsPointer() bool
}
