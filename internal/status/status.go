// Package status holds the interaction status of a swipe layout.
package status

// Status indicates what the swipe layout may do at a given moment.
type Status uint8

const (
	Idle       Status = iota // at rest, nothing revealed
	Changed                  // a drag session has begun
	Busy                     // released past threshold, waiting for the panel to confirm
	Loading                  // selection confirmed, host is processing
	Recovering               // host completed, content is snapping back
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Changed:
		return "Changed"
	case Busy:
		return "Busy"
	case Loading:
		return "Loading"
	case Recovering:
		return "Recovering"
	default:
		return "Unknown"
	}
}

// Machine holds the current Status. Transitions are unconditional: any
// transition is legal from any state and simply overwrites the value.
// Callers gate transitions with the predicates.
type Machine struct {
	current Status

	// OnChange, if set, is called after a transition that changed the value.
	OnChange func(from, to Status)
}

// NewMachine returns a machine in the Idle state.
func NewMachine() *Machine {
	return &Machine{current: Idle}
}

func (m *Machine) set(to Status) {
	from := m.current
	m.current = to
	if m.OnChange != nil && from != to {
		m.OnChange(from, to)
	}
}

// The To methods move to the named status from any other. Moving to the
// current status does not call OnChange.
func (m *Machine) ToIdle()       { m.set(Idle) }
func (m *Machine) ToChanged()    { m.set(Changed) }
func (m *Machine) ToBusy()       { m.set(Busy) }
func (m *Machine) ToLoading()    { m.set(Loading) }
func (m *Machine) ToRecovering() { m.set(Recovering) }

// Current returns the current status.
func (m *Machine) Current() Status { return m.current }

// The Is predicates report whether the machine is in the named status.
func (m *Machine) IsIdle() bool       { return m.current == Idle }
func (m *Machine) IsChanged() bool    { return m.current == Changed }
func (m *Machine) IsBusying() bool    { return m.current == Busy }
func (m *Machine) IsLoading() bool    { return m.current == Loading }
func (m *Machine) IsRecovering() bool { return m.current == Recovering }
