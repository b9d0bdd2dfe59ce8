package core

// PhaseListener is called after a phase change has been applied.
type PhaseListener[P comparable] func(from, to P)

// PhaseMachine is a small state machine over a closed set of phases.
// Both games gate their per-tick logic on its current phase.
type PhaseMachine[P comparable] struct {
	current   P
	edges     map[P]map[P]bool
	listeners []PhaseListener[P]
}

// NewPhaseMachine creates a machine in the initial phase that accepts only
// the listed transitions.
func NewPhaseMachine[P comparable](initial P, edges map[P][]P) *PhaseMachine[P] {
	m := &PhaseMachine[P]{
		current: initial,
		edges:   make(map[P]map[P]bool, len(edges)),
	}
	for from, tos := range edges {
		set := make(map[P]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		m.edges[from] = set
	}
	return m
}

// Current returns the active phase.
func (m *PhaseMachine[P]) Current() P {
	return m.current
}

// Is reports whether the active phase is any of ps.
func (m *PhaseMachine[P]) Is(ps ...P) bool {
	for _, p := range ps {
		if m.current == p {
			return true
		}
	}
	return false
}

// CanTransition reports whether to is reachable from the active phase.
func (m *PhaseMachine[P]) CanTransition(to P) bool {
	return m.edges[m.current][to]
}

// Transition moves to the given phase if the edge exists.
// Returns false, without notifying, for unknown edges and self-transitions.
func (m *PhaseMachine[P]) Transition(to P) bool {
	if to == m.current || !m.CanTransition(to) {
		return false
	}
	m.set(to)
	return true
}

// Reset forces the machine into p regardless of the edge table.
// Listeners are notified only if the phase actually changed.
func (m *PhaseMachine[P]) Reset(p P) {
	if p == m.current {
		return
	}
	m.set(p)
}

// OnChange registers a listener for phase changes.
func (m *PhaseMachine[P]) OnChange(fn PhaseListener[P]) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *PhaseMachine[P]) set(to P) {
	from := m.current
	m.current = to
	for _, fn := range m.listeners {
		fn(from, to)
	}
}
