package domain

// Phase identifies which rule produced a projected year.
type Phase string

const (
	// PhaseAccumulation covers years grown at the growth rate plus the yearly contribution.
	PhaseAccumulation Phase = "accumulation"
	// PhaseDrawdown covers years grown at the safe rate minus the annual expense.
	PhaseDrawdown Phase = "drawdown"
)

// PhaseState is the per-run accumulation/drawdown status, kept as a tagged
// two-variant value: either accumulating, or drawing down since a fixed
// 1-based year. The transition is irreversible: Transition on a drawing-down
// state keeps the original start year, so a drawdown year that climbs back
// above the goal cannot revert the latch.
type PhaseState struct {
	phase Phase
	since int
}

// Accumulating is the initial state of every projection run.
func Accumulating() PhaseState {
	return PhaseState{phase: PhaseAccumulation}
}

// DrawingDownSince returns a latched drawdown state starting at the given
// 1-based year.
func DrawingDownSince(year int) PhaseState {
	return PhaseState{phase: PhaseDrawdown, since: year}
}

// Phase returns the variant tag. The zero value counts as accumulating.
func (ps PhaseState) Phase() Phase {
	if ps.phase == "" {
		return PhaseAccumulation
	}
	return ps.phase
}

// DrawingDown reports whether the latch has fired.
func (ps PhaseState) DrawingDown() bool {
	return ps.phase == PhaseDrawdown
}

// DrawdownStart returns the 1-based year the latch fired, if it has.
func (ps PhaseState) DrawdownStart() (int, bool) {
	if ps.phase != PhaseDrawdown {
		return 0, false
	}
	return ps.since, true
}

// Transition latches the state into drawdown at the given year. Latching an
// already drawing-down state is a no-op.
func (ps PhaseState) Transition(year int) PhaseState {
	if ps.DrawingDown() {
		return ps
	}
	return DrawingDownSince(year)
}
