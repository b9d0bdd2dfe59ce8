package crossy

// Phase is the lane game phase.
type Phase string

const (
	PhaseMenu     Phase = "menu"     // Waiting for a run to start
	PhasePlaying  Phase = "playing"  // Traffic moving, input accepted
	PhaseLevelUp  Phase = "levelup"  // Finish reached, next level pending
	PhaseGameOver Phase = "gameover" // Hit by traffic, waiting for restart
)

var phaseEdges = map[Phase][]Phase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhaseLevelUp, PhaseGameOver, PhaseMenu},
	PhaseLevelUp:  {PhasePlaying, PhaseMenu},
	PhaseGameOver: {PhasePlaying, PhaseMenu},
}

// Direction is a single grid step request.
type Direction int

const (
	DirUp    Direction = iota // Toward the finish row (-z)
	DirDown                   // Back toward the start row (+z)
	DirLeft                   // -x
	DirRight                  // +x
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the unit step for d on the (x, z) grid.
func (d Direction) delta() (dx, dz float64, ok bool) {
	switch d {
	case DirUp:
		return 0, -1, true
	case DirDown:
		return 0, 1, true
	case DirLeft:
		return -1, 0, true
	case DirRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
