package flappy

// Phase is the flight round phase.
type Phase string

const (
	PhaseReady    Phase = "ready"    // Idle at the intro position, waiting for input
	PhaseStarting Phase = "starting" // Gliding from intro to track position
	PhasePlaying  Phase = "playing"  // Physics, spawning and collision active
	PhaseGameOver Phase = "gameover" // Frozen until the next action
)

// phaseEdges is the flight round cycle.
var phaseEdges = map[Phase][]Phase{
	PhaseReady:    {PhaseStarting},
	PhaseStarting: {PhasePlaying},
	PhasePlaying:  {PhaseGameOver},
	PhaseGameOver: {PhaseReady},
}

// FlightDirection selects which way the world scrolls past the body.
type FlightDirection int

const (
	DirectionNormal  FlightDirection = iota // Obstacles come from the right
	DirectionReverse                        // Mirrored: obstacles come from the left
)

// Sign returns +1 for normal flight and -1 for reverse.
func (d FlightDirection) Sign() float64 {
	if d == DirectionReverse {
		return -1
	}
	return 1
}

// Toggle returns the opposite direction.
func (d FlightDirection) Toggle() FlightDirection {
	if d == DirectionReverse {
		return DirectionNormal
	}
	return DirectionReverse
}

func (d FlightDirection) String() string {
	if d == DirectionReverse {
		return "reverse"
	}
	return "normal"
}

// CameraPerspective is tracked for the presentation layer only;
// it never affects collision geometry.
type CameraPerspective int

const (
	CameraDefault     CameraPerspective = iota
	CameraFirstPerson                   // Rendered from the body's point of view
)

// Toggle returns the other perspective.
func (c CameraPerspective) Toggle() CameraPerspective {
	if c == CameraFirstPerson {
		return CameraDefault
	}
	return CameraFirstPerson
}

func (c CameraPerspective) String() string {
	if c == CameraFirstPerson {
		return "first-person"
	}
	return "default"
}

// CharacterID is the skin flown in a round. The simulation only carries it
// through to the game-over event.
type CharacterID string

const (
	CharacterBankr    CharacterID = "bankr"
	CharacterDeployer CharacterID = "deployer"
	CharacterThosmur  CharacterID = "thosmur"
)

// Characters lists the selectable characters in display order.
func Characters() []CharacterID {
	return []CharacterID{CharacterBankr, CharacterDeployer, CharacterThosmur}
}

// ParseCharacter maps a name to a character, falling back to bankr.
func ParseCharacter(s string) CharacterID {
	for _, c := range Characters() {
		if string(c) == s {
			return c
		}
	}
	return CharacterBankr
}

// Next returns the character after c, wrapping around.
func (c CharacterID) Next() CharacterID {
	all := Characters()
	for i, other := range all {
		if other == c {
			return all[(i+1)%len(all)]
		}
	}
	return CharacterBankr
}

// Glyph returns the body glyph used when rendering the character.
func (c CharacterID) Glyph() rune {
	switch c {
	case CharacterDeployer:
		return '◆'
	case CharacterThosmur:
		return '▲'
	default:
		return '●'
	}
}
