package render

// Direction is one of the axes the camera can move along, independent of
// where it is looking.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down

	numDirections
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// DirectionSet is the set of movement directions requested for one frame.
// It is level-triggered: a direction stays set from key press to key release.
// The zero value is the empty set.
type DirectionSet [numDirections]bool

// Set marks a direction as requested.
func (s *DirectionSet) Set(d Direction) {
	s[d] = true
}

// Clear removes a direction from the set.
func (s *DirectionSet) Clear(d Direction) {
	s[d] = false
}

// Has reports whether a direction is currently in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s[d]
}

// Any reports whether any direction is requested.
func (s DirectionSet) Any() bool {
	for _, held := range s {
		if held {
			return true
		}
	}
	return false
}
