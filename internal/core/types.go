package core

// CellState is the value held by a single grid cell.
//
// Dying and Birthing are transient markers that exist only inside one
// generation transition; a completed step leaves every cell Dead or Alive.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a living cell.
	Alive
	// Dying marks a living cell that dies when the transition commits.
	Dying
	// Birthing marks an empty cell that comes alive when the transition commits.
	Birthing
)

// String returns a short name for the state, for logs and test output.
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Birthing:
		return "birthing"
	}
	return "invalid"
}
