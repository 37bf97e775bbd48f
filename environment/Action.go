package environment

import "fmt"

// Action is one of the four compass moves an agent can make
type Action int

// Available actions. The order of the constants is the enumeration
// order used wherever actions are iterated over, e.g. when breaking
// ties between equally valued actions.
const (
	Up Action = iota
	Down
	Left
	Right
)

// NumActions is the number of distinct actions
const NumActions int = 4

// Actions lists all actions in enumeration order
var Actions = [NumActions]Action{Up, Down, Left, Right}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Valid returns whether a is one of the four defined actions
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

// Clockwise returns the action rotated 90° clockwise. The clockwise
// cycle is Up -> Right -> Down -> Left -> Up.
func (a Action) Clockwise() Action {
	switch a {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}
	panic(fmt.Sprintf("clockwise: invalid action %v", a))
}

// CounterClockwise returns the action rotated 90° counter-clockwise
func (a Action) CounterClockwise() Action {
	switch a {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	}
	panic(fmt.Sprintf("counterClockwise: invalid action %v", a))
}

// Offset returns the unit displacement of the action. Up increases y
// and Right increases x.
func (a Action) Offset() (dx, dy int) {
	switch a {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("offset: invalid action %v", a))
}
