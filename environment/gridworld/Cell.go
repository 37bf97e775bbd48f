package gridworld

import "fmt"

// Cell is the kind of terrain at a single grid position
type Cell int

const (
	Free Cell = iota
	Mine
	Wall
	Finish
)

// Rewards for standing on each kind of cell. Walls are never entered,
// so WallReward is never observed, but it is defined for completeness.
const (
	FreeReward   float64 = -0.04
	MineReward   float64 = -1.0
	WallReward   float64 = -0.04
	FinishReward float64 = 1.0
)

// Reward returns the reward for standing on a cell of kind c
func (c Cell) Reward() float64 {
	switch c {
	case Free:
		return FreeReward
	case Mine:
		return MineReward
	case Wall:
		return WallReward
	case Finish:
		return FinishReward
	default:
		return 0.0
	}
}

// Terminal returns whether entering a cell of kind c ends an episode
func (c Cell) Terminal() bool {
	return c == Mine || c == Finish
}

func (c Cell) String() string {
	switch c {
	case Free:
		return "Free"
	case Mine:
		return "Mine"
	case Wall:
		return "Wall"
	case Finish:
		return "Finish"
	default:
		return fmt.Sprintf("Cell(%d)", int(c))
	}
}

// Min returns the minimum reward attainable on any cell
func Min() float64 {
	return MineReward
}

// Max returns the maximum reward attainable on any cell
func Max() float64 {
	return FinishReward
}
