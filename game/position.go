package game

import "math"

// Direction is a single step intent for a unit.
type Direction int

const (
	Center Direction = iota
	North
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	default:
		return "c"
	}
}

// stepOrder is the order in which DirectionTo tries single steps.
var stepOrder = []Direction{North, East, South, West}

// Position is a cell coordinate. Y grows to the south.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the Euclidean distance to other.
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Translate moves p by n cells in dir.
func (p Position) Translate(dir Direction, n int) Position {
	switch dir {
	case North:
		p.Y -= n
	case South:
		p.Y += n
	case East:
		p.X += n
	case West:
		p.X -= n
	}
	return p
}

// DirectionTo picks the single step that brings p closest to target.
// A step must be strictly closer than staying put; ties keep the earlier
// direction in N, E, S, W order.
func (p Position) DirectionTo(target Position) Direction {
	best := Center
	bestDist := p.DistanceTo(target)
	for _, dir := range stepOrder {
		d := p.Translate(dir, 1).DistanceTo(target)
		if d < bestDist {
			best = dir
			bestDist = d
		}
	}
	return best
}
