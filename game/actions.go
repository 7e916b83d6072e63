package game

import "fmt"

// Action is a single command for the game engine. String renders the
// protocol form.
type Action interface {
	fmt.Stringer
	Kind() string
}

// MoveAction steps a unit one cell.
type MoveAction struct {
	UnitID string
	Dir    Direction
}

func (a *MoveAction) String() string {
	return fmt.Sprintf("m %s %s", a.UnitID, a.Dir)
}

// Kind returns the action category.
func (a *MoveAction) Kind() string { return "move" }

// BuildCityAction founds a city on the unit's cell.
type BuildCityAction struct {
	UnitID string
}

func (a *BuildCityAction) String() string {
	return fmt.Sprintf("bcity %s", a.UnitID)
}

// Kind returns the action category.
func (a *BuildCityAction) Kind() string { return "build_city" }

// BuildWorkerAction spawns a worker on a city tile.
type BuildWorkerAction struct {
	Pos Position
}

func (a *BuildWorkerAction) String() string {
	return fmt.Sprintf("bw %d %d", a.Pos.X, a.Pos.Y)
}

// Kind returns the action category.
func (a *BuildWorkerAction) Kind() string { return "build_worker" }

// BuildCartAction spawns a cart on a city tile.
type BuildCartAction struct {
	Pos Position
}

func (a *BuildCartAction) String() string {
	return fmt.Sprintf("bc %d %d", a.Pos.X, a.Pos.Y)
}

// Kind returns the action category.
func (a *BuildCartAction) Kind() string { return "build_cart" }

// ResearchAction spends a city tile's turn on research.
type ResearchAction struct {
	Pos Position
}

func (a *ResearchAction) String() string {
	return fmt.Sprintf("r %d %d", a.Pos.X, a.Pos.Y)
}

// Kind returns the action category.
func (a *ResearchAction) Kind() string { return "research" }
