package game

import "luxbot/core"

// TurnContext is the read-only view a policy decides against. Eligible is
// rebuilt by the engine before any policy runs.
type TurnContext struct {
	State    *GameState
	Player   *Player
	Eligible []Cell
}

// WorkerPolicy moves workers between resources and cities and founds new
// cities once they carry enough.
type WorkerPolicy struct {
	CityBuildCost int
}

// Decide returns the worker's action for this turn, or nil.
func (wp *WorkerPolicy) Decide(tc *TurnContext, worker Unit) Action {
	if !worker.CanAct() {
		return nil
	}

	if worker.CargoSpaceUsed() >= wp.CityBuildCost {
		if worker.CanBuild(tc.State.Map, wp.CityBuildCost) {
			return worker.BuildCity()
		}
		if tile, ok := ClosestCityTile(tc.Player, worker.Pos); ok {
			if empty, ok := EmptyCellAdjacentTo(tc.State.Map, tile.Pos); ok {
				return worker.Move(worker.Pos.DirectionTo(empty.Pos))
			}
		}
	}

	if worker.CargoSpaceLeft() > 0 {
		if cell, ok := ClosestCell(tc.Eligible, worker.Pos); ok {
			return worker.Move(worker.Pos.DirectionTo(cell.Pos))
		}
	}

	if worker.CargoSpaceLeft() == 0 {
		if tile, ok := ClosestCityTile(tc.Player, worker.Pos); ok {
			return worker.Move(worker.Pos.DirectionTo(tile.Pos))
		}
	}

	return nil
}

// CartPolicy decides for carts. The engine holds one as a swappable slot.
type CartPolicy interface {
	Decide(tc *TurnContext, cart Unit) Action
}

// IdleCartPolicy never moves carts.
type IdleCartPolicy struct{}

// Decide always returns nil.
func (IdleCartPolicy) Decide(*TurnContext, Unit) Action { return nil }

// CityTilePolicy spawns workers while the player has more city tiles than
// units.
type CityTilePolicy struct {
	Admission string
	budget    int
}

// NewCityTilePolicy creates a policy using the given admission mode.
func NewCityTilePolicy(admission string) *CityTilePolicy {
	return &CityTilePolicy{Admission: admission}
}

// Begin computes this turn's worker budget. It must run once per turn
// before any Decide call.
func (cp *CityTilePolicy) Begin(p *Player) {
	cp.budget = p.CityTileCount - len(p.Units)
}

// Decide returns a build-worker action for tile, or nil. In budget mode
// each grant consumes one unit of the turn's surplus; in per-tile mode
// every tile compares the global counts on its own.
func (cp *CityTilePolicy) Decide(tc *TurnContext, tile CityTile) Action {
	if !tile.CanAct() {
		return nil
	}
	if cp.Admission == core.AdmissionPerTile {
		if tc.Player.CityTileCount > len(tc.Player.Units) {
			return tile.BuildWorker()
		}
		return nil
	}
	if cp.budget <= 0 {
		return nil
	}
	cp.budget--
	return tile.BuildWorker()
}
