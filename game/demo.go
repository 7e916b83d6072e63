package game

import "luxbot/core"

// DemoInit is the match header used by dry runs.
func DemoInit() *core.Init {
	return &core.Init{Team: 0, Width: 12, Height: 12}
}

// DemoUpdates scripts a small match for dry runs: one worker walks to a
// coal deposit, fills up and heads back to its city.
func DemoUpdates(turns int) []*core.Update {
	updates := make([]*core.Update, 0, turns)
	x, wood := 1, 0
	for turn := 0; turn < turns; turn++ {
		u := &core.Update{
			Research: []core.ResearchRecord{{Team: 0, Points: 50 + turn}, {Team: 1, Points: turn}},
			Resources: []core.ResourceRecord{
				{Type: "coal", X: 8, Y: 2, Amount: 300},
				{Type: "wood", X: 0, Y: 11, Amount: 1200},
				{Type: "uranium", X: 11, Y: 11, Amount: 500},
			},
			Units: []core.UnitRecord{
				{Type: int(WorkerUnit), Team: 0, ID: "u_1", X: x, Y: 2, Wood: wood},
				{Type: int(CartUnit), Team: 0, ID: "u_2", X: 2, Y: 3},
				{Type: int(WorkerUnit), Team: 1, ID: "u_3", X: 10, Y: 10},
			},
			Cities: []core.CityRecord{
				{Team: 0, ID: "c_1", Fuel: 200, LightUpkeep: 23},
				{Team: 1, ID: "c_2", Fuel: 200, LightUpkeep: 23},
			},
			CityTiles: []core.CityTileRecord{
				{Team: 0, CityID: "c_1", X: 2, Y: 2, Cooldown: float64(turn % 2)},
				{Team: 0, CityID: "c_1", X: 3, Y: 2, Cooldown: 0},
				{Team: 1, CityID: "c_2", X: 10, Y: 9, Cooldown: 0},
			},
		}
		updates = append(updates, u)
		if x < 7 {
			x++
		} else if wood < WorkerCapacity {
			wood += 20
		}
	}
	return updates
}
