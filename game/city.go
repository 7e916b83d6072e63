package game

// CityTile is a read-only view of one tile of a city.
type CityTile struct {
	CityID   string   `json:"city_id"`
	Team     int      `json:"team"`
	Pos      Position `json:"pos"`
	Cooldown float64  `json:"cooldown"`
}

// CanAct reports whether the tile may receive an action this turn.
func (ct CityTile) CanAct() bool { return ct.Cooldown < 1 }

// BuildWorker returns an action spawning a worker on the tile.
func (ct CityTile) BuildWorker() Action {
	return &BuildWorkerAction{Pos: ct.Pos}
}

// BuildCart returns an action spawning a cart on the tile.
func (ct CityTile) BuildCart() Action {
	return &BuildCartAction{Pos: ct.Pos}
}

// Research returns an action spending the tile's turn on research.
func (ct CityTile) Research() Action {
	return &ResearchAction{Pos: ct.Pos}
}

// City aggregates the tiles sharing a city id.
type City struct {
	ID          string     `json:"id"`
	Team        int        `json:"team"`
	Fuel        float64    `json:"fuel"`
	LightUpkeep float64    `json:"light_upkeep"`
	Tiles       []CityTile `json:"tiles"`
}
