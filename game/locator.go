package game

import "math"

// ClosestCityTile returns the player's city tile nearest to pos. Only a
// strictly shorter distance replaces the current best, so the first tile
// met wins ties.
func ClosestCityTile(p *Player, pos Position) (CityTile, bool) {
	var best CityTile
	found := false
	bestDist := math.MaxFloat64
	for _, city := range p.Cities() {
		for _, tile := range city.Tiles {
			if d := tile.Pos.DistanceTo(pos); d < bestDist {
				best, bestDist, found = tile, d, true
			}
		}
	}
	return best, found
}

// ClosestCell returns the cell in cells nearest to pos, first one on ties.
func ClosestCell(cells []Cell, pos Position) (Cell, bool) {
	var best Cell
	found := false
	bestDist := math.MaxFloat64
	for _, cell := range cells {
		if d := cell.Pos.DistanceTo(pos); d < bestDist {
			best, bestDist, found = cell, d, true
		}
	}
	return best, found
}

// adjacentOrder is the order in which neighbours of a city tile are tried.
var adjacentOrder = []Direction{North, South, East, West}

// EmptyCellAdjacentTo returns the first on-board neighbour of pos holding
// neither a city tile nor a resource.
func EmptyCellAdjacentTo(m *Map, pos Position) (Cell, bool) {
	for _, dir := range adjacentOrder {
		cell := m.Cell(pos.Translate(dir, 1))
		if cell == nil {
			continue
		}
		if cell.CityTile == nil && !cell.HasResource() {
			return *cell, true
		}
	}
	return Cell{}, false
}
