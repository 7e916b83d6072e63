package game

// EligibilityFilter decides which resource cells workers may target.
type EligibilityFilter struct {
	// WoodMinAmount is the exclusive lower bound for wood deposits.
	WoodMinAmount int
}

// IsEligible reports whether r is a legal harvest target for p.
func (f EligibilityFilter) IsEligible(p *Player, r *Resource) bool {
	if !p.IsResearched(r.Type) {
		return false
	}
	switch r.Type {
	case Wood:
		return r.Amount > f.WoodMinAmount
	case Coal, Uranium:
		return true
	default:
		return false
	}
}

// Rebuild scans the whole board row by row and returns copies of the
// qualifying cells in scan order. The result never shares memory with a
// previous call.
func (f EligibilityFilter) Rebuild(m *Map, p *Player) []Cell {
	eligible := make([]Cell, 0)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := m.Cell(Position{X: x, Y: y})
			if cell.Resource != nil && f.IsEligible(p, cell.Resource) {
				eligible = append(eligible, *cell)
			}
		}
	}
	return eligible
}
