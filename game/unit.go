package game

// UnitType distinguishes workers from carts.
type UnitType int

const (
	WorkerUnit UnitType = iota
	CartUnit
)

// Cargo capacities per unit type.
const (
	WorkerCapacity = 100
	CartCapacity   = 2000
)

func (t UnitType) String() string {
	if t == CartUnit {
		return "cart"
	}
	return "worker"
}

// Unit is a worker or cart as seen this turn.
type Unit struct {
	ID       string   `json:"id"`
	Team     int      `json:"team"`
	Type     UnitType `json:"type"`
	Pos      Position `json:"pos"`
	Cooldown float64  `json:"cooldown"`
	Cargo    Cargo    `json:"cargo"`
}

// IsWorker reports whether the unit is a worker.
func (u Unit) IsWorker() bool { return u.Type == WorkerUnit }

// IsCart reports whether the unit is a cart.
func (u Unit) IsCart() bool { return u.Type == CartUnit }

// CanAct reports whether the unit may receive an action this turn.
func (u Unit) CanAct() bool { return u.Cooldown < 1 }

// Capacity returns the unit's cargo limit.
func (u Unit) Capacity() int {
	if u.IsCart() {
		return CartCapacity
	}
	return WorkerCapacity
}

// CargoSpaceUsed returns how much the unit carries.
func (u Unit) CargoSpaceUsed() int { return u.Cargo.Total() }

// CargoSpaceLeft returns the free cargo capacity.
func (u Unit) CargoSpaceLeft() int { return u.Capacity() - u.CargoSpaceUsed() }

// CanBuild reports whether the unit could found a city where it stands.
func (u Unit) CanBuild(m *Map, cost int) bool {
	cell := m.Cell(u.Pos)
	if cell == nil {
		return false
	}
	return cell.Resource == nil && cell.CityTile == nil && u.CargoSpaceUsed() >= cost
}

// Move returns an action stepping the unit in dir.
func (u Unit) Move(dir Direction) Action {
	return &MoveAction{UnitID: u.ID, Dir: dir}
}

// BuildCity returns an action founding a city on the unit's cell.
func (u Unit) BuildCity() Action {
	return &BuildCityAction{UnitID: u.ID}
}
