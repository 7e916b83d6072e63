package game

// Cell is one square of the board.
type Cell struct {
	Pos      Position  `json:"pos"`
	Resource *Resource `json:"resource,omitempty"`
	CityTile *CityTile `json:"city_tile,omitempty"`
	Road     float64   `json:"road"`
}

// HasResource reports whether the cell holds a non-empty deposit.
func (c *Cell) HasResource() bool {
	return c.Resource != nil && c.Resource.Amount > 0
}

// Map is the board for one turn, stored row-major.
type Map struct {
	Width  int
	Height int
	cells  []Cell
}

// NewMap creates an empty board.
func NewMap(width, height int) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.cells[y*width+x].Pos = Position{X: x, Y: y}
		}
	}
	return m
}

// InBounds reports whether pos lies on the board.
func (m *Map) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < m.Width && pos.Y < m.Height
}

// Cell returns the cell at pos, or nil when pos is off the board.
func (m *Map) Cell(pos Position) *Cell {
	if !m.InBounds(pos) {
		return nil
	}
	return &m.cells[pos.Y*m.Width+pos.X]
}

// Cells returns every cell in row-major order.
func (m *Map) Cells() []Cell {
	return m.cells
}
