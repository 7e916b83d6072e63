package game

// Player is one team's units, cities and research for the turn.
type Player struct {
	Team           int
	ResearchPoints int
	Units          []Unit
	CityTileCount  int

	cities    map[string]*City
	cityOrder []string
}

// NewPlayer creates a new Player.
func NewPlayer(team int) *Player {
	return &Player{
		Team:   team,
		cities: make(map[string]*City),
	}
}

// IsResearched reports whether rt may be harvested.
func (p *Player) IsResearched(rt ResourceType) bool {
	switch rt {
	case Coal:
		return p.ResearchPoints >= CoalResearchPoints
	case Uranium:
		return p.ResearchPoints >= UraniumResearchPoints
	default:
		return true
	}
}

// City looks up a city by id.
func (p *Player) City(id string) (*City, bool) {
	c, ok := p.cities[id]
	return c, ok
}

// Cities returns the player's cities in the order they were announced.
func (p *Player) Cities() []*City {
	cities := make([]*City, 0, len(p.cityOrder))
	for _, id := range p.cityOrder {
		cities = append(cities, p.cities[id])
	}
	return cities
}

// CityTiles returns every tile of every city, city by city.
func (p *Player) CityTiles() []CityTile {
	var tiles []CityTile
	for _, city := range p.Cities() {
		tiles = append(tiles, city.Tiles...)
	}
	return tiles
}

// Workers returns the player's workers in announcement order.
func (p *Player) Workers() []Unit {
	return p.unitsOfType(WorkerUnit)
}

// Carts returns the player's carts in announcement order.
func (p *Player) Carts() []Unit {
	return p.unitsOfType(CartUnit)
}

func (p *Player) unitsOfType(t UnitType) []Unit {
	var units []Unit
	for _, u := range p.Units {
		if u.Type == t {
			units = append(units, u)
		}
	}
	return units
}

func (p *Player) addCity(c *City) {
	if _, ok := p.cities[c.ID]; !ok {
		p.cityOrder = append(p.cityOrder, c.ID)
	}
	p.cities[c.ID] = c
}
