package game

import (
	"fmt"

	"luxbot/core"
)

// GameState is the world snapshot for the current turn.
type GameState struct {
	ID      int
	Turn    int
	Map     *Map
	Players [2]*Player

	dayLength   int
	cycleLength int
}

// NewGameState creates the state from the match header. Turn is -1 until
// the first update arrives.
func NewGameState(header *core.Init, dayLength, cycleLength int) (*GameState, error) {
	if header.Team != 0 && header.Team != 1 {
		return nil, fmt.Errorf("%w: team id %d", core.ErrProtocol, header.Team)
	}
	return &GameState{
		ID:          header.Team,
		Turn:        -1,
		Map:         NewMap(header.Width, header.Height),
		Players:     [2]*Player{NewPlayer(0), NewPlayer(1)},
		dayLength:   dayLength,
		cycleLength: cycleLength,
	}, nil
}

// Player returns our player.
func (s *GameState) Player() *Player {
	return s.Players[s.ID]
}

// Opponent returns the other player.
func (s *GameState) Opponent() *Player {
	return s.Players[1-s.ID]
}

// Apply replaces the snapshot with the contents of u and advances the turn.
func (s *GameState) Apply(u *core.Update) error {
	m := NewMap(s.Map.Width, s.Map.Height)
	players := [2]*Player{NewPlayer(0), NewPlayer(1)}

	player := func(team int) (*Player, error) {
		if team != 0 && team != 1 {
			return nil, fmt.Errorf("%w: team id %d", core.ErrProtocol, team)
		}
		return players[team], nil
	}
	cell := func(x, y int) (*Cell, error) {
		c := m.Cell(Position{X: x, Y: y})
		if c == nil {
			return nil, fmt.Errorf("%w: position (%d, %d) off the board", core.ErrProtocol, x, y)
		}
		return c, nil
	}

	for _, r := range u.Research {
		p, err := player(r.Team)
		if err != nil {
			return err
		}
		p.ResearchPoints = r.Points
	}

	for _, r := range u.Resources {
		rt, err := ParseResourceType(r.Type)
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrProtocol, err)
		}
		c, err := cell(r.X, r.Y)
		if err != nil {
			return err
		}
		c.Resource = &Resource{Type: rt, Amount: r.Amount}
	}

	for _, r := range u.Units {
		p, err := player(r.Team)
		if err != nil {
			return err
		}
		if r.Type != int(WorkerUnit) && r.Type != int(CartUnit) {
			return fmt.Errorf("%w: unit type %d", core.ErrProtocol, r.Type)
		}
		p.Units = append(p.Units, Unit{
			ID:       r.ID,
			Team:     r.Team,
			Type:     UnitType(r.Type),
			Pos:      Position{X: r.X, Y: r.Y},
			Cooldown: r.Cooldown,
			Cargo:    Cargo{Wood: r.Wood, Coal: r.Coal, Uranium: r.Uranium},
		})
	}

	for _, r := range u.Cities {
		p, err := player(r.Team)
		if err != nil {
			return err
		}
		p.addCity(&City{ID: r.ID, Team: r.Team, Fuel: r.Fuel, LightUpkeep: r.LightUpkeep})
	}

	for _, r := range u.CityTiles {
		p, err := player(r.Team)
		if err != nil {
			return err
		}
		city, ok := p.City(r.CityID)
		if !ok {
			return fmt.Errorf("%w: city tile for unknown city %s", core.ErrProtocol, r.CityID)
		}
		c, err := cell(r.X, r.Y)
		if err != nil {
			return err
		}
		tile := CityTile{CityID: r.CityID, Team: r.Team, Pos: c.Pos, Cooldown: r.Cooldown}
		city.Tiles = append(city.Tiles, tile)
		c.CityTile = &tile
		p.CityTileCount++
	}

	for _, r := range u.Roads {
		c, err := cell(r.X, r.Y)
		if err != nil {
			return err
		}
		c.Road = r.Level
	}

	s.Map = m
	s.Players = players
	s.Turn++
	return nil
}

// IsDay reports whether the current turn falls in daylight.
func (s *GameState) IsDay() bool {
	return s.Turn%s.cycleLength < s.dayLength
}

// IsNight reports whether the current turn falls at night.
func (s *GameState) IsNight() bool {
	return !s.IsDay()
}

// TurnsUntilNight returns how many turns of daylight remain. The second
// result is false at night.
func (s *GameState) TurnsUntilNight() (int, bool) {
	if s.IsNight() {
		return 0, false
	}
	return s.dayLength - s.Turn%s.cycleLength, true
}
