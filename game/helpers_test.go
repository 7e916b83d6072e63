package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"luxbot/core"
)

type updateBuilder struct {
	u core.Update
}

func newUpdate() *updateBuilder {
	return &updateBuilder{}
}

func (b *updateBuilder) research(team, points int) *updateBuilder {
	b.u.Research = append(b.u.Research, core.ResearchRecord{Team: team, Points: points})
	return b
}

func (b *updateBuilder) resource(kind string, x, y, amount int) *updateBuilder {
	b.u.Resources = append(b.u.Resources, core.ResourceRecord{Type: kind, X: x, Y: y, Amount: amount})
	return b
}

func (b *updateBuilder) worker(team int, id string, x, y int, cooldown float64, wood int) *updateBuilder {
	b.u.Units = append(b.u.Units, core.UnitRecord{Type: int(WorkerUnit), Team: team, ID: id, X: x, Y: y, Cooldown: cooldown, Wood: wood})
	return b
}

func (b *updateBuilder) cart(team int, id string, x, y int) *updateBuilder {
	b.u.Units = append(b.u.Units, core.UnitRecord{Type: int(CartUnit), Team: team, ID: id, X: x, Y: y})
	return b
}

func (b *updateBuilder) city(team int, id string) *updateBuilder {
	b.u.Cities = append(b.u.Cities, core.CityRecord{Team: team, ID: id, Fuel: 100, LightUpkeep: 23})
	return b
}

func (b *updateBuilder) cityTile(team int, cityID string, x, y int, cooldown float64) *updateBuilder {
	b.u.CityTiles = append(b.u.CityTiles, core.CityTileRecord{Team: team, CityID: cityID, X: x, Y: y, Cooldown: cooldown})
	return b
}

func (b *updateBuilder) build() *core.Update {
	u := b.u
	return &u
}

func newTestState(t *testing.T, width, height int) *GameState {
	t.Helper()
	state, err := NewGameState(&core.Init{Team: 0, Width: width, Height: height}, 30, 40)
	require.NoError(t, err)
	return state
}

func stateWith(t *testing.T, width, height int, b *updateBuilder) *GameState {
	t.Helper()
	state := newTestState(t, width, height)
	require.NoError(t, state.Apply(b.build()))
	return state
}

func testAgentConfig() core.AgentConfig {
	return core.DefaultConfig().Agent
}

func newTestEngine(t *testing.T, width, height int, cfg core.AgentConfig, updates ...*core.Update) (*Engine, *MockEnvironment) {
	t.Helper()
	env := NewMockEnvironment(updates...)
	return NewEngine(env, newTestState(t, width, height), cfg, zerolog.Nop()), env
}

// contextFor builds the view the engine hands to policies.
func contextFor(state *GameState, cfg core.AgentConfig) *TurnContext {
	player := state.Player()
	filter := EligibilityFilter{WoodMinAmount: cfg.WoodMinAmount}
	return &TurnContext{State: state, Player: player, Eligible: filter.Rebuild(state.Map, player)}
}
