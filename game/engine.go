package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"luxbot/core"
)

// TurnReport summarises one decided turn.
type TurnReport struct {
	Turn              int      `json:"turn"`
	Day               bool     `json:"day"`
	TurnsUntilNight   *int     `json:"turns_until_night,omitempty"`
	Workers           int      `json:"workers"`
	Carts             int      `json:"carts"`
	CityTiles         int      `json:"city_tiles"`
	ResearchPoints    int      `json:"research_points"`
	EligibleResources int      `json:"eligible_resources"`
	Actions           []string `json:"actions"`
}

// Engine runs the per-turn decision pipeline.
type Engine struct {
	env      core.EnvironmentInterface
	state    *GameState
	eligible []Cell
	logger   zerolog.Logger

	filter    EligibilityFilter
	workers   *WorkerPolicy
	carts     CartPolicy
	cityTiles *CityTilePolicy
}

// NewEngine creates a new Engine.
func NewEngine(env core.EnvironmentInterface, state *GameState, cfg core.AgentConfig, logger zerolog.Logger) *Engine {
	return &Engine{
		env:       env,
		state:     state,
		logger:    logger.With().Str("component", "engine").Logger(),
		filter:    EligibilityFilter{WoodMinAmount: cfg.WoodMinAmount},
		workers:   &WorkerPolicy{CityBuildCost: cfg.CityBuildCost},
		carts:     IdleCartPolicy{},
		cityTiles: NewCityTilePolicy(cfg.Admission),
	}
}

// SetCartPolicy replaces the cart strategy.
func (e *Engine) SetCartPolicy(p CartPolicy) {
	e.carts = p
}

// State returns the current snapshot.
func (e *Engine) State() *GameState {
	return e.state
}

// Turn reads the next update, decides every actor and submits the actions.
// Update errors abort the turn before anything is decided.
func (e *Engine) Turn() (*TurnReport, error) {
	update, err := e.env.ReadUpdate()
	if err != nil {
		return nil, err
	}
	if err := e.state.Apply(update); err != nil {
		return nil, err
	}

	player := e.state.Player()
	e.eligible = e.filter.Rebuild(e.state.Map, player)
	tc := &TurnContext{State: e.state, Player: player, Eligible: e.eligible}

	var actions []Action
	workers, carts := player.Workers(), player.Carts()
	for _, worker := range workers {
		if !worker.CanAct() {
			continue
		}
		if action := e.workers.Decide(tc, worker); action != nil {
			actions = append(actions, action)
		}
	}
	for _, cart := range carts {
		if !cart.CanAct() {
			continue
		}
		if action := e.carts.Decide(tc, cart); action != nil {
			actions = append(actions, action)
		}
	}
	e.cityTiles.Begin(player)
	for _, tile := range player.CityTiles() {
		if !tile.CanAct() {
			continue
		}
		if action := e.cityTiles.Decide(tc, tile); action != nil {
			actions = append(actions, action)
		}
	}

	report := e.report(player, workers, carts, actions)
	for _, cmd := range report.Actions {
		e.env.WriteAction(cmd)
	}
	if err := e.env.FlushActions(); err != nil {
		return nil, err
	}
	if err := e.env.Finish(); err != nil {
		return nil, err
	}
	if err := e.env.Flush(); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("turn", report.Turn).
		Bool("day", report.Day).
		Int("eligible", report.EligibleResources).
		Strs("actions", report.Actions).
		Msg("turn submitted")
	return report, nil
}

func (e *Engine) report(player *Player, workers, carts []Unit, actions []Action) *TurnReport {
	report := &TurnReport{
		Turn:              e.state.Turn,
		Day:               e.state.IsDay(),
		Workers:           len(workers),
		Carts:             len(carts),
		CityTiles:         player.CityTileCount,
		ResearchPoints:    player.ResearchPoints,
		EligibleResources: len(e.eligible),
		Actions:           make([]string, 0, len(actions)),
	}
	if n, ok := e.state.TurnsUntilNight(); ok {
		report.TurnsUntilNight = &n
	}
	for _, a := range actions {
		report.Actions = append(report.Actions, a.String())
	}
	return report
}

func (r *TurnReport) String() string {
	return fmt.Sprintf("turn %d: %d actions", r.Turn, len(r.Actions))
}
