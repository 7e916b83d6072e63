package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"luxbot/core"
	"luxbot/game"
	"luxbot/web"
)

// Bot represents the main agent application.
type Bot struct {
	Engine        *game.Engine
	ConfigManager *core.ConfigManager
	hub           *web.Hub
	logger        zerolog.Logger
	lastReport    *game.TurnReport
	lock          sync.Mutex
}

// NewBot reads the match header from the game and creates a new Bot.
func NewBot(cm *core.ConfigManager, r io.Reader, w io.Writer, logger zerolog.Logger) (*Bot, error) {
	env := core.NewEnvironment(r, w)
	header, err := env.ReadInit()
	if err != nil {
		return nil, fmt.Errorf("failed to read match header: %w", err)
	}
	return NewBotWithDeps(cm, env, header, logger)
}

// NewBotWithDeps creates a new Bot with dependencies.
func NewBotWithDeps(cm *core.ConfigManager, env core.EnvironmentInterface, header *core.Init, logger zerolog.Logger) (*Bot, error) {
	agent := cm.GetConfig().Agent
	state, err := game.NewGameState(header, agent.DayLength, agent.CycleLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}
	logger.Info().
		Int("team", header.Team).
		Int("width", header.Width).
		Int("height", header.Height).
		Str("admission", agent.Admission).
		Msg("match started")

	return &Bot{
		Engine:        game.NewEngine(env, state, agent, logger),
		ConfigManager: cm,
		logger:        logger,
	}, nil
}

// SetHub attaches the status hub notified after every turn.
func (b *Bot) SetHub(hub *web.Hub) {
	b.hub = hub
}

// Run plays turns until the game closes the stream. Any other error ends
// the loop and is returned.
func (b *Bot) Run() error {
	for {
		report, err := b.Engine.Turn()
		if err != nil {
			if errors.Is(err, io.EOF) {
				b.logger.Info().Msg("match finished")
				return nil
			}
			return fmt.Errorf("turn %d: %w", b.Engine.State().Turn+1, err)
		}

		b.lock.Lock()
		b.lastReport = report
		b.lock.Unlock()

		event := b.logger.Info().Int("turn", report.Turn).Int("actions", len(report.Actions))
		if report.TurnsUntilNight != nil {
			event = event.Int("turns_until_night", *report.TurnsUntilNight)
		} else {
			event = event.Bool("night", true)
		}
		event.Msg("turn done")

		b.hub.BroadcastFullState()
	}
}

// State returns the latest turn report as JSON.
func (b *Bot) State() ([]byte, error) {
	return json.Marshal(b.LastReport())
}

// LastReport returns the latest turn report, or nil before the first turn.
func (b *Bot) LastReport() *game.TurnReport {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.lastReport
}
