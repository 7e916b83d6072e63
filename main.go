package main

import (
	"flag"
	"fmt"
	"os"

	"luxbot/core"
	"luxbot/game"
	"luxbot/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	writeConfig := flag.Bool("write-config", false, "write the effective config back to -config and exit")
	dryRun := flag.Bool("dry-run", false, "play a scripted match against a mock environment")
	dryTurns := flag.Int("dry-run-turns", 40, "number of turns in the scripted match")
	flag.Parse()

	cm, err := core.NewConfigManager(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *writeConfig {
		if err := cm.SaveConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config := cm.GetConfig()
	logger := core.NewLogger(config.Logging)

	var bot *Bot
	if *dryRun {
		logger.Info().Int("turns", *dryTurns).Msg("running in dry-run mode")
		env := game.NewMockEnvironment(game.DemoUpdates(*dryTurns)...)
		bot, err = NewBotWithDeps(cm, env, game.DemoInit(), logger)
	} else {
		bot, err = NewBot(cm, os.Stdin, os.Stdout, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	if config.Web.Enabled {
		hub := web.NewHub(bot, logger)
		go hub.Run()
		bot.SetHub(hub)
		server := web.NewServer(hub, bot, logger)
		go func() {
			if err := server.ListenAndServe(config.Web.Host, config.Web.Port); err != nil {
				logger.Error().Err(err).Msg("status server stopped")
			}
		}()
	}

	if err := bot.Run(); err != nil {
		logger.Fatal().Err(err).Msg("agent stopped")
	}
}
