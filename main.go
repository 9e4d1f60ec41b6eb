package main

import (
	"flag"
	"os"
	"time"
	"war/config"
	"war/engine"
	"war/game"
	"war/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Uint64("seed", 0, "Random seed (0 to use config, then the clock)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg := config.Get()

	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	setupLogging(level, cfg.Log.Format)

	if *seed == 0 {
		*seed = cfg.Game.Seed
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", *seed).Msg("starting game")

	board, err := cfg.Game.Board()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board")
	}

	e, err := engine.New(board, cfg.Game.Catalog(), cfg.Game.Players, game.NewSource(*seed),
		engine.WithCollector(metrics.NewCollector()),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	logBoard("initial board", board)

	// Single attack turn: the first territory attacks the second
	outcome, err := e.Attack(0, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("attack failed")
	}
	switch outcome.Result {
	case game.Rejected:
		log.Warn().Msgf("%s cannot attack its own faction", outcome.Attacker.Name)
	case game.Conquest:
		log.Info().Msgf("victory! %s conquered %s (%d x %d)", outcome.Attacker.Name, outcome.Defender.Name, outcome.AttackerRoll, outcome.DefenderRoll)
	case game.Repulse:
		log.Info().Msgf("defeat! %s lost a troop (%d x %d)", outcome.Attacker.Name, outcome.AttackerRoll, outcome.DefenderRoll)
	}

	logBoard("board after attack", board)

	if winner := e.Winner(); winner != "" {
		log.Info().Msgf("%s accomplished their mission and won!", winner)
	} else {
		log.Info().Msg("no player accomplished their mission yet")
	}

	m := e.Metrics()
	log.Info().Int("attacks", m.Attacks).Int("conquests", m.Conquests).Int("repulses", m.Repulses).Dur("duration", m.Duration).Msg("game summary")
}

func logBoard(title string, board *game.Board) {
	log.Info().Msg(title)
	for _, t := range board.All() {
		log.Info().Msgf("%-12s | %-8s | %d", t.Name, t.Faction, t.Troops)
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
