package engine

import (
	"errors"
	"war/game"
	"war/meta"
	"war/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver       = errors.New("game is over - no attacks allowed")
	ErrNotEnoughSeats = errors.New("need at least two players")
)

type Option func(e *Engine)

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithDice(dice game.Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Player holds the mission drawn for one seat.
type Player struct {
	Name    string
	Mission game.Mission
}

// Status reports whether a player's mission holds on the current board.
type Status struct {
	Player
	Accomplished bool
}

func defaults(src game.Source) *Engine {
	rules := game.NewStandardRules()
	return &Engine{
		rules:     rules,
		dice:      game.NewDice(src, rules.DieSides()),
		collector: metrics.NewDummyCollector(),
		logger:    log.Logger,
		maxTurns:  meta.MAX_TURNS,
	}
}
