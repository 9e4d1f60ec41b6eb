package engine

import (
	"fmt"
	"war/game"
	"war/meta"
	"war/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine runs a single game: it owns the board, the players and their
// missions, and resolves one attack at a time.
type Engine struct {
	ID    uuid.UUID
	Board *game.Board

	players   []Player
	rules     game.Rules
	dice      game.Dice
	resolver  *game.Resolver
	collector metrics.Collector
	logger    zerolog.Logger
	maxTurns  int
	turn      int
	winner    string
}

// New sets up a game on board and draws one mission per player from catalog,
// in seat order.
func New(board *game.Board, catalog game.Catalog, players []string, src game.Source, options ...Option) (*Engine, error) {
	if len(players) < meta.MIN_PLAYERS {
		return nil, ErrNotEnoughSeats
	}

	e := defaults(src)
	for _, option := range options {
		option(e)
	}
	e.ID = uuid.New()
	e.Board = board
	e.logger = e.logger.With().Str("component", "engine").Str("game_id", e.ID.String()).Logger()
	e.resolver = game.NewResolver(e.rules, e.dice).WithLogger(e.logger)

	for _, name := range players {
		mission, err := game.AssignMission(catalog, src)
		if err != nil {
			return nil, fmt.Errorf("assigning mission to %s: %w", name, err)
		}
		e.players = append(e.players, Player{Name: name, Mission: mission})
		e.logger.Info().Str("player", name).Stringer("mission", mission).Msg("mission assigned")
	}

	e.collector.Start()
	return e, nil
}

// Attack resolves an attack from the territory at index attacker on the one at
// index defender, then checks every player's mission. Indices out of range
// panic.
func (e *Engine) Attack(attacker, defender int) (game.Outcome, error) {
	if e.GameOver() {
		return game.Outcome{}, ErrGameOver
	}

	outcome := e.resolver.Attack(e.Board.Get(attacker), e.Board.Get(defender))
	e.collector.AddOutcome(outcome)
	e.turn++

	e.logger.Info().
		Int("turn", e.turn).
		Stringer("result", outcome.Result).
		Int("attacker_roll", outcome.AttackerRoll).
		Int("defender_roll", outcome.DefenderRoll).
		Stringer("attacker", outcome.Attacker).
		Stringer("defender", outcome.Defender).
		Msg("attack resolved")

	e.checkWinner()
	return outcome, nil
}

// checkWinner declares the first player, in seat order, whose mission holds.
func (e *Engine) checkWinner() {
	for _, status := range e.Status() {
		if status.Accomplished {
			e.winner = status.Name
			e.collector.SetWinner(status.Name)
			e.logger.Info().Int("turn", e.turn).Str("winner", status.Name).Msg("mission accomplished")
			return
		}
	}
}

// GameOver reports whether a winner exists or the turn limit was reached.
func (e *Engine) GameOver() bool {
	return e.winner != "" || e.turn >= e.maxTurns
}

// Winner returns the winning player's name, "" if no winner yet.
func (e *Engine) Winner() string {
	return e.winner
}

func (e *Engine) Turn() int {
	return e.turn
}

func (e *Engine) Players() []Player {
	players := make([]Player, len(e.players))
	copy(players, e.players)
	return players
}

// Status evaluates every player's mission against the current board.
func (e *Engine) Status() []Status {
	statuses := make([]Status, len(e.players))
	for i, p := range e.players {
		statuses[i] = Status{Player: p, Accomplished: game.Evaluate(p.Mission, e.Board)}
	}
	return statuses
}

func (e *Engine) Metrics() metrics.GameMetric {
	return e.collector.Complete()
}
