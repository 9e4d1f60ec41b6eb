package game

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Resolver applies single attacks to territories of a board.
type Resolver struct {
	rules  Rules
	dice   Dice
	logger zerolog.Logger
}

func NewResolver(rules Rules, dice Dice) *Resolver {
	return &Resolver{
		rules:  rules,
		dice:   dice,
		logger: log.With().Str("component", "resolver").Logger(),
	}
}

// WithLogger returns a copy of the resolver logging through logger.
func (r *Resolver) WithLogger(logger zerolog.Logger) *Resolver {
	return &Resolver{
		rules:  r.rules,
		dice:   r.dice,
		logger: logger.With().Str("component", "resolver").Logger(),
	}
}

// Attack resolves one attack and mutates the territories in place. An attack on
// a territory of the attacker's own faction is rejected without rolling.
func (r *Resolver) Attack(attacker, defender *Territory) Outcome {
	if attacker.Faction == defender.Faction {
		r.logger.Debug().
			Str("attacker", attacker.Name).
			Str("defender", defender.Name).
			Msg("rejected attack on own faction")
		return Outcome{
			Result:   Rejected,
			Attacker: *attacker,
			Defender: *defender,
		}
	}

	attackerRoll := r.dice.Roll()
	defenderRoll := r.dice.Roll()

	result := Repulse
	if r.rules.IsAttackSuccessful(attackerRoll, defenderRoll) {
		result = Conquest
		defender.Faction = attacker.Faction
		defender.Troops = r.rules.ConquestTroops(attacker.Troops)
	} else {
		attacker.Troops = max(attacker.Troops-r.rules.RepulseLosses(), 0)
	}

	r.logger.Debug().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Int("attacker_roll", attackerRoll).
		Int("defender_roll", defenderRoll).
		Stringer("result", result).
		Msg("resolved attack")

	return Outcome{
		Result:       result,
		AttackerRoll: attackerRoll,
		DefenderRoll: defenderRoll,
		Attacker:     *attacker,
		Defender:     *defender,
	}
}
