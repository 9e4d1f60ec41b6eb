package game

import "war/meta"

type StandardRules struct {
	Sides int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides: meta.DIE_SIDES,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

func (sr *StandardRules) IsAttackSuccessful(attackerRoll, defenderRoll int) bool {
	// Ties go to the defender
	return attackerRoll > defenderRoll
}

func (sr *StandardRules) ConquestTroops(attackerTroops int) int {
	// The attacker keeps its own troops, the conquered territory gets half of them
	return attackerTroops / 2
}

func (sr *StandardRules) RepulseLosses() int {
	return 1
}
