package game

type Rules interface {
	DieSides() int
	IsAttackSuccessful(attackerRoll, defenderRoll int) bool
	// ConquestTroops is the garrison left on a conquered territory.
	ConquestTroops(attackerTroops int) int
	RepulseLosses() int
}
