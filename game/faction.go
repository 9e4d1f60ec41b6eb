package game

import (
	"fmt"
	"war/meta"
)

// Faction is the label of the side controlling a territory. Two factions are
// the same only if their labels are byte-for-byte equal.
type Faction string

const (
	Azul     Faction = "azul"
	Vermelha Faction = "vermelha"
	Verde    Faction = "verde"
)

func ParseFaction(label string) (Faction, error) {
	if label == "" {
		return "", fmt.Errorf("%w: empty label", ErrInvalidFaction)
	}
	if len(label) > meta.MAX_FACTION_LENGTH {
		return "", fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidFaction, label, meta.MAX_FACTION_LENGTH)
	}
	return Faction(label), nil
}

func (f Faction) String() string {
	return string(f)
}
