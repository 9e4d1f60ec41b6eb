package game

import (
	"fmt"
	"war/meta"
)

// Territory is a named board cell with a controlling faction and a troop count.
type Territory struct {
	Name    string  // Unique within a board
	Faction Faction // Controlling faction, never empty
	Troops  int     // Never negative
}

// NewTerritory validates the fields and returns the territory.
func NewTerritory(name string, faction Faction, troops int) (Territory, error) {
	t := Territory{Name: name, Faction: faction, Troops: troops}
	if err := t.validate(); err != nil {
		return Territory{}, err
	}
	return t, nil
}

func (t Territory) validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTerritory)
	}
	if len(t.Name) > meta.MAX_NAME_LENGTH {
		return fmt.Errorf("%w: name %q is longer than %d characters", ErrInvalidTerritory, t.Name, meta.MAX_NAME_LENGTH)
	}
	if _, err := ParseFaction(string(t.Faction)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTerritory, t.Name, err)
	}
	if t.Troops < 0 {
		return fmt.Errorf("%w: %s has %d troops", ErrInvalidTerritory, t.Name, t.Troops)
	}
	return nil
}

func (t Territory) String() string {
	return fmt.Sprintf("%s (%s, %d)", t.Name, t.Faction, t.Troops)
}
