package game

import (
	"fmt"
	"war/meta"
)

// MissionKind selects the matcher a mission is evaluated with.
type MissionKind int

const (
	ConsecutiveRun   MissionKind = iota // Length territories in a row with one faction
	EliminateFaction                    // No territory left with Faction
	ControlShare                        // One faction holds at least Percent% of the board
	HoldGarrisons                       // One faction holds Count territories with more than MinTroops
)

var missionKindNames = map[MissionKind]string{
	ConsecutiveRun:   "consecutive_run",
	EliminateFaction: "eliminate_faction",
	ControlShare:     "control_share",
	HoldGarrisons:    "hold_garrisons",
}

func (k MissionKind) String() string {
	if name, ok := missionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseMissionKind maps a configuration name to its kind.
func ParseMissionKind(name string) (MissionKind, bool) {
	for kind, n := range missionKindNames {
		if n == name {
			return kind, true
		}
	}
	return -1, false
}

// Mission is a victory condition. Only the fields of its Kind are meaningful;
// Description is display text and is never parsed.
type Mission struct {
	Kind        MissionKind
	Description string
	Length      int
	Faction     Faction
	Percent     int
	Count       int
	MinTroops   int
}

// NewConsecutiveRun asks for a run of length territories; lengths below one
// are raised to one.
func NewConsecutiveRun(length int) Mission {
	length = max(length, 1)
	return Mission{
		Kind:        ConsecutiveRun,
		Description: fmt.Sprintf("Conquer %d territories in a row", length),
		Length:      length,
	}
}

func NewEliminateFaction(f Faction) Mission {
	return Mission{
		Kind:        EliminateFaction,
		Description: fmt.Sprintf("Eliminate every %s territory", f),
		Faction:     f,
	}
}

func NewControlShare(percent int) Mission {
	return Mission{
		Kind:        ControlShare,
		Description: fmt.Sprintf("Control %d%% of the map", percent),
		Percent:     percent,
	}
}

// NewHoldGarrisons asks for count territories with more than minTroops each.
// Negative arguments are raised to zero.
func NewHoldGarrisons(count, minTroops int) Mission {
	count, minTroops = max(count, 0), max(minTroops, 0)
	return Mission{
		Kind:        HoldGarrisons,
		Description: fmt.Sprintf("Hold %d territories with more than %d troops", count, minTroops),
		Count:       count,
		MinTroops:   minTroops,
	}
}

func (m Mission) String() string {
	if m.Description != "" {
		return m.Description
	}
	return m.Kind.String()
}

// Evaluate reports whether the mission is accomplished on the current board.
// Unknown kinds are never accomplished.
func Evaluate(m Mission, b *Board) bool {
	switch m.Kind {
	case ConsecutiveRun:
		// A run needs at least one territory, so an empty board never holds one
		return longestRun(b) >= max(m.Length, 1)
	case EliminateFaction:
		return b.Count(m.Faction) == 0
	case ControlShare:
		return controlsShare(b, m.Percent)
	case HoldGarrisons:
		return holdsGarrisons(b, m.Count, m.MinTroops)
	default:
		return false
	}
}

// longestRun returns the longest sequence of index-adjacent territories that
// share a faction.
func longestRun(b *Board) int {
	if b.Len() == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < b.Len(); i++ {
		if b.Get(i).Faction == b.Get(i-1).Faction {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}

func controlsShare(b *Board, percent int) bool {
	if b.Len() == 0 {
		return false
	}
	owned := make(map[Faction]int)
	for _, t := range b.All() {
		owned[t.Faction]++
	}
	for _, n := range owned {
		if n*100 >= percent*b.Len() {
			return true
		}
	}
	return false
}

func holdsGarrisons(b *Board, count, minTroops int) bool {
	if count <= 0 {
		return true
	}
	held := make(map[Faction]int)
	for _, t := range b.All() {
		if t.Troops > minTroops {
			held[t.Faction]++
		}
	}
	for _, n := range held {
		if n >= count {
			return true
		}
	}
	return false
}

// Catalog is the set of missions players draw from.
type Catalog []Mission

// AssignMission draws one mission uniformly at random. Draws are independent,
// so two players may get the same mission.
func AssignMission(c Catalog, src Source) (Mission, error) {
	if len(c) == 0 {
		return Mission{}, ErrEmptyCatalog
	}
	return c[src.Intn(len(c))], nil
}

// DefaultCatalog returns the five classic missions.
func DefaultCatalog() Catalog {
	run := NewConsecutiveRun(meta.DEFAULT_RUN_LENGTH)
	run.Description = "Conquistar 3 territorios seguidos"

	red := NewEliminateFaction(Vermelha)
	red.Description = "Eliminar todas as tropas da cor vermelha"

	blue := NewEliminateFaction(Azul)
	blue.Description = "Dominar todos os territorios azuis"

	half := NewControlShare(50)
	half.Description = "Controlar metade do mapa"

	garrisons := NewHoldGarrisons(5, 5)
	garrisons.Description = "Manter 5 territorios com mais de 5 tropas"

	return Catalog{run, red, blue, half, garrisons}
}
