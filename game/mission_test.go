package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateConsecutiveRun(t *testing.T) {
	mission := NewConsecutiveRun(3)

	tests := []struct {
		name     string
		factions []Faction
		expected bool
	}{
		{"run at the start", []Faction{Azul, Azul, Azul, Verde, Vermelha}, true},
		{"run at the end", []Faction{Verde, Vermelha, Azul, Azul, Azul}, true},
		{"alternating factions", []Faction{Azul, Verde, Azul, Verde, Azul}, false},
		{"run of two only", []Faction{Azul, Azul, Verde, Verde, Azul}, false},
		{"same faction split by another", []Faction{Azul, Azul, Verde, Azul, Azul}, false},
		{"whole board", []Faction{Verde, Verde, Verde, Verde, Verde}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Evaluate(mission, newBoard(t, tt.factions...)))
		})
	}

	t.Run("empty board", func(t *testing.T) {
		require.False(t, Evaluate(mission, newBoard(t)))
	})

	t.Run("lengths below one are raised to one", func(t *testing.T) {
		require.Equal(t, 1, NewConsecutiveRun(0).Length)
		require.Equal(t, 1, NewConsecutiveRun(-4).Length)
		require.True(t, Evaluate(NewConsecutiveRun(0), newBoard(t, Azul)))
		require.False(t, Evaluate(NewConsecutiveRun(0), newBoard(t)))
		require.False(t, Evaluate(Mission{Kind: ConsecutiveRun, Length: 0}, newBoard(t)), "Empty board never holds a run")
	})

	t.Run("length is configurable", func(t *testing.T) {
		b := newBoard(t, Azul, Azul, Verde, Vermelha)
		require.True(t, Evaluate(NewConsecutiveRun(2), b))
		require.False(t, Evaluate(NewConsecutiveRun(3), b))
	})
}

func TestEvaluateEliminateFaction(t *testing.T) {
	mission := NewEliminateFaction(Vermelha)

	t.Run("faction still present", func(t *testing.T) {
		require.False(t, Evaluate(mission, newBoard(t, Azul, Vermelha, Verde)))
	})

	t.Run("faction eliminated", func(t *testing.T) {
		b := newBoard(t, Azul, Vermelha, Verde)
		b.Get(1).Faction = Azul
		require.True(t, Evaluate(mission, b))
	})

	t.Run("faction never on the board", func(t *testing.T) {
		require.True(t, Evaluate(mission, newBoard(t, Azul, Verde, Azul)))
	})

	t.Run("exact label match", func(t *testing.T) {
		require.True(t, Evaluate(mission, newBoard(t, "Vermelha", "vermelho")))
	})
}

func TestEvaluateControlShare(t *testing.T) {
	mission := NewControlShare(50)

	require.False(t, Evaluate(mission, newBoard(t, Azul, Vermelha, Vermelha, Azul, Verde)), "2 of 5 is less than half")
	require.True(t, Evaluate(mission, newBoard(t, Azul, Azul, Vermelha, Azul, Verde)), "3 of 5 is more than half")
	require.True(t, Evaluate(mission, newBoard(t, Azul, Verde, Azul, Verde)), "2 of 4 is exactly half")
	require.False(t, Evaluate(mission, newBoard(t)))
}

func TestEvaluateHoldGarrisons(t *testing.T) {
	mission := NewHoldGarrisons(2, 5)
	b := newBoard(t, Azul, Azul, Vermelha)

	b.Get(0).Troops = 6
	b.Get(1).Troops = 5
	require.False(t, Evaluate(mission, b), "Five troops is not more than five")

	b.Get(1).Troops = 6
	require.True(t, Evaluate(mission, b))

	b.Get(1).Faction = Vermelha
	require.False(t, Evaluate(mission, b), "Garrisons must belong to one faction")
}

func TestEvaluateHoldGarrisonsCount(t *testing.T) {
	t.Run("zero garrisons always hold", func(t *testing.T) {
		b := newBoard(t, Azul, Vermelha)
		require.True(t, Evaluate(Mission{Kind: HoldGarrisons, Count: 0, MinTroops: 100}, b))
		require.True(t, Evaluate(Mission{Kind: HoldGarrisons, Count: -3, MinTroops: 100}, b))
		require.True(t, Evaluate(Mission{Kind: HoldGarrisons, Count: 0, MinTroops: 0}, b))
	})

	t.Run("negative arguments are raised to zero", func(t *testing.T) {
		m := NewHoldGarrisons(-3, -1)
		require.Equal(t, 0, m.Count)
		require.Equal(t, 0, m.MinTroops)
	})
}

func TestEvaluateUnknownKind(t *testing.T) {
	b := newBoard(t, Azul, Azul, Azul)
	require.False(t, Evaluate(Mission{Kind: MissionKind(42), Length: 1}, b))
	require.False(t, Evaluate(Mission{Kind: -1}, b))
}

func TestParseMissionKind(t *testing.T) {
	for kind, name := range missionKindNames {
		got, ok := ParseMissionKind(name)
		require.True(t, ok)
		require.Equal(t, kind, got)
		require.Equal(t, name, kind.String())
	}

	_, ok := ParseMissionKind("dominate_everything")
	require.False(t, ok)
}

func TestAssignMission(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		_, err := AssignMission(Catalog{}, NewSource(1))
		require.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("uniform draw", func(t *testing.T) {
		catalog := DefaultCatalog()
		src := NewSource(2024)
		const draws = 50000

		counts := make(map[string]int)
		for i := 0; i < draws; i++ {
			m, err := AssignMission(catalog, src)
			require.NoError(t, err)
			counts[m.Description]++
		}

		require.Len(t, counts, len(catalog))
		expected := float64(draws) / float64(len(catalog))
		for description, n := range counts {
			require.InDelta(t, expected, float64(n), expected*0.05, "%q drawn %d times", description, n)
		}
	})

	t.Run("players may draw the same mission", func(t *testing.T) {
		catalog := Catalog{NewConsecutiveRun(3)}
		src := NewSource(3)

		first, err := AssignMission(catalog, src)
		require.NoError(t, err)
		second, err := AssignMission(catalog, src)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog, 5)
	require.Equal(t, ConsecutiveRun, catalog[0].Kind)
	require.Equal(t, 3, catalog[0].Length)
	require.Equal(t, Vermelha, catalog[1].Faction)
	require.Equal(t, Azul, catalog[2].Faction)
	require.Equal(t, 50, catalog[3].Percent)
	require.Equal(t, HoldGarrisons, catalog[4].Kind)
}

func TestAttackThenEvaluate(t *testing.T) {
	b, err := NewBoard(southAmerica())
	require.NoError(t, err)
	resolver := NewResolver(NewStandardRules(), NewScriptedDice(5, 2))
	run := NewConsecutiveRun(3)
	require.False(t, Evaluate(run, b))

	outcome := resolver.Attack(b.Get(0), b.Get(1))

	require.Equal(t, Conquest, outcome.Result)
	require.Equal(t, Territory{Name: "Brasil", Faction: Azul, Troops: 4}, *b.Get(0))
	require.Equal(t, Territory{Name: "Argentina", Faction: Azul, Troops: 2}, *b.Get(1))
	require.Equal(t, 2, longestRun(b), "Brasil and Argentina now form a run of two")
	require.False(t, Evaluate(run, b))
	require.False(t, Evaluate(NewEliminateFaction(Vermelha), b), "Chile is still vermelha")
}
