package game

import (
	"fmt"
	"war/utils"
)

// Board is the ordered, fixed-length set of territories of one game. Order is
// significant: consecutive-territory missions follow index order, not geography.
type Board struct {
	territories []Territory
}

// NewBoard validates and copies the territories into a new board.
func NewBoard(territories []Territory) (*Board, error) {
	names := make([]string, 0, len(territories))
	for _, t := range territories {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if utils.FindIndex(names, t.Name) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, t.Name)
		}
		names = append(names, t.Name)
	}

	b := &Board{territories: make([]Territory, len(territories))}
	copy(b.territories, territories)
	return b, nil
}

// Len returns the number of territories.
func (b *Board) Len() int {
	return len(b.territories)
}

// Get returns a reference to the territory at index i. An out of range index is
// a caller bug and panics.
func (b *Board) Get(i int) *Territory {
	if i < 0 || i >= len(b.territories) {
		panic(fmt.Sprintf("territory index %d out of range [0, %d)", i, len(b.territories)))
	}
	return &b.territories[i]
}

// All returns references to every territory in board order.
func (b *Board) All() []*Territory {
	refs := make([]*Territory, len(b.territories))
	for i := range b.territories {
		refs[i] = &b.territories[i]
	}
	return refs
}

// Index returns the position of the named territory, or -1.
func (b *Board) Index(name string) int {
	return utils.FindIndex(b.names(), name)
}

func (b *Board) names() []string {
	return utils.Map(b.territories, func(t Territory) string { return t.Name })
}

// Count returns how many territories the faction controls.
func (b *Board) Count(f Faction) int {
	n := 0
	for _, t := range b.territories {
		if t.Faction == f {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the territories, safe to hold across attacks.
func (b *Board) Snapshot() []Territory {
	snapshot := make([]Territory, len(b.territories))
	copy(snapshot, b.territories)
	return snapshot
}
