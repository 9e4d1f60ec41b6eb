package game

import "errors"

var (
	ErrInvalidTerritory = errors.New("invalid territory")
	ErrInvalidFaction   = errors.New("invalid faction")
	ErrDuplicateName    = errors.New("duplicate territory name")
	ErrEmptyCatalog     = errors.New("mission catalog is empty")
)

// Source is the random number seam shared by dice and mission draws.
// Intn returns a uniform integer in [0, n).
type Source interface {
	Intn(n int) int
}
