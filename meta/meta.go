// meta/meta.go
package meta

// DIE_SIDES defines the number of faces on each attack and defence die.
const DIE_SIDES = 6

// MAX_NAME_LENGTH bounds territory names.
const MAX_NAME_LENGTH = 29

// MAX_FACTION_LENGTH bounds faction labels.
const MAX_FACTION_LENGTH = 9

// DEFAULT_RUN_LENGTH is the run a consecutive-territories mission asks for.
const DEFAULT_RUN_LENGTH = 3

// MIN_PLAYERS defines how many players a game needs.
const MIN_PLAYERS = 2

// MAX_TURNS caps the number of attacks in a single game.
const MAX_TURNS = 300
