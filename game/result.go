package game

// Result is the kind of outcome an attack produced.
type Result int

const (
	Rejected Result = iota // Attacker and defender share a faction, nothing changed
	Conquest
	Repulse
)

func (r Result) String() string {
	switch r {
	case Rejected:
		return "rejected"
	case Conquest:
		return "conquest"
	case Repulse:
		return "repulse"
	default:
		return "unknown"
	}
}

// Outcome reports a resolved attack along with the post-attack state of both
// territories.
type Outcome struct {
	Result       Result
	AttackerRoll int // 0 when rejected
	DefenderRoll int // 0 when rejected
	Attacker     Territory
	Defender     Territory
}
