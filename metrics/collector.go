package metrics

import (
	"sync/atomic"
	"time"
	"war/game"
)

type GameMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Attacks    int
	Conquests  int
	Repulses   int
	Rejections int
	Ties       int    // Repulses decided by equal dice
	Winner     string // Player name, "" if no winner yet
}

type Collector interface {
	Start()
	AddOutcome(outcome game.Outcome)
	SetWinner(player string)
	Complete() GameMetric
}

type collector struct {
	startTime  time.Time
	attacks    atomic.Int32
	conquests  atomic.Int32
	repulses   atomic.Int32
	rejections atomic.Int32
	ties       atomic.Int32
	winner     atomic.Value
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddOutcome(outcome game.Outcome) {
	m.attacks.Add(1)
	switch outcome.Result {
	case game.Conquest:
		m.conquests.Add(1)
	case game.Repulse:
		m.repulses.Add(1)
		if outcome.AttackerRoll == outcome.DefenderRoll {
			m.ties.Add(1)
		}
	case game.Rejected:
		m.rejections.Add(1)
	}
}

func (m *collector) SetWinner(player string) {
	m.winner.Store(player)
}

func (m *collector) Complete() GameMetric {
	winner, _ := m.winner.Load().(string)
	return GameMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Attacks:    int(m.attacks.Load()),
		Conquests:  int(m.conquests.Load()),
		Repulses:   int(m.repulses.Load()),
		Rejections: int(m.rejections.Load()),
		Ties:       int(m.ties.Load()),
		Winner:     winner,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                          {}
func (m *dummyCollector) AddOutcome(outcome game.Outcome) {}
func (m *dummyCollector) SetWinner(player string)         {}
func (m *dummyCollector) Complete() GameMetric            { return GameMetric{} }
