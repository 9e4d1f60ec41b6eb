package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewSource returns a seeded generator. The same seed replays the same game.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

type Dice interface {
	// Roll returns a value in [1, sides].
	Roll() int
}

type randomDice struct {
	src   Source
	sides int
}

func NewDice(src Source, sides int) Dice {
	if sides < 1 {
		panic("dice need at least one side")
	}
	return &randomDice{src: src, sides: sides}
}

func (d *randomDice) Roll() int {
	return d.src.Intn(d.sides) + 1
}

// ScriptedDice replays a fixed sequence of rolls, attacker first then defender
// for each attack.
type ScriptedDice struct {
	rolls []int
	next  int
}

func NewScriptedDice(rolls ...int) *ScriptedDice {
	return &ScriptedDice{rolls: rolls}
}

func (d *ScriptedDice) Roll() int {
	if d.next >= len(d.rolls) {
		panic(fmt.Sprintf("scripted dice exhausted after %d rolls", len(d.rolls)))
	}
	roll := d.rolls[d.next]
	d.next++
	return roll
}

// Remaining returns how many scripted rolls are left.
func (d *ScriptedDice) Remaining() int {
	return len(d.rolls) - d.next
}
