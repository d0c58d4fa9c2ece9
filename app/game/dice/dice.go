package dice

import (
	"errors"
	"math/rand"
)

// Die is a single n-sided die bound to an explicit random source so rolls can
// be replayed under a fixed seed.
type Die struct {
	sides int
	rng   *rand.Rand
}

func New(sides int, rng *rand.Rand) (*Die, error) {
	if sides < 1 {
		return nil, errors.New("die must have at least 1 side")
	}
	return &Die{sides: sides, rng: rng}, nil
}

// D6 returns a standard six-sided die.
func D6(rng *rand.Rand) *Die {
	d, _ := New(6, rng)
	return d
}

func (d *Die) Sides() int {
	return d.sides
}

func (d *Die) Roll() int {
	return d.rng.Intn(d.sides) + 1
}

// RollResult is the outcome of rolling a pair of dice.
type RollResult struct {
	Dice1    int  `json:"dice1"`
	Dice2    int  `json:"dice2"`
	Total    int  `json:"total"`
	IsDouble bool `json:"isDouble"`
}

func RollTwo(a, b *Die) RollResult {
	r1 := a.Roll()
	r2 := b.Roll()
	return RollResult{
		Dice1:    r1,
		Dice2:    r2,
		Total:    r1 + r2,
		IsDouble: r1 == r2,
	}
}

// RollStandard rolls two six-sided dice, the game's normal move roll.
func RollStandard(rng *rand.Rand) RollResult {
	return RollTwo(D6(rng), D6(rng))
}
