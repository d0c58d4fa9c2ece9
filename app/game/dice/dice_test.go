package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidSides(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := New(0, rng)
	assert.Error(t, err)

	_, err = New(-3, rng)
	assert.Error(t, err)

	d, err := New(1, rng)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Sides())
}

func TestRollStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, sides := range []int{1, 4, 6, 20} {
		d, err := New(sides, rng)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			roll := d.Roll()
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, sides)
		}
	}
}

func TestRollCoversAllFaces(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := D6(rng)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[d.Roll()] = true
	}
	assert.Len(t, seen, 6)
}

func TestRollTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := D6(rng)
	b := D6(rng)

	for i := 0; i < 500; i++ {
		result := RollTwo(a, b)
		assert.Equal(t, result.Dice1+result.Dice2, result.Total)
		assert.Equal(t, result.Dice1 == result.Dice2, result.IsDouble)
	}
}

func TestRollStandardIsDeterministicPerSeed(t *testing.T) {
	first := RollStandard(rand.New(rand.NewSource(99)))
	second := RollStandard(rand.New(rand.NewSource(99)))
	assert.Equal(t, first, second)
}
