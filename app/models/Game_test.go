package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPlayerWrapsAndAdvancesTurn(t *testing.T) {
	game := &Game{
		CurrentTurn: 1,
		Players: []*Player{
			{Id: "p1", PlayerOrder: 0},
			{Id: "p2", PlayerOrder: 1},
		},
	}

	game.NextPlayer()
	assert.Equal(t, 1, game.CurrentPlayerIndex)
	assert.Equal(t, 1, game.CurrentTurn)
	assert.Equal(t, "p2", game.CurrentPlayer().Id)

	game.NextPlayer()
	assert.Equal(t, 0, game.CurrentPlayerIndex)
	assert.Equal(t, 2, game.CurrentTurn)
}

func TestNextPlayerEmptyGame(t *testing.T) {
	game := &Game{CurrentTurn: 1}
	game.NextPlayer()
	assert.Equal(t, 0, game.CurrentPlayerIndex)
	assert.Equal(t, 1, game.CurrentTurn)
	assert.Nil(t, game.CurrentPlayer())
}

func TestSubtractCashRefusesOverdraft(t *testing.T) {
	player := &Player{Cash: 100}

	assert.False(t, player.SubtractCash(150))
	assert.Equal(t, 100.0, player.Cash)

	assert.True(t, player.SubtractCash(100))
	assert.Equal(t, 0.0, player.Cash)
}

func TestOwnerOnEmptyLedger(t *testing.T) {
	game := &Game{}
	assert.Equal(t, "", game.Owner(5))

	game.SetOwner(5, "p1")
	assert.Equal(t, "p1", game.Owner(5))
}
