package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/DedS3t/cryptopoly-backend/app/game/actions"
	"github.com/DedS3t/cryptopoly-backend/app/game/crypto"
	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	size   int
	spaces map[int]models.Space
}

func (f *fakeBoard) Size() int { return f.size }

func (f *fakeBoard) SpaceAt(position int) models.Space {
	if space, exists := f.spaces[position]; exists {
		return space
	}
	return models.Space{Position: position, Name: fmt.Sprintf("Space %d", position), Type: models.SpaceUnknown}
}

type fakeSink struct {
	entries []*models.PriceHistory
}

func (f *fakeSink) Record(entry *models.PriceHistory) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeSink) ForGame(gameId string, limit int) ([]*models.PriceHistory, error) {
	return f.entries, nil
}

func intPtr(v int) *int { return &v }

func testBoard() *fakeBoard {
	return &fakeBoard{
		size: 40,
		spaces: map[int]models.Space{
			0:  {Position: 0, Name: "GO", Type: models.SpaceSpecial},
			3:  {Position: 3, Name: "Baltic Avenue", Type: models.SpaceProperty, Price: intPtr(60), Rent: intPtr(4)},
			4:  {Position: 4, Name: "Income Tax", Type: models.SpaceTax, TaxAmount: intPtr(200)},
			5:  {Position: 5, Name: "Reading Railroad", Type: models.SpaceRailroad, Price: intPtr(200), Rent: intPtr(25)},
			10: {Position: 10, Name: "Jail", Type: models.SpaceSpecial},
			12: {Position: 12, Name: "Electric Company", Type: models.SpaceUtility, Price: intPtr(150)},
			28: {Position: 28, Name: "Water Works", Type: models.SpaceUtility},
			30: {Position: 30, Name: "Go to Jail", Type: models.SpaceSpecial},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeSink) {
	t.Helper()
	board := testBoard()
	rng := rand.New(rand.NewSource(1))
	dispatcher, err := actions.NewDispatcher(board, rng)
	require.NoError(t, err)
	sink := &fakeSink{}
	return New(board, dispatcher, crypto.New(rng, sink)), sink
}

func newTestGame(players int) *models.Game {
	game := &models.Game{
		Id:          "g1",
		Status:      models.StatusActive,
		CurrentTurn: 1,
		State: models.GameState{
			Cryptos:   crypto.InitialPrices(),
			Ownership: map[int]string{},
		},
	}
	for i := 0; i < players; i++ {
		game.Players = append(game.Players, &models.Player{
			Id:          fmt.Sprintf("p%d", i+1),
			Name:        fmt.Sprintf("Player %d", i+1),
			Cash:        1500,
			IsActive:    true,
			PlayerOrder: i,
			Portfolio:   map[string]float64{},
		})
	}
	return game
}

func TestMoveWrapsAndCreditsGoBonus(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]
	player.Position = 38

	result := eng.MovePlayer(game, player, 5)

	assert.Equal(t, 38, result.OldPosition)
	assert.Equal(t, 3, result.NewPosition)
	assert.True(t, result.PassedGo)
	assert.Equal(t, 3, player.Position)
	// 1500 + 200 GO bonus, before any space-action effect (Baltic is unowned).
	assert.Equal(t, 1700.0, player.Cash)
	assert.Equal(t, "Baltic Avenue", result.Space.Name)
	assert.Equal(t, true, result.Action.Data["canPurchase"])
}

func TestMoveExactWrapToGoCounts(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]
	player.Position = 35

	result := eng.MovePlayer(game, player, 5)

	assert.Equal(t, 0, result.NewPosition)
	assert.True(t, result.PassedGo)
	assert.Equal(t, 1700.0, player.Cash)
	assert.Equal(t, "GO", result.Space.Name)
}

func TestMoveWithoutWrap(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]

	result := eng.MovePlayer(game, player, 5)

	assert.Equal(t, 0, result.OldPosition)
	assert.Equal(t, 5, result.NewPosition)
	assert.False(t, result.PassedGo)
	assert.Equal(t, 1500.0, player.Cash)
}

func TestMultiWrapCreditsBonusOnce(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]
	player.Position = 20

	// 85 spaces wraps the board twice; the bonus is still a single 200.
	result := eng.MovePlayer(game, player, 85)

	assert.Equal(t, (20+85)%40, result.NewPosition)
	assert.True(t, result.PassedGo)
	assert.Equal(t, 1700.0, player.Cash)
}

func TestGoToJailOverridesReportedPosition(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]
	player.Position = 25

	result := eng.MovePlayer(game, player, 5)

	assert.Equal(t, 25, result.OldPosition)
	assert.Equal(t, 10, result.NewPosition)
	assert.Equal(t, 10, player.Position)
	assert.Equal(t, "Jail", result.Space.Name)
	assert.True(t, result.Action.PlayerMoved)
	assert.False(t, result.PassedGo)
	assert.Equal(t, 1500.0, player.Cash)
}

func TestMoveCollectsRentThroughDispatcher(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(2)
	mover, owner := game.Players[0], game.Players[1]
	game.SetOwner(3, owner.Id)
	mover.Position = 1

	result := eng.MovePlayer(game, mover, 2)

	require.True(t, result.Action.Success)
	assert.Equal(t, 1496.0, mover.Cash)
	assert.Equal(t, 1504.0, owner.Cash)
}

func TestMoveAppendsTurnHistory(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]

	eng.MovePlayer(game, player, 5)

	require.Len(t, game.State.TurnHistory, 1)
	record := game.State.TurnHistory[0]
	assert.Equal(t, 1, record.Turn)
	assert.Equal(t, player.Id, record.PlayerId)
	assert.Equal(t, 5, record.Dice)
	assert.Equal(t, 0, record.From)
	assert.Equal(t, 5, record.To)
}

func TestEndTurnRotatesPlayersAndRefreshesPrices(t *testing.T) {
	eng, sink := newTestEngine(t)
	game := newTestGame(2)

	require.NoError(t, eng.EndTurn(game))
	assert.Equal(t, 1, game.CurrentPlayerIndex)
	assert.Equal(t, 1, game.CurrentTurn)
	// One history record per crypto per boundary.
	assert.Len(t, sink.entries, len(game.State.Cryptos))

	require.NoError(t, eng.EndTurn(game))
	assert.Equal(t, 0, game.CurrentPlayerIndex)
	assert.Equal(t, 2, game.CurrentTurn)
}

func TestEndTurnSinglePlayerAdvancesTurn(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)

	require.NoError(t, eng.EndTurn(game))

	assert.Equal(t, 0, game.CurrentPlayerIndex)
	assert.Equal(t, 2, game.CurrentTurn)
}

func TestPurchaseProperty(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]

	result := eng.PurchaseProperty(game, player, 3)

	require.True(t, result.Success)
	assert.Equal(t, "Baltic Avenue", result.Property)
	assert.Equal(t, 60, result.Price)
	assert.Equal(t, 1440.0, result.RemainingCash)
	assert.Equal(t, player.Id, game.Owner(3))
}

func TestPurchaseRailroadAndUtility(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]

	require.True(t, eng.PurchaseProperty(game, player, 5).Success)
	require.True(t, eng.PurchaseProperty(game, player, 12).Success)
	assert.Equal(t, 1500.0-200-150, player.Cash)
}

func TestPurchaseAlreadyOwnedFailsWithoutMutation(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(2)
	first, second := game.Players[0], game.Players[1]

	require.True(t, eng.PurchaseProperty(game, first, 3).Success)
	cashBefore := second.Cash

	result := eng.PurchaseProperty(game, second, 3)

	assert.False(t, result.Success)
	assert.Equal(t, "Property is already owned", result.Message)
	assert.Equal(t, cashBefore, second.Cash)
	assert.Equal(t, first.Id, game.Owner(3))
}

func TestPurchaseRejectsBadTargets(t *testing.T) {
	eng, _ := newTestEngine(t)
	game := newTestGame(1)
	player := game.Players[0]

	// Not an ownable space type.
	assert.False(t, eng.PurchaseProperty(game, player, 4).Success)
	// Ownable type but no configured price.
	assert.False(t, eng.PurchaseProperty(game, player, 28).Success)

	player.Cash = 10
	result := eng.PurchaseProperty(game, player, 3)
	assert.False(t, result.Success)
	assert.Equal(t, 10.0, player.Cash)
	assert.Empty(t, game.Owner(3))
}
