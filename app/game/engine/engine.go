package engine

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/game/actions"
	"github.com/DedS3t/cryptopoly-backend/app/game/crypto"
	"github.com/DedS3t/cryptopoly-backend/app/models"
)

const passGoBonus = 200

// Board is the slice of the board configuration the engine consumes.
type Board interface {
	Size() int
	SpaceAt(position int) models.Space
}

// MoveResult is the full outcome of one dice move. It is ephemeral; the
// durable effects live on the Game aggregate.
type MoveResult struct {
	OldPosition int            `json:"oldPosition"`
	NewPosition int            `json:"newPosition"`
	PassedGo    bool           `json:"passedGo"`
	Space       models.Space   `json:"space"`
	Action      actions.Result `json:"action"`
}

// PurchaseResult reports a property purchase attempt.
type PurchaseResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	Property      string  `json:"property,omitempty"`
	Price         int     `json:"price,omitempty"`
	RemainingCash float64 `json:"remainingCash,omitempty"`
}

// Engine drives a game's turn cycle: move the active player, resolve the
// landed space, rotate control at end of turn.
type Engine struct {
	board      Board
	dispatcher *actions.Dispatcher
	crypto     *crypto.Engine
}

func New(b Board, dispatcher *actions.Dispatcher, cryptoEngine *crypto.Engine) *Engine {
	return &Engine{board: b, dispatcher: dispatcher, crypto: cryptoEngine}
}

// MovePlayer advances the player by spaces, credits the pass-GO bonus on
// wrap-around, and resolves the landed space's action. A move that wraps the
// board more than once still credits the bonus a single time.
func (e *Engine) MovePlayer(game *models.Game, player *models.Player, spaces int) MoveResult {
	oldPosition := player.Position
	newPosition := (oldPosition + spaces) % e.board.Size()

	// Wrapping past (or exactly onto) GO is visible as the position going
	// backwards.
	passedGo := newPosition < oldPosition
	if passedGo {
		player.AddCash(passGoBonus)
	}

	player.Position = newPosition

	space := e.board.SpaceAt(newPosition)
	actionResult := e.dispatcher.Execute(game, player, space)

	// A space action can relocate the player again (Go to Jail); the reported
	// final position follows it, the action's side effects stay where they
	// were triggered.
	if actionResult.PlayerMoved && actionResult.NewPosition != nil {
		newPosition = *actionResult.NewPosition
	}

	game.State.TurnHistory = append(game.State.TurnHistory, models.TurnRecord{
		Turn:     game.CurrentTurn,
		PlayerId: player.Id,
		Dice:     spaces,
		From:     oldPosition,
		To:       newPosition,
		Message:  actionResult.Message,
	})

	return MoveResult{
		OldPosition: oldPosition,
		NewPosition: newPosition,
		PassedGo:    passedGo,
		Space:       e.board.SpaceAt(newPosition),
		Action:      actionResult,
	}
}

// EndTurn refreshes the price table for the turn being ended, then hands
// control to the next player. No space action runs here.
func (e *Engine) EndTurn(game *models.Game) error {
	if err := e.crypto.FluctuatePrices(game); err != nil {
		return err
	}
	game.NextPlayer()
	return nil
}

// PurchaseProperty buys the space at position for the player. Only ownable
// space types with a configured price qualify; an owned position or a short
// balance fails with no mutation.
func (e *Engine) PurchaseProperty(game *models.Game, player *models.Player, position int) PurchaseResult {
	space := e.board.SpaceAt(position)

	if !space.Purchasable() {
		return PurchaseResult{Success: false, Message: "This space cannot be purchased"}
	}
	if space.Price == nil {
		return PurchaseResult{Success: false, Message: "Property has no price set"}
	}
	if game.Owner(position) != "" {
		return PurchaseResult{Success: false, Message: "Property is already owned"}
	}
	price := float64(*space.Price)
	if player.Cash < price {
		return PurchaseResult{Success: false, Message: "Insufficient cash to purchase property"}
	}

	player.SubtractCash(price)
	game.SetOwner(position, player.Id)

	return PurchaseResult{
		Success:       true,
		Message:       fmt.Sprintf("Purchased %s for %d", space.Name, *space.Price),
		Property:      space.Name,
		Price:         *space.Price,
		RemainingCash: player.Cash,
	}
}
