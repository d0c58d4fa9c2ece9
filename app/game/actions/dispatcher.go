package actions

import (
	"fmt"
	"math/rand"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

// SpaceLookup is the slice of the board configuration the handlers need:
// position -> space, for classifying owned positions.
type SpaceLookup interface {
	SpaceAt(position int) models.Space
}

// Dispatcher routes a landed space to the handler claiming its type.
type Dispatcher struct {
	handlers []SpaceAction
}

// NewDispatcher builds the full handler set and verifies dispatch is total:
// every known space type must be claimed by exactly one handler.
func NewDispatcher(board SpaceLookup, rng *rand.Rand) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: []SpaceAction{
			&TaxAction{},
			&PropertyAction{},
			&SpecialAction{},
			&ChanceAction{rng: rng},
			&RailroadAction{board: board},
			&UtilityAction{board: board},
		},
	}

	for _, t := range models.KnownSpaceTypes {
		claims := 0
		for _, h := range d.handlers {
			if h.CanHandle(t) {
				claims++
			}
		}
		if claims != 1 {
			return nil, fmt.Errorf("space type %q claimed by %d handlers", t, claims)
		}
	}
	return d, nil
}

// Execute resolves the space action. Unknown space types are a no-op success.
func (d *Dispatcher) Execute(game *models.Game, player *models.Player, space models.Space) Result {
	for _, handler := range d.handlers {
		if handler.CanHandle(space.Type) {
			return handler.Execute(game, player, space)
		}
	}
	return ok(fmt.Sprintf("Landed on %s", space.Name), 0, nil)
}
