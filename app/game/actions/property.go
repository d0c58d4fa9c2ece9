package actions

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

// PropertyAction handles plain street properties: offer purchase when unowned,
// collect flat rent for another owner, no-op on the player's own property.
type PropertyAction struct{}

func (a *PropertyAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceProperty
}

func (a *PropertyAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
	owner := game.Owner(space.Position)

	if owner == "" {
		return ok(
			fmt.Sprintf("%s is available for purchase (Price: %d)", space.Name, intOrZero(space.Price)),
			0,
			map[string]interface{}{"canPurchase": true, "price": intOrZero(space.Price)},
		)
	}

	if owner == player.Id {
		return ok(fmt.Sprintf("You own %s", space.Name), 0, nil)
	}

	if space.Rent == nil {
		return fail("Property has no rent configured")
	}
	rent := float64(*space.Rent)
	if player.Cash < rent {
		return fail(fmt.Sprintf("Insufficient cash to pay %d rent for %s", *space.Rent, space.Name))
	}

	player.SubtractCash(rent)
	if ownerPlayer := game.PlayerById(owner); ownerPlayer != nil {
		ownerPlayer.AddCash(rent)
	}

	return ok(
		fmt.Sprintf("Paid %d rent for %s", *space.Rent, space.Name),
		-rent,
		map[string]interface{}{"rentPaid": true, "owner": owner},
	)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
