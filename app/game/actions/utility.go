package actions

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

// utilityBaseAmount stands in for the triggering dice total, which the handler
// does not receive. TODO thread the move's dice total through Execute so
// utility rent can use the real roll.
const utilityBaseAmount = 10

// UtilityAction handles utility spaces. Rent is the base amount times 4 when
// the owner holds one utility, times 10 when they hold both.
type UtilityAction struct {
	board SpaceLookup
}

func (a *UtilityAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceUtility
}

func (a *UtilityAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
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

	owned := countOwnedOfType(game, a.board, owner, models.SpaceUtility)
	multiplier := 10
	if owned == 1 {
		multiplier = 4
	}
	rent := float64(utilityBaseAmount * multiplier)
	if player.Cash < rent {
		return fail(fmt.Sprintf("Insufficient cash to pay %.0f rent for %s", rent, space.Name))
	}

	player.SubtractCash(rent)
	if ownerPlayer := game.PlayerById(owner); ownerPlayer != nil {
		ownerPlayer.AddCash(rent)
	}

	return ok(
		fmt.Sprintf("Paid %.0f rent for %s (Owner has %d utilities)", rent, space.Name, owned),
		-rent,
		map[string]interface{}{"rentPaid": true, "owner": owner, "ownedUtilities": owned},
	)
}
