package actions

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

// RailroadAction handles railroad spaces. Rent doubles with every extra
// railroad the owner holds: base, 2x, 4x, 8x for one through four.
type RailroadAction struct {
	board SpaceLookup
}

func (a *RailroadAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceRailroad
}

func (a *RailroadAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
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

	owned := countOwnedOfType(game, a.board, owner, models.SpaceRailroad)
	rent := float64(railroadRent(intOrZero(space.Rent), owned))
	if player.Cash < rent {
		return fail(fmt.Sprintf("Insufficient cash to pay %.0f rent for %s", rent, space.Name))
	}

	player.SubtractCash(rent)
	if ownerPlayer := game.PlayerById(owner); ownerPlayer != nil {
		ownerPlayer.AddCash(rent)
	}

	return ok(
		fmt.Sprintf("Paid %.0f rent for %s (Owner has %d railroads)", rent, space.Name, owned),
		-rent,
		map[string]interface{}{"rentPaid": true, "owner": owner, "ownedRailroads": owned},
	)
}

// railroadRent applies the classic four-tier table: 1 -> base, 2 -> 2x,
// 3 -> 4x, 4 -> 8x.
func railroadRent(base, owned int) int {
	switch owned {
	case 2:
		return base * 2
	case 3:
		return base * 4
	case 4:
		return base * 8
	default:
		return base
	}
}

// countOwnedOfType scans the ownership ledger and classifies each owned
// position through the board configuration's type tag.
func countOwnedOfType(game *models.Game, board SpaceLookup, ownerId string, t models.SpaceType) int {
	count := 0
	for position, owner := range game.State.Ownership {
		if owner == ownerId && board.SpaceAt(position).Type == t {
			count++
		}
	}
	return count
}
