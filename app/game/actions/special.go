package actions

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

const jailPosition = 10

// SpecialAction handles the corner spaces, dispatching on the space name.
type SpecialAction struct{}

func (a *SpecialAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceSpecial
}

func (a *SpecialAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
	switch space.Name {
	case "GO":
		return ok("You are on GO - collect salary when you pass!", 0, nil)
	case "Jail":
		return ok("Just visiting Jail", 0, nil)
	case "Free Parking":
		return ok("Relax at Free Parking", 0, nil)
	case "Go to Jail":
		player.Position = jailPosition
		return move("Go directly to Jail! Do not pass GO, do not collect $200", jailPosition)
	default:
		return ok(fmt.Sprintf("Landed on %s", space.Name), 0, nil)
	}
}
