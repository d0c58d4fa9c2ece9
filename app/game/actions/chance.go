package actions

import (
	"fmt"
	"math/rand"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

var chanceMessages = []string{
	"Bank pays you dividend of $50",
	"Pay poor tax of $15",
	"You have won second prize in a beauty contest - collect $10",
	"Go back 3 spaces",
	"Advance to GO - collect $200",
}

// ChanceAction draws a flavor card. The cards are message-only for now; none
// of them mutate state.
type ChanceAction struct {
	rng *rand.Rand
}

func (a *ChanceAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceChance
}

func (a *ChanceAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
	card := chanceMessages[a.rng.Intn(len(chanceMessages))]
	return ok(
		fmt.Sprintf("Chance/Community Chest: %s (Not implemented yet)", card),
		0,
		map[string]interface{}{"chanceCard": card},
	)
}
