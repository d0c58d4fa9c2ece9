package actions

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

// TaxAction debits the configured tax amount.
type TaxAction struct{}

func (a *TaxAction) CanHandle(t models.SpaceType) bool {
	return t == models.SpaceTax
}

func (a *TaxAction) Execute(game *models.Game, player *models.Player, space models.Space) Result {
	if space.TaxAmount == nil {
		return fail("Tax space has no tax amount configured")
	}
	tax := float64(*space.TaxAmount)
	if player.Cash < tax {
		return fail(fmt.Sprintf("Insufficient cash to pay %d tax", *space.TaxAmount))
	}

	player.SubtractCash(tax)
	return ok(fmt.Sprintf("Paid %d in %s", *space.TaxAmount, space.Name), -tax, nil)
}
