package actions

import "github.com/DedS3t/cryptopoly-backend/app/models"

// SpaceAction resolves the effect of landing on one class of board space.
// Each implementation claims a disjoint set of space types via CanHandle, so
// the dispatcher's registry order carries no meaning.
type SpaceAction interface {
	CanHandle(spaceType models.SpaceType) bool
	Execute(game *models.Game, player *models.Player, space models.Space) Result
}
