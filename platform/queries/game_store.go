package queries

import (
	"context"
	"errors"

	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ErrGameNotFound is returned when the referenced game does not exist.
var ErrGameNotFound = errors.New("game not found")

// CreateGame persists a new game aggregate (game row plus its players) in one
// transaction.
func CreateGame(game *models.Game, db *pg.DB) error {
	return db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if _, err := tx.Model(game).Insert(); err != nil {
			return err
		}
		for _, player := range game.Players {
			if _, err := tx.Model(player).Insert(); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadGame fetches the aggregate with players ordered by their fixed turn
// order, so CurrentPlayerIndex indexes Players directly.
func LoadGame(id string, db *pg.DB) (*models.Game, error) {
	game := &models.Game{Id: id}
	err := db.Model(game).
		WherePK().
		Relation("Players", func(q *orm.Query) (*orm.Query, error) {
			return q.Order("player_order ASC"), nil
		}).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// SaveGame writes the whole mutated aggregate back in one transaction; a
// request either commits every effect of its operation or none of them.
func SaveGame(game *models.Game, db *pg.DB) error {
	return db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if _, err := tx.Model(game).WherePK().Update(); err != nil {
			return err
		}
		for _, player := range game.Players {
			if _, err := tx.Model(player).WherePK().Update(); err != nil {
				return err
			}
		}
		return nil
	})
}
