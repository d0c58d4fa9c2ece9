package queries

import (
	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/go-pg/pg/v10"
)

// HistoryStore is the go-pg backed price-history sink.
type HistoryStore struct {
	DB *pg.DB
}

func (s *HistoryStore) Record(entry *models.PriceHistory) error {
	_, err := s.DB.Model(entry).Insert()
	return err
}

// ForGame returns a game's history ordered by turn ascending, capped at limit
// entries.
func (s *HistoryStore) ForGame(gameId string, limit int) ([]*models.PriceHistory, error) {
	var entries []*models.PriceHistory
	q := s.DB.Model(&entries).
		Where("game_id = ?", gameId).
		Order("turn_number ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Select(); err != nil {
		return nil, err
	}
	return entries, nil
}
