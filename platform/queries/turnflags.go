package queries

import (
	"fmt"

	"github.com/DedS3t/cryptopoly-backend/platform/cache"
	"github.com/gomodule/redigo/redis"
)

// The roll/end-turn cycle is tracked as a per-player flag in Redis: a player
// who has rolled (without doubles) must end the turn before rolling again.

func playerKey(gameId, playerId string) string {
	return fmt.Sprintf("%s.%s", gameId, playerId)
}

func HasRolled(gameId, playerId string, conn *redis.Conn) bool {
	val, err := cache.HGET(playerKey(gameId, playerId), "hasRolled", conn)
	if err != nil {
		return false
	}
	return val == "true"
}

func SetRolled(gameId, playerId string, conn *redis.Conn) error {
	return cache.HSET(playerKey(gameId, playerId), "hasRolled", "true", conn)
}

func ResetRolled(gameId, playerId string, conn *redis.Conn) error {
	return cache.HSET(playerKey(gameId, playerId), "hasRolled", "false", conn)
}
