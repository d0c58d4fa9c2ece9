package locks

import "sync"

// Per-game mutexes. Each game's state is mutated by one request at a time;
// handlers lock the game id for the whole load-mutate-save cycle.

var games sync.Map // game id -> *sync.Mutex

// Lock acquires the mutex for a game id and returns its unlock func.
func Lock(gameId string) func() {
	mu, _ := games.LoadOrStore(gameId, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
