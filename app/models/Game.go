package models

import "time"

const (
	StatusWaiting  = "waiting"
	StatusActive   = "active"
	StatusFinished = "finished"
)

// GameState is the per-game state blob persisted as a single jsonb column so a
// save writes the ownership ledger, the price table and the history in one unit.
type GameState struct {
	Cryptos     map[string]CryptoInfo `json:"cryptocurrencies"`
	Ownership   map[int]string        `json:"properties"` // position -> owning player id, "" means unowned
	TurnHistory []TurnRecord          `json:"turnHistory"`
}

// TurnRecord is one line of the per-game move log.
type TurnRecord struct {
	Turn     int    `json:"turn"`
	PlayerId string `json:"player"`
	Dice     int    `json:"dice"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	Message  string `json:"message"`
}

type Game struct {
	Id                 string     `json:"id" pg:",pk"`
	Status             string     `json:"status"`
	CurrentTurn        int        `json:"currentTurn" pg:",use_zero"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex" pg:",use_zero"`
	State              GameState  `json:"state" pg:"state,type:jsonb"`
	CreatedAt          time.Time  `json:"createdAt"`
	FinishedAt         *time.Time `json:"finishedAt"`
	Players            []*Player  `json:"players" pg:"rel:has-many"`
}

// Owner returns the owning player id for a board position, "" if unowned.
func (g *Game) Owner(position int) string {
	if g.State.Ownership == nil {
		return ""
	}
	return g.State.Ownership[position]
}

func (g *Game) SetOwner(position int, playerId string) {
	if g.State.Ownership == nil {
		g.State.Ownership = make(map[int]string)
	}
	g.State.Ownership[position] = playerId
}

// PlayerById looks a player up in the aggregate, nil if absent.
func (g *Game) PlayerById(id string) *Player {
	for _, player := range g.Players {
		if player.Id == id {
			return player
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, nil for an empty game.
// Players is kept ordered by PlayerOrder by the store.
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// NextPlayer advances the active-player pointer; wrapping back to the first
// player starts a new turn.
func (g *Game) NextPlayer() {
	if len(g.Players) == 0 {
		return
	}
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)
	if g.CurrentPlayerIndex == 0 {
		g.CurrentTurn++
	}
}

type GameCreateDto struct {
	Character         string             `json:"character"`
	CryptoAllocations map[string]float64 `json:"cryptoAllocations"`
	RemainingCash     float64            `json:"remainingCash"`
}

type TradeDto struct {
	FromCrypto string  `json:"fromCrypto"`
	ToCrypto   string  `json:"toCrypto"`
	Amount     float64 `json:"amount"`
}

type PurchaseDto struct {
	Position int `json:"position"`
}
