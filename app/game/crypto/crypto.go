package crypto

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/DedS3t/cryptopoly-backend/app/models"
)

const (
	tradingFee  = 0.98 // 2% fee on every exchange
	dustEpsilon = 0.01
	minFactor   = 0.1 // price floor relative to base
	maxFactor   = 3.0 // price ceiling relative to base
)

// HistorySink is the append-only persistence contract for price records. The
// engine only guarantees appends are turn-monotonic; reads order by turn.
type HistorySink interface {
	Record(entry *models.PriceHistory) error
	ForGame(gameId string, limit int) ([]*models.PriceHistory, error)
}

// Engine owns a game's price table: one fluctuation per turn boundary, plus
// fee-bearing portfolio trades. Randomness and time are injected so turns can
// be replayed under a fixed seed.
type Engine struct {
	rng     *rand.Rand
	history HistorySink
	now     func() time.Time
}

func New(rng *rand.Rand, history HistorySink) *Engine {
	return &Engine{rng: rng, history: history, now: time.Now}
}

// WithClock overrides the timestamp source, for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// InitialPrices is the price table every new game starts from.
func InitialPrices() map[string]models.CryptoInfo {
	return map[string]models.CryptoInfo{
		"bitcoin":  {Price: 45.50, BasePrice: 45.50, Symbol: "₿", Name: "BitCoin"},
		"ethereum": {Price: 32.25, BasePrice: 32.25, Symbol: "Ξ", Name: "EthCoin"},
		"dogecoin": {Price: 8.75, BasePrice: 8.75, Symbol: "Ð", Name: "DogeCoin"},
		"tether":   {Price: 15.90, BasePrice: 15.90, Symbol: "₮", Name: "TetherCoin"},
		"binance":  {Price: 28.40, BasePrice: 28.40, Symbol: "◇", Name: "BinanceCoin"},
		"cardano":  {Price: 12.15, BasePrice: 12.15, Symbol: "◆", Name: "CardanoCoin"},
	}
}

// FluctuatePrices perturbs every price by a uniform -15%..+15% step, clamps it
// into [0.1, 3.0] of the base price, and appends one history record per crypto
// tagged with the turn being ended. Afterwards every player's portfolio is
// revalidated against the current key set; quantities are never changed here.
func (e *Engine) FluctuatePrices(game *models.Game) error {
	cryptos := game.State.Cryptos
	if cryptos == nil {
		cryptos = InitialPrices()
	}

	// Sorted keys keep the history append order stable within a turn.
	keys := make([]string, 0, len(cryptos))
	for key := range cryptos {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	recordedAt := e.now()
	for _, key := range keys {
		info := cryptos[key]

		pct := float64(e.rng.Intn(31)-15) / 100
		newPrice := info.Price * (1 + pct)

		minPrice := info.BasePrice * minFactor
		maxPrice := info.BasePrice * maxFactor
		newPrice = math.Max(minPrice, math.Min(maxPrice, newPrice))

		info.Price = round2(newPrice)
		cryptos[key] = info

		err := e.history.Record(&models.PriceHistory{
			GameId:     game.Id,
			CryptoKey:  key,
			Price:      info.Price,
			TurnNumber: game.CurrentTurn,
			RecordedAt: recordedAt,
		})
		if err != nil {
			return err
		}
	}

	game.State.Cryptos = cryptos

	for _, player := range game.Players {
		revalidatePortfolio(player, cryptos)
	}
	return nil
}

// TradeCrypto exchanges amount of fromCrypto into toCrypto at current prices,
// minus the trading fee. All-or-nothing: any validation failure leaves the
// portfolio untouched.
func (e *Engine) TradeCrypto(game *models.Game, playerId, fromCrypto, toCrypto string, amount float64) bool {
	cryptos := game.State.Cryptos
	from, okFrom := cryptos[fromCrypto]
	to, okTo := cryptos[toCrypto]
	if !okFrom || !okTo {
		return false
	}

	player := game.PlayerById(playerId)
	if player == nil {
		return false
	}

	if player.Holding(fromCrypto) < amount {
		return false
	}

	exchangeAmount := (amount * from.Price) / to.Price * tradingFee

	if player.Portfolio == nil {
		player.Portfolio = make(map[string]float64)
	}
	player.Portfolio[fromCrypto] -= amount
	player.Portfolio[toCrypto] += exchangeAmount

	// Prune dust so repeated trades don't accumulate near-zero entries.
	for key, held := range player.Portfolio {
		if held <= dustEpsilon {
			delete(player.Portfolio, key)
		}
	}
	return true
}

// CurrentPrices returns the game's price table, falling back to the initial
// table for games created before prices were seeded.
func (e *Engine) CurrentPrices(game *models.Game) map[string]models.CryptoInfo {
	if game.State.Cryptos == nil {
		return InitialPrices()
	}
	return game.State.Cryptos
}

// PriceHistory returns the persisted series grouped by crypto key, ordered by
// turn ascending within each series.
func (e *Engine) PriceHistory(game *models.Game, limit int) (map[string]models.PriceSeries, error) {
	entries, err := e.history.ForGame(game.Id, limit)
	if err != nil {
		return nil, err
	}

	prices := e.CurrentPrices(game)
	grouped := make(map[string]models.PriceSeries)
	for _, entry := range entries {
		series, exists := grouped[entry.CryptoKey]
		if !exists {
			info := prices[entry.CryptoKey]
			series = models.PriceSeries{Name: info.Name, Symbol: info.Symbol}
		}
		series.Data = append(series.Data, models.PricePoint{
			Turn:      entry.TurnNumber,
			Price:     entry.Price,
			Timestamp: entry.RecordedAt.Format("2006-01-02 15:04:05"),
		})
		grouped[entry.CryptoKey] = series
	}
	return grouped, nil
}

// PortfolioValue prices a portfolio against the given table.
func PortfolioValue(portfolio map[string]float64, prices map[string]models.CryptoInfo) float64 {
	total := 0.0
	for key, amount := range portfolio {
		if info, exists := prices[key]; exists {
			total += amount * info.Price
		}
	}
	return total
}

func revalidatePortfolio(player *models.Player, cryptos map[string]models.CryptoInfo) {
	updated := make(map[string]float64, len(player.Portfolio))
	for key, amount := range player.Portfolio {
		if _, exists := cryptos[key]; exists && amount > 0 {
			updated[key] = amount
		}
	}
	player.Portfolio = updated
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
