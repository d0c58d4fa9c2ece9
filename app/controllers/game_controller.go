package controllers

import (
	"math/rand"
	"time"

	"github.com/DedS3t/cryptopoly-backend/app/game/actions"
	"github.com/DedS3t/cryptopoly-backend/app/game/crypto"
	"github.com/DedS3t/cryptopoly-backend/app/game/dice"
	"github.com/DedS3t/cryptopoly-backend/app/game/engine"
	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/DedS3t/cryptopoly-backend/pkg"
	"github.com/DedS3t/cryptopoly-backend/platform/board"
	"github.com/DedS3t/cryptopoly-backend/platform/cache"
	"github.com/DedS3t/cryptopoly-backend/platform/database"
	"github.com/DedS3t/cryptopoly-backend/platform/locks"
	"github.com/DedS3t/cryptopoly-backend/platform/queries"
	socket "github.com/DedS3t/cryptopoly-backend/platform/sockets"
	"github.com/go-pg/pg/v10"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Board is the immutable layout shared by every request, loaded once in main.
var Board *board.Board

var redisPool = cache.CreateRedisPool()

func Init(b *board.Board) {
	Board = b
}

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func buildEngines(db *pg.DB) (*engine.Engine, *crypto.Engine) {
	rng := newRng()
	dispatcher, err := actions.NewDispatcher(Board, rng)
	if err != nil {
		// Handler coverage is verified again in main at startup; reaching
		// this means the registry was edited without updating the type set.
		log.WithError(err).Panic("space action registry is not total")
	}
	cryptoEngine := crypto.New(rng, &queries.HistoryStore{DB: db})
	return engine.New(Board, dispatcher, cryptoEngine), cryptoEngine
}

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	dto := new(models.GameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON data"})
	}
	if dto.Character == "" || dto.RemainingCash < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid game data"})
	}
	if dto.CryptoAllocations == nil {
		dto.CryptoAllocations = map[string]float64{}
	}

	ownership := make(map[int]string)
	for _, space := range Board.Purchasable() {
		ownership[space.Position] = ""
	}

	game := &models.Game{
		Id:                 pkg.RandString(8),
		Status:             models.StatusActive,
		CurrentTurn:        1,
		CurrentPlayerIndex: 0,
		CreatedAt:          time.Now(),
		State: models.GameState{
			Cryptos:     crypto.InitialPrices(),
			Ownership:   ownership,
			TurnHistory: []models.TurnRecord{},
		},
	}

	player := &models.Player{
		Id:          uuid.NewV4().String(),
		GameId:      game.Id,
		Name:        "Player 1",
		Character:   dto.Character,
		Cash:        dto.RemainingCash,
		Position:    0,
		IsActive:    true,
		Portfolio:   dto.CryptoAllocations,
		Properties:  []int{},
		PlayerOrder: 0,
	}
	game.Players = []*models.Player{player}

	if err := queries.CreateGame(game, db); err != nil {
		log.WithError(err).Error("failed creating game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"success": true, "gameId": game.Id})
}

func GetGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "game": game})
}

func RollDice(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	unlock := locks.Lock(c.Params("id"))
	defer unlock()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}

	player := game.CurrentPlayer()
	if player == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No current player"})
	}

	conn := redisPool.Get()
	defer conn.Close()

	if queries.HasRolled(game.Id, player.Id, &conn) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You have already rolled the dice"})
	}

	eng, _ := buildEngines(db)
	roll := dice.RollStandard(newRng())
	moveResult := eng.MovePlayer(game, player, roll.Total)

	// Doubles roll again; anything else locks rolling until the turn ends.
	if !roll.IsDouble {
		if err := queries.SetRolled(game.Id, player.Id, &conn); err != nil {
			log.WithError(err).Warn("failed setting roll flag")
		}
	}

	if err := queries.SaveGame(game, db); err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed saving game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	socket.Broadcast(game.Id, "dice-rolled", player.Id)

	return c.JSON(fiber.Map{
		"success": true,
		"dice":    roll,
		"move":    moveResult,
		"player":  fiber.Map{"position": player.Position, "cash": player.Cash},
	})
}

func EndTurn(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	unlock := locks.Lock(c.Params("id"))
	defer unlock()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}

	player := game.CurrentPlayer()
	if player == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No current player"})
	}

	conn := redisPool.Get()
	defer conn.Close()

	if !queries.HasRolled(game.Id, player.Id, &conn) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Roll the dice before ending your turn"})
	}

	eng, cryptoEngine := buildEngines(db)
	if err := eng.EndTurn(game); err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed ending turn")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if err := queries.ResetRolled(game.Id, player.Id, &conn); err != nil {
		log.WithError(err).Warn("failed resetting roll flag")
	}

	if err := queries.SaveGame(game, db); err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed saving game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	prices := cryptoEngine.CurrentPrices(game)
	socket.Broadcast(game.Id, "turn-ended", game.CurrentPlayerIndex)

	return c.JSON(fiber.Map{
		"success":            true,
		"currentTurn":        game.CurrentTurn,
		"currentPlayerIndex": game.CurrentPlayerIndex,
		"cryptoPrices":       prices,
	})
}

func PurchaseProperty(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	unlock := locks.Lock(c.Params("id"))
	defer unlock()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}

	player := game.CurrentPlayer()
	if player == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No current player"})
	}

	dto := new(models.PurchaseDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase data"})
	}

	eng, _ := buildEngines(db)
	result := eng.PurchaseProperty(game, player, dto.Position)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": result.Message})
	}

	if err := queries.SaveGame(game, db); err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed saving game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	socket.Broadcast(game.Id, "property-purchased", dto.Position)

	return c.JSON(result)
}

// loadGame resolves the :id param to a game, writing the error response itself
// when the game is missing. Callers bail out on a nil game.
func loadGame(c *fiber.Ctx, db *pg.DB) (*models.Game, error) {
	game, err := queries.LoadGame(c.Params("id"), db)
	if err != nil {
		if err == queries.ErrGameNotFound {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Game not found"})
		}
		log.WithError(err).Error("failed loading game")
		return nil, c.SendStatus(fiber.StatusInternalServerError)
	}
	return game, nil
}
