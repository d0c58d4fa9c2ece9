package controllers

import (
	"github.com/DedS3t/cryptopoly-backend/app/models"
	"github.com/DedS3t/cryptopoly-backend/platform/database"
	"github.com/DedS3t/cryptopoly-backend/platform/locks"
	"github.com/DedS3t/cryptopoly-backend/platform/queries"
	socket "github.com/DedS3t/cryptopoly-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func TradeCrypto(c *fiber.Ctx) error {
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

	dto := new(models.TradeDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trade data"})
	}
	if dto.FromCrypto == "" || dto.ToCrypto == "" || dto.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trade data"})
	}

	_, cryptoEngine := buildEngines(db)
	if !cryptoEngine.TradeCrypto(game, player.Id, dto.FromCrypto, dto.ToCrypto, dto.Amount) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Trade failed - insufficient funds or invalid trade"})
	}

	if err := queries.SaveGame(game, db); err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed saving game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	socket.Broadcast(game.Id, "crypto-traded", player.Id)

	return c.JSON(fiber.Map{
		"success":      true,
		"newPortfolio": player.Portfolio,
		"message":      "Trade executed successfully",
	})
}

func GetPriceHistory(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}

	_, cryptoEngine := buildEngines(db)
	history, err := cryptoEngine.PriceHistory(game, 20)
	if err != nil {
		log.WithError(err).WithField("game", game.Id).Error("failed loading price history")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"success": true, "priceHistory": history})
}

// GetTradeData returns the trade screen's view: every crypto with its price,
// display metadata and the current player's balance in it.
func GetTradeData(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game, err := loadGame(c, db)
	if game == nil {
		return err
	}

	player := game.CurrentPlayer()
	if player == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No current player"})
	}

	_, cryptoEngine := buildEngines(db)
	prices := cryptoEngine.CurrentPrices(game)

	cryptos := make([]fiber.Map, 0, len(prices))
	for key, info := range prices {
		cryptos = append(cryptos, fiber.Map{
			"key":     key,
			"name":    info.Name,
			"symbol":  info.Symbol,
			"color":   cryptoColor(key),
			"price":   info.Price,
			"balance": player.Holding(key),
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"playerCryptos": cryptos,
		"allCryptos":    cryptos,
		"currentCash":   player.Cash,
	})
}

func cryptoColor(key string) string {
	switch key {
	case "bitcoin":
		return "#f7931a"
	case "ethereum":
		return "#627eea"
	case "dogecoin":
		return "#c2a633"
	case "tether":
		return "#00d4aa"
	case "binance":
		return "#f0b90b"
	default:
		return "#1652f0"
	}
}
