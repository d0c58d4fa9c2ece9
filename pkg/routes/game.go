package routes

import (
	"github.com/DedS3t/cryptopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")
	route.Post("/create", controllers.CreateGame)
	route.Get("/:id", controllers.GetGame)
	route.Post("/:id/roll-dice", controllers.RollDice)
	route.Post("/:id/end-turn", controllers.EndTurn)
	route.Post("/:id/purchase", controllers.PurchaseProperty)
	route.Post("/:id/trade-crypto", controllers.TradeCrypto)
	route.Get("/:id/trade", controllers.GetTradeData)
	route.Get("/:id/price-history", controllers.GetPriceHistory)
}
