package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/DedS3t/cryptopoly-backend/app/controllers"
	"github.com/DedS3t/cryptopoly-backend/app/game/actions"
	"github.com/DedS3t/cryptopoly-backend/pkg/routes"
	"github.com/DedS3t/cryptopoly-backend/platform/board"
	"github.com/DedS3t/cryptopoly-backend/platform/logging"
	socket "github.com/DedS3t/cryptopoly-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	boardPath := os.Getenv("BOARD_PATH")
	if boardPath == "" {
		boardPath = "platform/board/board.json"
	}
	b, err := board.Load(boardPath)
	if err != nil {
		log.WithError(err).Fatal("failed loading board configuration")
	}

	// Fail fast if the handler registry stops covering every space type.
	if _, err := actions.NewDispatcher(b, rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		log.WithError(err).Fatal("space action registry is not total")
	}

	controllers.Init(b)

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JwtSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)

	go socket.CreateSocketIOServer()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	log.Fatal(app.Listen(":" + port))
}
