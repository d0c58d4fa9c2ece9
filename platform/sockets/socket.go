package socket

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/DedS3t/cryptopoly-backend/platform/database"
	"github.com/DedS3t/cryptopoly-backend/platform/queries"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var server *socketio.Server

// Broadcast emits an event to every client watching a game. A nil server
// (tests, server not started yet) is a no-op.
func Broadcast(gameId string, event string, args ...interface{}) {
	if server != nil {
		server.BroadcastToRoom("/", gameId, event, args...)
	}
}

// CreateSocketIOServer runs the realtime channel: clients join a room per
// game id and receive dice, purchase, trade and price events as they happen.
func CreateSocketIOServer() {
	srv, err := socketio.NewServer(nil)
	if err != nil {
		log.WithError(err).Fatal("failed creating socket.io server")
	}
	server = srv

	db := database.PostgreSQLConnection()
	defer db.Close()

	srv.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	srv.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		gameId, exists := result["game_id"]
		if !exists {
			s.Emit("error-message", "game_id not passed")
			return
		}
		if _, err := queries.LoadGame(gameId, db); err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}

		s.Join(gameId)
		srv.BroadcastToRoom("/", gameId, "watcher-joined")
		log.WithField("game", gameId).Debug("socket joined game room")
	})

	srv.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		s.Leave(result["game_id"])
	})

	srv.OnError("/", func(s socketio.Conn, err error) {
		log.WithError(err).Warn("socket.io error")
	})

	go srv.Serve()
	defer srv.Close()

	port := os.Getenv("SOCKET_PORT")
	if port == "" {
		port = "4102"
	}

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", srv)
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
	}).Handler(mux)

	log.WithField("port", port).Info("socket.io server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
