package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"thegang-server/internal/config"
	"thegang-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config   muxConfig
	version  string
	registry *room.Registry
}

type muxConfig struct {
	// pongWait is how long a websocket may go without a pong
	pongWait time.Duration
	// writeWait is how long a single websocket write may take
	writeWait time.Duration
}

func (c muxConfig) pingPeriod() time.Duration {
	return c.pongWait * 9 / 10
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *room.Registry) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
		config: muxConfig{
			pongWait:  cfg.Heartbeat.PongWait,
			writeWait: cfg.Heartbeat.WriteWait,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room/join").Handler(this.postRoomJoin())
	r.Methods(http.MethodGet).Path("/room/suggest-name").Handler(this.getRoomSuggestName())
	r.Methods(http.MethodGet).Path("/room/{name}").Handler(this.getRoomName())
	r.Methods(http.MethodGet).Path("/ws/game/{room}/{player}").Handler(this.getGameWS())

	return this
}
