package room

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"thegang-server/internal/rng"
)

// Options configures every room a registry creates
type Options struct {
	// ReconnectGrace is how long a player who dropped mid-game keeps their seat
	ReconnectGrace time.Duration

	// StaleAfter is how long a room without connections may sit idle
	StaleAfter time.Duration

	// Dev enables actions meant for local testing
	Dev bool

	// NewGenerator returns the random source of a new room
	NewGenerator func() rng.Generator
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		ReconnectGrace: 30 * time.Second,
		StaleAfter:     10 * time.Minute,
		NewGenerator: func() rng.Generator {
			return rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
		},
	}
}

// Registry is responsible for dispatching players to rooms
// Rooms are created by the first join and removed once empty
type Registry struct {
	lock    sync.Mutex
	rooms   map[string]*Room
	options Options
	logger  logrus.FieldLogger
}

// NewRegistry returns a new registry
func NewRegistry(logger logrus.FieldLogger, options Options) *Registry {
	if options.NewGenerator == nil {
		options.NewGenerator = DefaultOptions().NewGenerator
	}

	return &Registry{
		rooms:   make(map[string]*Room),
		options: options,
		logger:  logger,
	}
}

// Get returns the room with the given name
func (g *Registry) Get(name string) (*Room, bool) {
	g.lock.Lock()
	defer g.lock.Unlock()

	room, ok := g.rooms[name]
	return room, ok
}

// RoomNames returns the name of every open room, sorted
func (g *Registry) RoomNames() []string {
	g.lock.Lock()
	defer g.lock.Unlock()

	names := make([]string, 0, len(g.rooms))
	for name := range g.rooms {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (g *Registry) getOrCreate(name string) *Room {
	g.lock.Lock()
	defer g.lock.Unlock()

	room, ok := g.rooms[name]
	if !ok || room.IsClosed() {
		room = NewRoom(g, name)
		room.StartShift()
		g.rooms[name] = room
		g.logger.WithField("room", name).Info("created room")
	}

	return room
}

// removeRoom forgets the room if it is still the one registered under its name
func (g *Registry) removeRoom(room *Room) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.rooms[room.name] == room {
		delete(g.rooms, room.name)
		g.logger.WithField("room", room.name).Info("removed room")
	}
}

// withRoom runs fn against the named room, creating it if needed
// A room that closes underneath fn is replaced by a fresh one
func (g *Registry) withRoom(name string, fn func(room *Room) error) (*Room, error) {
	for {
		room := g.getOrCreate(name)
		err := fn(room)
		if errors.Is(err, ErrRoomClosed) {
			g.removeRoom(room)
			continue
		}

		return room, err
	}
}

// Join adds a player to a room without a connection
func (g *Registry) Join(roomName, playerName string) (*Room, error) {
	return g.withRoom(roomName, func(room *Room) error {
		return room.Execute(playerName, JoinRoom{})
	})
}

// Connect attaches a websocket client to its room
func (g *Registry) Connect(client *Client) error {
	_, err := g.withRoom(client.roomName, func(room *Room) error {
		return room.Connect(client)
	})

	return err
}

// Disconnect is called when a client's connection ends
func (g *Registry) Disconnect(client *Client, normalClosure bool) {
	g.logger.WithField("client", client.String()).Debug("client disconnected")
	if client.room == nil {
		return
	}

	client.room.Disconnect(client, normalClosure)
}

// Execute applies an action in an existing room
func (g *Registry) Execute(roomName, playerName string, action Action) error {
	room, ok := g.Get(roomName)
	if !ok {
		return ErrRoomNotFound
	}

	err := room.Execute(playerName, action)
	if errors.Is(err, ErrRoomClosed) {
		return ErrRoomNotFound
	}

	return err
}

// Snapshot returns the public view of a room
func (g *Registry) Snapshot(roomName string) (*Snapshot, bool) {
	room, ok := g.Get(roomName)
	if !ok {
		return nil, false
	}

	s, err := room.Snapshot("")
	if err != nil {
		return nil, false
	}

	return s, true
}

// CleanupStale closes rooms nobody is connected to that have been idle since before now - StaleAfter
// It returns the number of rooms closed
func (g *Registry) CleanupStale(now time.Time) int {
	g.lock.Lock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	g.lock.Unlock()

	cutoff := now.Add(-g.options.StaleAfter)
	closed := 0
	for _, room := range rooms {
		if ok, err := room.closeIfStale(cutoff); err == nil && ok {
			closed++
		}
	}

	return closed
}

// StartJanitor periodically closes stale rooms until ctx is done
func (g *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := g.CleanupStale(now); n > 0 {
					g.logger.WithField("rooms", n).Info("cleaned up stale rooms")
				}
			}
		}
	}()
}

// Close shuts down every room
func (g *Registry) Close() {
	g.lock.Lock()
	rooms := g.rooms
	g.rooms = make(map[string]*Room)
	g.lock.Unlock()

	for _, room := range rooms {
		room.EndShift()
	}
}
