package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"thegang-server/internal/rng"
	"thegang-server/pkg/playable"
	"thegang-server/pkg/playable/thegang"
)

const maxPlayers = 6

// Player is a member of a room
type Player struct {
	Name   string
	client *Client

	// disconnectTimer removes the player if they do not reconnect in time
	disconnectTimer *time.Timer
}

// Room is a named group of players that play games together
// All state is owned by the run loop, and every change goes through it
type Room struct {
	name     string
	registry *Registry
	options  Options
	logger   logrus.FieldLogger
	gen      rng.Generator

	players      []*Player
	state        State
	game         *thegang.Game
	logMessages  []*playable.LogMessage
	lastActivity time.Time

	execInRunLoop chan func()
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewRoom returns a new room
// StartShift must be called before the room can be used
func NewRoom(registry *Registry, name string) *Room {
	return &Room{
		name:          name,
		registry:      registry,
		options:       registry.options,
		logger:        registry.logger.WithField("room", name),
		gen:           registry.options.NewGenerator(),
		players:       make([]*Player, 0, maxPlayers),
		state:         StateWaiting,
		lastActivity:  time.Now(),
		execInRunLoop: make(chan func(), 256),
		closed:        make(chan struct{}),
	}
}

// Name returns the name of the room
func (r *Room) Name() string {
	return r.name
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

func (r *Room) runLoop() {
	r.logger.Debug("creating room run loop")
	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.closed:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// EndShift stops the run loop
// Anything still queued is dropped, and waiting callers get ErrRoomClosed
func (r *Room) EndShift() {
	r.closeOnce.Do(func() {
		close(r.closed)
	})
}

// IsClosed returns true once the room has been shut down
func (r *Room) IsClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}

// exec runs fn in the run loop and waits for its result
func (r *Room) exec(fn func() error) error {
	done := make(chan error, 1)
	select {
	case r.execInRunLoop <- func() { done <- fn() }:
	case <-r.closed:
		return ErrRoomClosed
	}

	select {
	case err := <-done:
		return err
	case <-r.closed:
		// fn may have closed the room itself
		select {
		case err := <-done:
			return err
		default:
			return ErrRoomClosed
		}
	}
}

// post queues fn in the run loop without waiting
func (r *Room) post(fn func()) {
	select {
	case r.execInRunLoop <- fn:
	case <-r.closed:
	}
}

// Execute applies the action on behalf of actor
// On success every connected player receives a new snapshot; on failure nothing changes
func (r *Room) Execute(actor string, action Action) error {
	return r.exec(func() error {
		log := r.logger.WithFields(logrus.Fields{
			"player": actor,
			"action": action.Type(),
		})

		if err := action.apply(r, actor); err != nil {
			if playable.IsInvariantError(err) {
				log.WithError(err).WithField("type", "exception").Error("invariant violated")
			} else {
				log.WithError(err).Debug("action failed")
			}

			return err
		}

		log.Debug("action applied")
		r.changed()
		return nil
	})
}

// Connect attaches a client to the room, joining the player if needed
// A client for a player already in the room replaces the old connection
func (r *Room) Connect(client *Client) error {
	return r.exec(func() error {
		if err := r.join(client.playerName, client); err != nil {
			return err
		}

		r.changed()
		return nil
	})
}

// Disconnect is called when a client's connection goes away
// A normal closure or an idle room removes the player right away,
// otherwise the player has until the reconnect grace period ends to come back
func (r *Room) Disconnect(client *Client, normalClosure bool) {
	r.post(func() {
		player := r.getPlayer(client.playerName)
		if player == nil || player.client != client {
			return
		}

		player.client = nil
		log := r.logger.WithField("player", player.Name)

		if normalClosure || r.state != StatePlaying || r.options.ReconnectGrace <= 0 {
			log.Info("player disconnected")
			if err := r.leave(player.Name); err != nil {
				log.WithError(err).Error("could not remove player")
			}

			r.changed()
			return
		}

		log.WithField("grace", r.options.ReconnectGrace.String()).Info("player lost connection")
		player.disconnectTimer = time.AfterFunc(r.options.ReconnectGrace, func() {
			r.post(func() {
				if p := r.getPlayer(player.Name); p != player || p.client != nil {
					return
				}

				log.Info("player did not reconnect")
				if err := r.leave(player.Name); err != nil {
					log.WithError(err).Error("could not remove player")
				}

				r.changed()
			})
		})

		r.changed()
	})
}

// Snapshot returns the state of the room as seen by viewer
func (r *Room) Snapshot(viewer string) (*Snapshot, error) {
	var s *Snapshot
	err := r.exec(func() error {
		s = r.snapshot(viewer)
		return nil
	})

	return s, err
}

// closeIfStale shuts the room down if nobody is connected and nothing happened since cutoff
func (r *Room) closeIfStale(cutoff time.Time) (bool, error) {
	var stale bool
	err := r.exec(func() error {
		for _, player := range r.players {
			if player.client != nil {
				return nil
			}
		}

		if !r.lastActivity.Before(cutoff) {
			return nil
		}

		stale = true
		r.logger.Info("closing stale room")
		r.shutdown("room is stale")
		return nil
	})

	return stale, err
}

// changed records activity, broadcasts a snapshot and shuts the room down once it is empty
// Note: this must only be called from within the run loop
func (r *Room) changed() {
	r.lastActivity = time.Now()
	r.broadcast()

	if len(r.players) == 0 {
		r.logger.Info("room is empty")
		r.shutdown("room is empty")
	}
}

// shutdown removes the room from the registry and stops the run loop
// Note: this must only be called from within the run loop
func (r *Room) shutdown(reason string) {
	for _, player := range r.players {
		if player.disconnectTimer != nil {
			player.disconnectTimer.Stop()
		}

		if player.client != nil {
			player.client.close(reason)
		}
	}

	r.registry.removeRoom(r)
	r.EndShift()
}

// NOTE: must only be called from the run loop
func (r *Room) broadcast() {
	for _, player := range r.players {
		if player.client == nil {
			continue
		}

		if !player.client.Send(playable.RoomUpdate(r.snapshot(player.Name))) {
			r.logger.WithField("player", player.Name).Warn("client send buffer is full")
		}
	}
}

func (r *Room) getPlayer(name string) *Player {
	for _, player := range r.players {
		if player.Name == name {
			return player
		}
	}

	return nil
}

func (r *Room) playerNames() []string {
	names := make([]string, len(r.players))
	for i, player := range r.players {
		names[i] = player.Name
	}

	return names
}

// join adds a player, or reattaches the client of a player already in the room
// A nil client is a join without a connection, which must use a new name
func (r *Room) join(name string, client *Client) error {
	if player := r.getPlayer(name); player != nil {
		if client == nil {
			return ErrNameTaken
		}

		if player.disconnectTimer != nil {
			player.disconnectTimer.Stop()
			player.disconnectTimer = nil
		}

		if old := player.client; old != nil && old != client {
			old.close("replaced by a new connection")
		}

		player.client = client
		client.room = r
		r.logger.WithField("player", name).Info("player reconnected")
		return nil
	}

	if r.state == StatePlaying {
		return ErrGameInProgress
	}

	if len(r.players) >= maxPlayers {
		return ErrRoomFull
	}

	r.players = append(r.players, &Player{Name: name, client: client})
	if client != nil {
		client.room = r
	}

	r.addLogMessage(name, "%s joined the room", name)
	r.logger.WithField("player", name).Info("player joined")
	return nil
}

// leave removes a player
// A player leaving a game gives up their chip, and a game with fewer than two players ends
func (r *Room) leave(name string) error {
	idx := -1
	for i, player := range r.players {
		if player.Name == name {
			idx = i
			break
		}
	}

	if idx < 0 {
		return thegang.ErrPlayerNotFound
	}

	player := r.players[idx]
	if player.disconnectTimer != nil {
		player.disconnectTimer.Stop()
	}

	if player.client != nil {
		player.client.close("left the room")
	}

	r.players = append(r.players[:idx:idx], r.players[idx+1:]...)
	r.addLogMessage(name, "%s left the room", name)

	if r.game != nil && r.game.HasPlayer(name) {
		if err := r.game.RemovePlayer(name); err != nil {
			return err
		}

		if r.game.PlayerCount() < 2 {
			r.game = nil
			r.state = StateIntermission
			r.addLogMessage("", "the game ended because too few players are left")
		}
	}

	return nil
}

func (r *Room) newGame() error {
	game, err := thegang.NewGame(r.logger, r.playerNames(), r.gen)
	if err != nil {
		return err
	}

	r.game = game
	r.state = StatePlaying
	return nil
}

func (r *Room) requirePlayer(name string) error {
	if r.getPlayer(name) == nil {
		return thegang.ErrPlayerNotFound
	}

	return nil
}

func (r *Room) startGame(actor string) error {
	if err := r.requirePlayer(actor); err != nil {
		return err
	}

	if r.state == StatePlaying {
		return ErrGameInProgress
	}

	if err := r.newGame(); err != nil {
		return err
	}

	r.addLogMessage(actor, "%s started the game", actor)
	return nil
}

func (r *Room) restartGame(actor string) error {
	if err := r.requirePlayer(actor); err != nil {
		return err
	}

	if r.state == StateWaiting {
		return ErrNoGame
	}

	if err := r.newGame(); err != nil {
		return err
	}

	r.addLogMessage(actor, "%s restarted the game", actor)
	return nil
}

func (r *Room) endGame(actor string) error {
	if err := r.requirePlayer(actor); err != nil {
		return err
	}

	if r.state != StatePlaying {
		return ErrNoGame
	}

	r.game = nil
	r.state = StateIntermission
	r.addLogMessage(actor, "%s ended the game", actor)
	return nil
}

func (r *Room) activeGame(actor string) (*thegang.Game, error) {
	if err := r.requirePlayer(actor); err != nil {
		return nil, err
	}

	if r.game == nil {
		return nil, ErrNoGame
	}

	return r.game, nil
}

func (r *Room) takeChipPublic(actor string, n int) error {
	game, err := r.activeGame(actor)
	if err != nil {
		return err
	}

	if err := game.TakePublic(actor, n); err != nil {
		return err
	}

	r.addLogMessage(actor, "%s took %s chip %d", actor, game.Chips().Color(), n)
	return nil
}

func (r *Room) takeChipPlayer(actor, target string) error {
	game, err := r.activeGame(actor)
	if err != nil {
		return err
	}

	n, err := game.TakeFromPlayer(actor, target)
	if err != nil {
		return err
	}

	r.addLogMessage(actor, "%s took %s chip %d from %s", actor, game.Chips().Color(), n, target)
	return nil
}

func (r *Room) returnChip(actor string) error {
	game, err := r.activeGame(actor)
	if err != nil {
		return err
	}

	n, err := game.ReturnChip(actor)
	if err != nil {
		return err
	}

	r.addLogMessage(actor, "%s returned %s chip %d", actor, game.Chips().Color(), n)
	return nil
}

func (r *Room) advanceRound(actor string) error {
	game, err := r.activeGame(actor)
	if err != nil {
		return err
	}

	if err := game.Advance(); err != nil {
		return err
	}

	if result := game.ScoringResult(); result != nil {
		outcome := "lost"
		if result.Win {
			outcome = "won"
		}

		r.addLogMessage("", "the team %s", outcome)
		return nil
	}

	r.addLogMessage(actor, "%s dealt the %s", actor, game.Round())
	return nil
}

func (r *Room) distributeChips(actor string) error {
	if !r.options.Dev {
		return fmt.Errorf("%w: %s is only available in dev mode", ErrInvalidAction, ActionDistributeChips)
	}

	game, err := r.activeGame(actor)
	if err != nil {
		return err
	}

	if _, err := game.DistributeChips(); err != nil {
		return err
	}

	r.addLogMessage(actor, "%s handed out the remaining chips", actor)
	return nil
}
