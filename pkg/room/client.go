package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"thegang-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// ID identifies this connection, a reconnecting player gets a new one
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close receives the reason when the server wants the connection closed
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	roomName   string
	playerName string
	room       *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, roomName, playerName string) *Client {
	return &Client{
		ID:         uuid.New().String(),
		send:       make(chan interface{}, 256),
		Close:      make(chan string, 1),
		Conn:       conn,
		roomName:   roomName,
		playerName: playerName,
	}
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// close asks the connection to close, only the first reason is kept
func (c *Client) close(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// PlayerName returns the name of the player using the connection
func (c *Client) PlayerName() string {
	return c.playerName
}

// RoomName returns the name of the room the client connected to
func (c *Client) RoomName() string {
	return c.roomName
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s:%s", c.playerName, c.roomName, c.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if msg.Type == "ping" {
		c.Send(&playable.Response{Type: playable.ResponsePong, Context: msg.Context})
		return
	}

	if c.room == nil {
		c.Send(playable.ErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	action, err := DecodeAction(msg)
	if err != nil {
		c.Send(playable.ErrorResponse(msg.Context, err))
		return
	}

	if err := c.room.Execute(c.playerName, action); err != nil {
		c.Send(playable.ErrorResponse(msg.Context, err))
	}
}
