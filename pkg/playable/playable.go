package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogMessage is the format the room keeps its activity log in
// If PlayerNames is empty, it's a general statement, otherwise the message is about those players
type LogMessage struct {
	UUID        string    `json:"uuid"`
	PlayerNames []string  `json:"player_names"`
	Message     string    `json:"message"`
	Time        time.Time `json:"time"`
}

// Response is a message sent to a connected client
type Response struct {
	Type     string      `json:"type"`
	RoomData interface{} `json:"room_data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Message  string      `json:"message,omitempty"`
	// Context echoes the context of the message that caused the response
	Context string `json:"context,omitempty"`
}

// Response types
const (
	ResponseRoomUpdate = "room_update"
	ResponseError      = "error"
	ResponsePong       = "pong"
)

// RoomUpdate returns a response carrying a full room snapshot
func RoomUpdate(data interface{}) *Response {
	return &Response{
		Type:     ResponseRoomUpdate,
		RoomData: data,
	}
}

// ErrorResponse converts an error into a response for the client that caused it
// Only user errors are described to the client; anything else is an internal error
func ErrorResponse(ctx string, err error) *Response {
	res := &Response{
		Type:    ResponseError,
		Context: ctx,
	}

	if ue, ok := AsUserError(err); ok {
		res.Error = ue.Kind
		res.Message = ue.Message
		return res
	}

	res.Error = KindInternal
	res.Message = "an internal error occurred"
	return res
}

// PayloadIn is the format we expect from the JS client
// Type selects the action, and every other field is decoded by the action itself
type PayloadIn struct {
	Type string `json:"type"`
	// Context will be passed back on any outgoing message
	Context        string         `json:"context"`
	AdditionalData AdditionalData `json:"-"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// NewPayloadIn splits a decoded JSON object into a PayloadIn
func NewPayloadIn(raw map[string]interface{}) *PayloadIn {
	p := &PayloadIn{AdditionalData: AdditionalData{}}
	for key, val := range raw {
		switch key {
		case "type":
			p.Type, _ = val.(string)
		case "context":
			p.Context, _ = val.(string)
		default:
			p.AdditionalData[key] = val
		}
	}

	return p
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerName string, format string, a ...interface{}) *LogMessage {
	var playerNames []string
	if playerName != "" {
		playerNames = []string{playerName}
	}

	return &LogMessage{
		UUID:        uuid.New().String(),
		PlayerNames: playerNames,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}
}
