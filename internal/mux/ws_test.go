package mux

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, ts *httptest.Server, roomName, playerName string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/game/" + roomName + "/" + playerName
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// readUntil reads messages until one of the given type arrives
func readUntil(t *testing.T, conn *websocket.Conn, typ string) map[string]interface{} {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		if msg["type"] == typ {
			return msg
		}
	}
}

// readUntilRound reads room updates until the game reaches the round
func readUntilRound(t *testing.T, conn *websocket.Conn, round string) map[string]interface{} {
	t.Helper()

	for {
		data := readUntil(t, conn, "room_update")["room_data"].(map[string]interface{})
		if game, ok := data["game"].(map[string]interface{}); ok && game["round"] == round {
			return game
		}
	}
}

func Test_getGameWS(t *testing.T) {
	a := assert.New(t)
	_, ts := newTestMux(t)

	ann := dial(t, ts, "den", "ann")
	data := readUntil(t, ann, "room_update")["room_data"].(map[string]interface{})
	a.Equal("den", data["name"])
	a.Equal([]interface{}{"ann"}, data["players"])

	bob := dial(t, ts, "den", "bob")
	cat := dial(t, ts, "den", "cat")
	readUntil(t, bob, "room_update")
	readUntil(t, cat, "room_update")

	require.NoError(t, ann.WriteJSON(map[string]interface{}{"type": "ping", "context": "p1"}))
	pong := readUntil(t, ann, "pong")
	a.Equal("p1", pong["context"])

	require.NoError(t, bob.WriteJSON(map[string]interface{}{"type": "start_game", "room_name": "den"}))
	game := readUntilRound(t, cat, "preflop")
	a.Equal(2, len(game["pocket_cards"].([]interface{})))
	a.Equal("white", game["current_chip_color"])

	require.NoError(t, cat.WriteJSON(map[string]interface{}{"type": "take_chip_public", "chip_number": 2}))
	for {
		game = readUntilRound(t, cat, "preflop")
		if chips := game["player_chips"].(map[string]interface{}); chips["cat"] == float64(2) {
			break
		}
	}

	require.NoError(t, ann.WriteJSON(map[string]interface{}{"type": "take_chip_public", "chip_number": 2, "context": "c1"}))
	errMsg := readUntil(t, ann, "error")
	a.Equal("chip_not_available", errMsg["error"])
	a.Equal("c1", errMsg["context"])

	require.NoError(t, ann.WriteJSON(map[string]interface{}{"type": "shuffle"}))
	errMsg = readUntil(t, ann, "error")
	a.Equal("invalid_action", errMsg["error"])
}

func Test_getGameWS_rejected(t *testing.T) {
	a := assert.New(t)
	_, ts := newTestMux(t)

	for _, name := range []string{"ann", "bob", "cat", "dan", "eve", "fay"} {
		assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomName: "den", PlayerName: name}, nil, 200)
	}

	gus := dial(t, ts, "den", "gus")
	errMsg := readUntil(t, gus, "error")
	a.Equal("room_full", errMsg["error"])

	_, _, err := gus.ReadMessage()
	a.True(websocket.IsCloseError(err, websocket.ClosePolicyViolation))

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/game/den/not-alnum"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	a.Error(err)
	a.Equal(400, resp.StatusCode)
}

func Test_getGameWS_leave(t *testing.T) {
	a := assert.New(t)
	m, ts := newTestMux(t)

	ann := dial(t, ts, "den", "ann")
	bob := dial(t, ts, "den", "bob")
	readUntil(t, ann, "room_update")
	readUntil(t, bob, "room_update")

	// a normal close removes the player right away
	require.NoError(t, bob.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	require.Eventually(t, func() bool {
		s, ok := m.registry.Snapshot("den")
		return ok && len(s.Players) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, ann.WriteJSON(map[string]interface{}{"type": "leave_room"}))
	_, _, err := ann.ReadMessage()
	for err == nil {
		_, _, err = ann.ReadMessage()
	}

	a.True(websocket.IsCloseError(err, websocket.CloseNormalClosure))
	require.Eventually(t, func() bool {
		_, ok := m.registry.Get("den")
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
