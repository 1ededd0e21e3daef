package mux

import (
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"thegang-server/internal/util"
	"thegang-server/pkg/room"
)

const maxNameLength = 32

var errNamesRequired = errors.New("room name and player name are required")
var errNamesAlphanumeric = errors.New("room name and player name must be alphanumeric")
var errNameTooLong = errors.New("names must be at most 32 characters")

// validateNames checks names used in URLs and room rosters
func validateNames(roomName, playerName string) error {
	if roomName == "" || playerName == "" {
		return errNamesRequired
	}

	if !util.IsAlphanumeric(roomName) || !util.IsAlphanumeric(playerName) {
		return errNamesAlphanumeric
	}

	if len(roomName) > maxNameLength || len(playerName) > maxNameLength {
		return errNameTooLong
	}

	return nil
}

type postRoomJoinPayload struct {
	RoomName   string `json:"room_name"`
	PlayerName string `json:"player_name"`
}

type roomJoinResponse struct {
	Success    bool           `json:"success"`
	RoomName   string         `json:"room_name"`
	PlayerName string         `json:"player_name"`
	Room       *room.Snapshot `json:"room"`
}

func (m *Mux) postRoomJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoomJoinPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if err := validateNames(payload.RoomName, payload.PlayerName); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rm, err := m.registry.Join(payload.RoomName, payload.PlayerName)
		if err != nil {
			writeUserError(w, err)
			return
		}

		snapshot, err := rm.Snapshot(payload.PlayerName)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"room":   payload.RoomName,
			"player": payload.PlayerName,
		}).Info("player joined over HTTP")

		writeJSON(w, http.StatusOK, roomJoinResponse{
			Success:    true,
			RoomName:   payload.RoomName,
			PlayerName: payload.PlayerName,
			Room:       snapshot,
		})
	}
}

type roomStatusResponse struct {
	Exists bool           `json:"exists"`
	Room   *room.Snapshot `json:"room"`
}

func (m *Mux) getRoomName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, exists := m.registry.Snapshot(gmux.Vars(r)["name"])
		writeJSON(w, http.StatusOK, roomStatusResponse{
			Exists: exists,
			Room:   snapshot,
		})
	}
}

type suggestNameResponse struct {
	RoomName string `json:"room_name"`
}

func (m *Mux) getRoomSuggestName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := util.GetRandomRoomName()
		for i := 0; i < 10; i++ {
			if _, exists := m.registry.Get(name); !exists {
				break
			}

			name = util.GetRandomRoomName()
		}

		writeJSON(w, http.StatusOK, suggestNameResponse{RoomName: name})
	}
}
