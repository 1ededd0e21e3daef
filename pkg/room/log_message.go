package room

import (
	"thegang-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessage adds a log message, dropping the oldest past the limit
// Note: this must only be called from within the run loop
func (r *Room) addLogMessage(playerName string, format string, a ...interface{}) {
	m := append(r.logMessages, playable.SimpleLogMessage(playerName, format, a...))
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	r.logMessages = m
}
