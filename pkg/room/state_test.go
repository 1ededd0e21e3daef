package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("waiting", StateWaiting.String())
	a.Equal("playing", StatePlaying.String())
	a.Equal("intermission", StateIntermission.String())

	b, err := json.Marshal(StateIntermission)
	a.NoError(err)
	a.Equal(`"intermission"`, string(b))

	a.PanicsWithValue("unknown state: 5", func() {
		_ = State(5).String()
	})
}
