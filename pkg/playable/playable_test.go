package playable

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerNames)
	assert.False(t, lm.Time.Before(before))
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withPlayerName(t *testing.T) {
	lm := SimpleLogMessage("ann", "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []string{"ann"}, lm.PlayerNames)
}

func TestErrorResponse(t *testing.T) {
	a := assert.New(t)

	ue := NewUserError(KindChipNotAvailable, "chip 2 is not available")
	res := ErrorResponse("ctx", fmt.Errorf("taking chip: %w", ue))
	a.Equal("error", res.Type)
	a.Equal("chip_not_available", res.Error)
	a.Equal("chip 2 is not available", res.Message)
	a.Equal("ctx", res.Context)

	res = ErrorResponse("", NewInvariantError(errors.New("deck exhausted")))
	a.Equal("internal_error", res.Error)
	a.Equal("an internal error occurred", res.Message)

	b, err := json.Marshal(RoomUpdate(map[string]int{"a": 1}))
	a.NoError(err)
	a.JSONEq(`{"type":"room_update","room_data":{"a":1}}`, string(b))
}

func TestUserError_comparable(t *testing.T) {
	a := assert.New(t)

	errTaken := NewUserError(KindNameTaken, "name taken")
	wrapped := fmt.Errorf("join: %w", errTaken)
	a.True(errors.Is(wrapped, errTaken))
	a.False(errors.Is(wrapped, NewUserError(KindRoomFull, "room full")))

	ue, ok := AsUserError(wrapped)
	a.True(ok)
	a.Equal(KindNameTaken, ue.Kind)

	_, ok = AsUserError(errors.New("nope"))
	a.False(ok)
}

func TestInvariantError(t *testing.T) {
	a := assert.New(t)

	base := errors.New("deck exhausted")
	err := fmt.Errorf("dealing flop: %w", NewInvariantError(base))
	a.True(IsInvariantError(err))
	a.True(errors.Is(err, base))
	a.EqualError(err, "dealing flop: invariant violated: deck exhausted")
	a.False(IsInvariantError(base))
}

func TestNewPayloadIn(t *testing.T) {
	a := assert.New(t)

	var raw map[string]interface{}
	a.NoError(json.Unmarshal([]byte(`{"type":"take_chip_public","context":"1","chip_number":2}`), &raw))

	p := NewPayloadIn(raw)
	a.Equal("take_chip_public", p.Type)
	a.Equal("1", p.Context)
	a.Equal(AdditionalData{"chip_number": float64(2)}, p.AdditionalData)
}
