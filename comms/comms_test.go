package comms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/manhunt/game"
)

func TestEncodeDecode(t *testing.T) {
	offer := TurnOffer{Location: 12, Token: "tok"}
	msg, err := Encode("turn", offer)
	require.NoError(t, err)
	assert.Equal(t, Head("turn"), msg.Head)

	var got TurnOffer
	require.NoError(t, Decode(msg, &got))
	assert.Equal(t, offer, got)
}

func TestHeadFields(t *testing.T) {
	h := Head("request:1:play")
	assert.Equal(t, []string{"request", "1", "play"}, h.Fields())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	cerr := WrapError(game.ErrGameFull)
	assert.Equal(t, "GAMEFULL", cerr.Code)
	assert.Equal(t, game.ErrGameFull.Error(), cerr.Msg)

	cerr = WrapError(errors.New("boom"))
	assert.Equal(t, "ERROR", cerr.Code)
}
