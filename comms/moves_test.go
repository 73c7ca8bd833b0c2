package comms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/manhunt/game"
)

func TestMoveCodecTicket(t *testing.T) {
	move := game.TicketMove{Colour: game.ColourBlue, Ticket: game.TicketBus, Target: 42}

	got, err := DecodeMove(EncodeMove(move))
	require.NoError(t, err)
	assert.Equal(t, move, got)
}

func TestMoveCodecDouble(t *testing.T) {
	move := game.DoubleMove{
		Colour: game.ColourBlack,
		First:  game.TicketMove{Colour: game.ColourBlack, Ticket: game.TicketTaxi, Target: 7},
		Second: game.TicketMove{Colour: game.ColourBlack, Ticket: game.TicketSecret, Target: 9},
	}

	got, err := DecodeMove(EncodeMove(move))
	require.NoError(t, err)
	assert.Equal(t, move, got)
}

func TestMoveCodecPass(t *testing.T) {
	move := game.PassMove{Colour: game.ColourGreen}

	got, err := DecodeMove(EncodeMove(move))
	require.NoError(t, err)
	assert.Equal(t, move, got)
}

func TestDecodeMoveRejectsJunk(t *testing.T) {
	_, err := DecodeMove(WireMove{Type: "teleport"})
	assert.Error(t, err)

	_, err = DecodeMove(WireMove{Type: "ticket", Ticket: "tram", Target: 3})
	assert.Error(t, err)

	_, err = DecodeMove(WireMove{Type: "double", Colour: "black"})
	assert.Error(t, err)
}
