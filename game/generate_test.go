package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, jsdata string) *GraphBoard {
	t.Helper()
	b, err := ParseBoard([]byte(jsdata))
	require.NoError(t, err)
	return b
}

const hubBoard = `{
	"nodes": {
		"1": {"links": ["t:2", "b:3", "f:4", "u:5"]},
		"2": {"links": []},
		"3": {"links": []},
		"4": {"links": []},
		"5": {"links": []}
	}
}`

func TestGenerateSpendsOnlyHeldTickets(t *testing.T) {
	b := mustBoard(t, hubBoard)

	moves := GenerateMoves(b, ColourBlue, Tickets{TicketTaxi: 1}, 1, nil)

	assert.ElementsMatch(t, []TicketMove{
		{Colour: ColourBlue, Ticket: TicketTaxi, Target: 2},
	}, moves)
}

func TestGenerateSkipsForbiddenTargets(t *testing.T) {
	b := mustBoard(t, hubBoard)
	tickets := Tickets{TicketTaxi: 1, TicketBus: 1}

	moves := GenerateMoves(b, ColourBlue, tickets, 1, map[Location]bool{2: true})

	assert.ElementsMatch(t, []TicketMove{
		{Colour: ColourBlue, Ticket: TicketBus, Target: 3},
	}, moves)
}

func TestGenerateSecretTwins(t *testing.T) {
	b := mustBoard(t, hubBoard)
	tickets := Tickets{TicketTaxi: 1, TicketSecret: 1}

	moves := GenerateMoves(b, ColourBlack, tickets, 1, nil)

	// the ferry move uses the secret ticket directly and gets no twin
	assert.ElementsMatch(t, []TicketMove{
		{Colour: ColourBlack, Ticket: TicketTaxi, Target: 2},
		{Colour: ColourBlack, Ticket: TicketSecret, Target: 4},
		{Colour: ColourBlack, Ticket: TicketSecret, Target: 2},
	}, moves)
}

func TestGenerateNoDuplicateSecretMoves(t *testing.T) {
	// two different transports to the same target make one secret twin
	b := mustBoard(t, `{
		"nodes": {
			"1": {"links": ["t:2", "b:2"]},
			"2": {"links": []}
		}
	}`)
	tickets := Tickets{TicketTaxi: 1, TicketBus: 1, TicketSecret: 1}

	moves := GenerateMoves(b, ColourBlack, tickets, 1, nil)

	assert.ElementsMatch(t, []TicketMove{
		{Colour: ColourBlack, Ticket: TicketTaxi, Target: 2},
		{Colour: ColourBlack, Ticket: TicketBus, Target: 2},
		{Colour: ColourBlack, Ticket: TicketSecret, Target: 2},
	}, moves)
}

const lineBoard = `{
	"nodes": {
		"1": {"links": ["t:2"]},
		"2": {"links": ["t:3"]},
		"3": {"links": []}
	}
}`

func TestDoublesNeedDoubleTicket(t *testing.T) {
	b := mustBoard(t, lineBoard)

	moves := generateAll(b, ColourBlack, Tickets{TicketTaxi: 2}, 1, nil)

	for _, m := range moves {
		_, double := m.(DoubleMove)
		assert.False(t, double)
	}
}

func TestDoublesGenerated(t *testing.T) {
	b := mustBoard(t, lineBoard)
	tickets := Tickets{TicketTaxi: 2, TicketDouble: 1}

	moves := generateAll(b, ColourBlack, tickets, 1, nil)

	first := TicketMove{Colour: ColourBlack, Ticket: TicketTaxi, Target: 2}
	assert.ElementsMatch(t, []Move{
		first,
		DoubleMove{Colour: ColourBlack, First: first, Second: TicketMove{Colour: ColourBlack, Ticket: TicketTaxi, Target: 1}},
		DoubleMove{Colour: ColourBlack, First: first, Second: TicketMove{Colour: ColourBlack, Ticket: TicketTaxi, Target: 3}},
	}, moves)
}

func TestDoublesRespectRemainingTickets(t *testing.T) {
	b := mustBoard(t, lineBoard)
	// one taxi ticket only: no second leg is affordable
	moves := generateAll(b, ColourBlack, Tickets{TicketTaxi: 1, TicketDouble: 1}, 1, nil)

	assert.ElementsMatch(t, []Move{
		TicketMove{Colour: ColourBlack, Ticket: TicketTaxi, Target: 2},
	}, moves)
}

func TestDoublesBacktrackRestoresTickets(t *testing.T) {
	b := mustBoard(t, lineBoard)
	tickets := Tickets{TicketTaxi: 2, TicketDouble: 1}

	generateAll(b, ColourBlack, tickets, 1, nil)

	assert.Equal(t, 2, tickets.Count(TicketTaxi))
	assert.Equal(t, 1, tickets.Count(TicketDouble))
}

func TestDoublesNoStructuralDuplicates(t *testing.T) {
	b := mustBoard(t, `{
		"nodes": {
			"1": {"links": ["t:2", "b:2"]},
			"2": {"links": ["t:3", "b:3"]},
			"3": {"links": []}
		}
	}`)
	tickets := Tickets{TicketTaxi: 2, TicketBus: 2, TicketSecret: 1, TicketDouble: 1}

	moves := generateAll(b, ColourBlack, tickets, 1, nil)

	seen := map[Move]bool{}
	for _, m := range moves {
		assert.False(t, seen[m], "duplicate move %v", m)
		seen[m] = true
	}
}

func TestPursuerWithNoMovesGetsPass(t *testing.T) {
	b := mustBoard(t, lineBoard)

	moves := generateAll(b, ColourBlue, Tickets{}, 1, nil)

	assert.Equal(t, []Move{PassMove{Colour: ColourBlue}}, moves)
}

func TestFugitiveWithNoMovesGetsNothing(t *testing.T) {
	b := mustBoard(t, lineBoard)

	moves := generateAll(b, ColourBlack, Tickets{}, 1, nil)

	assert.Empty(t, moves)
}
