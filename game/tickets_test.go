package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketForTransport(t *testing.T) {
	assert.Equal(t, TicketTaxi, TicketFor(TransportTaxi))
	assert.Equal(t, TicketBus, TicketFor(TransportBus))
	assert.Equal(t, TicketUnderground, TicketFor(TransportUnderground))
	// ferry crossings are always secret
	assert.Equal(t, TicketSecret, TicketFor(TransportFerry))
}

func TestParseTicket(t *testing.T) {
	ticket, err := ParseTicket("secret")
	assert.NoError(t, err)
	assert.Equal(t, TicketSecret, ticket)

	_, err = ParseTicket("tram")
	assert.Error(t, err)
}

func TestTicketsNeverGoNegative(t *testing.T) {
	tickets := Tickets{TicketTaxi: 1}
	tickets.take(TicketTaxi)
	tickets.take(TicketTaxi)
	assert.Equal(t, 0, tickets.Count(TicketTaxi))
	assert.False(t, tickets.Has(TicketTaxi))
}

func TestTicketsCloneIsIndependent(t *testing.T) {
	tickets := Tickets{TicketTaxi: 2}
	clone := tickets.clone()
	clone.take(TicketTaxi)
	assert.Equal(t, 2, tickets.Count(TicketTaxi))
	assert.Equal(t, 1, clone.Count(TicketTaxi))
}

func TestStandardRounds(t *testing.T) {
	rounds := StandardRounds()
	assert.Len(t, rounds, 25)

	var flagged []int
	for n, reveal := range rounds {
		if reveal {
			flagged = append(flagged, n)
		}
	}
	assert.Equal(t, []int{3, 8, 13, 18, 24}, flagged)
}
