package game

import "fmt"

// Colour identifies a player. Black is the fugitive, everyone else chases.
type Colour string

const (
	ColourBlack  Colour = "black"
	ColourBlue   Colour = "blue"
	ColourGreen  Colour = "green"
	ColourRed    Colour = "red"
	ColourWhite  Colour = "white"
	ColourYellow Colour = "yellow"
)

// Fugitive says whether this colour is the hunted player.
func (c Colour) Fugitive() bool {
	return c == ColourBlack
}

// PursuerColours lists the colours available to pursuers, in the order the
// server hands them out.
var PursuerColours = []Colour{ColourBlue, ColourGreen, ColourRed, ColourWhite, ColourYellow}

// Transport labels an edge of the board.
type Transport string

const (
	TransportTaxi        Transport = "taxi"
	TransportBus         Transport = "bus"
	TransportUnderground Transport = "underground"
	TransportFerry       Transport = "ferry"
)

// Ticket is a resource spent to make a move.
type Ticket string

const (
	TicketTaxi        Ticket = "taxi"
	TicketBus         Ticket = "bus"
	TicketUnderground Ticket = "underground"
	// TicketSecret moves by any transport without saying which. Ferry
	// crossings can only be made with it.
	TicketSecret Ticket = "secret"
	// TicketDouble lets the fugitive chain two moves into one turn.
	TicketDouble Ticket = "double"
)

// TicketFor gives the ticket that pays for a transport.
func TicketFor(t Transport) Ticket {
	switch t {
	case TransportTaxi:
		return TicketTaxi
	case TransportBus:
		return TicketBus
	case TransportUnderground:
		return TicketUnderground
	case TransportFerry:
		return TicketSecret
	default:
		panic("unknown transport " + string(t))
	}
}

// ParseTicket checks a wire string against the known ticket kinds.
func ParseTicket(s string) (Ticket, error) {
	switch t := Ticket(s); t {
	case TicketTaxi, TicketBus, TicketUnderground, TicketSecret, TicketDouble:
		return t, nil
	}
	return "", fmt.Errorf("unknown ticket: %s", s)
}

// Tickets is a pool of tickets held by one player. Counts never go below
// zero.
type Tickets map[Ticket]int

// Count gives the number held of one kind. Missing kinds count as zero.
func (t Tickets) Count(k Ticket) int {
	return t[k]
}

// Has says whether at least one ticket of the kind is held.
func (t Tickets) Has(k Ticket) bool {
	return t[k] > 0
}

func (t Tickets) take(k Ticket) {
	if t[k] > 0 {
		t[k]--
	}
}

func (t Tickets) give(k Ticket) {
	t[k]++
}

func (t Tickets) clone() Tickets {
	out := Tickets{}
	for k, n := range t {
		out[k] = n
	}
	return out
}

// StandardRounds is the classic reveal schedule: 24 fugitive moves, with
// the fugitive's location made public on moves 3, 8, 13, 18 and 24.
func StandardRounds() []bool {
	rounds := make([]bool, 25)
	for _, n := range []int{3, 8, 13, 18, 24} {
		rounds[n] = true
	}
	return rounds
}

// DefaultFugitiveTickets is the fugitive's classic starting pool for a game
// against the given number of pursuers.
func DefaultFugitiveTickets(pursuers int) Tickets {
	return Tickets{
		TicketTaxi:        4,
		TicketBus:         3,
		TicketUnderground: 3,
		TicketSecret:      pursuers,
		TicketDouble:      2,
	}
}

// DefaultPursuerTickets is a pursuer's classic starting pool.
func DefaultPursuerTickets() Tickets {
	return Tickets{
		TicketTaxi:        10,
		TicketBus:         8,
		TicketUnderground: 4,
	}
}
