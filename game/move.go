package game

// Move is something a player can do on their turn. It is a closed union:
// TicketMove, DoubleMove or PassMove. All three are comparable structs, so
// moves can be deduplicated and looked up by value.
type Move interface {
	isMove()
}

// TicketMove spends one ticket to travel to a target location.
type TicketMove struct {
	Colour Colour
	Ticket Ticket
	Target Location
}

// DoubleMove chains two ticket moves into a single turn. Only the fugitive
// can make one, and it costs a double ticket on top of the two legs.
type DoubleMove struct {
	Colour Colour
	First  TicketMove
	Second TicketMove
}

// PassMove does nothing. It is only ever offered to a pursuer with no other
// option.
type PassMove struct {
	Colour Colour
}

func (TicketMove) isMove() {}
func (DoubleMove) isMove() {}
func (PassMove) isMove()   {}

// Mover gives the colour a move belongs to.
func Mover(move Move) Colour {
	switch m := move.(type) {
	case TicketMove:
		return m.Colour
	case DoubleMove:
		return m.Colour
	case PassMove:
		return m.Colour
	default:
		panic("unknown move type")
	}
}

// playedBy says whether every colour in a move is the given one, the legs
// of a double included.
func playedBy(move Move, colour Colour) bool {
	switch m := move.(type) {
	case DoubleMove:
		return m.Colour == colour && m.First.Colour == colour && m.Second.Colour == colour
	default:
		return Mover(move) == colour
	}
}

// redact rewrites a move's targets to the given location, hiding where the
// fugitive really went.
func redact(move Move, to Location) Move {
	switch m := move.(type) {
	case TicketMove:
		m.Target = to
		return m
	case DoubleMove:
		m.First.Target = to
		m.Second.Target = to
		return m
	default:
		return move
	}
}
