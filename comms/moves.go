package comms

import (
	"fmt"

	"github.com/quayside/manhunt/game"
)

// WireMove is the JSON shape of a move. Type is "ticket", "double" or
// "pass"; First/Second are only set on doubles.
type WireMove struct {
	Type   string    `json:"type"`
	Colour string    `json:"colour"`
	Ticket string    `json:"ticket,omitempty"`
	Target int       `json:"target,omitempty"`
	First  *WireMove `json:"first,omitempty"`
	Second *WireMove `json:"second,omitempty"`
}

// EncodeMove flattens a move for the wire.
func EncodeMove(move game.Move) WireMove {
	switch m := move.(type) {
	case game.TicketMove:
		return WireMove{
			Type:   "ticket",
			Colour: string(m.Colour),
			Ticket: string(m.Ticket),
			Target: int(m.Target),
		}
	case game.DoubleMove:
		first := EncodeMove(m.First)
		second := EncodeMove(m.Second)
		return WireMove{
			Type:   "double",
			Colour: string(m.Colour),
			First:  &first,
			Second: &second,
		}
	case game.PassMove:
		return WireMove{Type: "pass", Colour: string(m.Colour)}
	default:
		panic("unknown move type")
	}
}

// EncodeMoves flattens a move list for the wire.
func EncodeMoves(moves []game.Move) []WireMove {
	out := make([]WireMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, EncodeMove(m))
	}
	return out
}

// DecodeMove rebuilds a move from its wire shape.
func DecodeMove(w WireMove) (game.Move, error) {
	colour := game.Colour(w.Colour)
	switch w.Type {
	case "ticket":
		ticket, err := game.ParseTicket(w.Ticket)
		if err != nil {
			return nil, err
		}
		return game.TicketMove{
			Colour: colour,
			Ticket: ticket,
			Target: game.Location(w.Target),
		}, nil
	case "double":
		if w.First == nil || w.Second == nil {
			return nil, fmt.Errorf("double move missing a leg")
		}
		first, err := DecodeMove(*w.First)
		if err != nil {
			return nil, err
		}
		second, err := DecodeMove(*w.Second)
		if err != nil {
			return nil, err
		}
		m1, ok := first.(game.TicketMove)
		if !ok {
			return nil, fmt.Errorf("double move first leg is not a ticket move")
		}
		m2, ok := second.(game.TicketMove)
		if !ok {
			return nil, fmt.Errorf("double move second leg is not a ticket move")
		}
		return game.DoubleMove{Colour: colour, First: m1, Second: m2}, nil
	case "pass":
		return game.PassMove{Colour: colour}, nil
	default:
		return nil, fmt.Errorf("unknown move type: %s", w.Type)
	}
}
