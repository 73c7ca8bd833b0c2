package game

// GenerateMoves produces every single-ticket move a player can make from a
// location: one move per reachable neighbour whose ticket is held and whose
// target is not forbidden, plus a secret-ticket twin of each non-secret
// move when a secret ticket is held. No two returned moves are equal.
func GenerateMoves(b Board, colour Colour, tickets Tickets, from Location, forbidden map[Location]bool) []TicketMove {
	var out []TicketMove
	seen := map[TicketMove]bool{}

	add := func(m TicketMove) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	for _, edge := range b.Neighbours(from) {
		if forbidden[edge.To] {
			continue
		}
		ticket := TicketFor(edge.By)
		if !tickets.Has(ticket) {
			continue
		}
		add(TicketMove{Colour: colour, Ticket: ticket, Target: edge.To})
	}

	if tickets.Has(TicketSecret) {
		// travel disguised: any reachable target can also be reached on a
		// secret ticket. Ferry moves already use one, so they get no twin.
		for _, m := range out {
			if m.Ticket == TicketSecret {
				continue
			}
			add(TicketMove{Colour: colour, Ticket: TicketSecret, Target: m.Target})
		}
	}

	return out
}

// generateAll is the full legal-move set for one player: singles, then for
// the fugitive with a double ticket every distinct two-leg combination, and
// for a pursuer with nothing else the lone pass.
func generateAll(b Board, colour Colour, tickets Tickets, from Location, forbidden map[Location]bool) []Move {
	singles := GenerateMoves(b, colour, tickets, from, forbidden)

	var out []Move
	for _, m := range singles {
		out = append(out, m)
	}

	if colour.Fugitive() && tickets.Has(TicketDouble) {
		seen := map[DoubleMove]bool{}
		for _, first := range singles {
			// spend the first leg's ticket, see what is left for the second
			tickets.take(first.Ticket)
			seconds := GenerateMoves(b, colour, tickets, first.Target, forbidden)
			tickets.give(first.Ticket)

			for _, second := range seconds {
				dm := DoubleMove{Colour: colour, First: first, Second: second}
				if seen[dm] {
					continue
				}
				seen[dm] = true
				out = append(out, dm)
			}
		}
	}

	if len(out) == 0 && !colour.Fugitive() {
		out = append(out, PassMove{Colour: colour})
	}

	return out
}
