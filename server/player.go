package server

import (
	"github.com/quayside/manhunt/comms"
	"github.com/quayside/manhunt/game"
)

// wsPlayer is a game.Player backed by whichever websocket is currently
// attached for its colour. Offers to a disconnected player are dropped; a
// reconnect triggers a fresh offer.
type wsPlayer struct {
	g      *oneGame
	colour game.Colour
}

func (p *wsPlayer) Notify(location game.Location, moves []game.Move, token string, sink game.MoveSink) {
	c, ok := p.g.clients[string(p.colour)]
	if !ok {
		p.g.log.Info().Msgf("current player not connected: %s", p.colour)
		return
	}

	offer := comms.TurnOffer{
		Location: int(location),
		Moves:    comms.EncodeMoves(moves),
		Token:    token,
	}
	msg, err := comms.Encode("turn", offer)
	if err != nil {
		p.g.log.Error().Err(err).Msg("failed to encode turn")
		return
	}

	select {
	case c.downCh <- msg:
	default:
		// client lagging
		p.g.log.Info().Msgf("client lagging: %s", p.colour)
	}
}

// gameRelay is a game.Spectator that republishes every applied move, as
// the engine redacted it, to everyone attached to the game.
type gameRelay struct {
	server *server
	g      *oneGame
}

func (r *gameRelay) Notify(move game.Move) {
	msg, err := comms.Encode("move", comms.EncodeMove(move))
	if err != nil {
		r.g.log.Error().Err(err).Msg("failed to encode move")
		return
	}
	r.server.broadcast(r.g, msg)
}
