package game

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
)

// Player is a handle for telling someone it is their turn. Notify hands
// over the player's true location, the full legal-move set, and a one-shot
// token; the move comes back through the sink with the same token.
// Implementations must not block.
type Player interface {
	Notify(location Location, moves []Move, token string, sink MoveSink)
}

// MoveSink receives a move picked by a player. A move presented with a
// token that is not the live one for the game is silently dropped.
type MoveSink interface {
	PlayMove(move Move, token string)
}

// Spectator sees every applied move, with the fugitive's targets rewritten
// to his last revealed location. Implementations must not block.
type Spectator interface {
	Notify(move Move)
}

// Game runs one pursuit from roster assembly to a winner.
type Game interface {
	MoveSink

	// activities
	Join(p Player, colour Colour, location Location, tickets Tickets) error
	StartRound()

	// observers
	Spectate(s Spectator)
	UnregisterSpectator(s Spectator)

	// general state
	Colours() []Colour
	HasJoined(colour Colour) bool
	IsReady() bool
	IsGameOver() bool
	Winners() []Colour
	CurrentPlayer() Colour
	Round() int
	Rounds() []bool
	LastRevealed() Location
	PlayerLocation(colour Colour) Location
	PlayerTickets(colour Colour, ticket Ticket) int
	ValidMoves(colour Colour) []Move
}

type playerData struct {
	colour   Colour
	location Location
	tickets  Tickets
	handle   Player
}

type gameState struct {
	id       string
	board    Board
	rounds   []bool
	pursuers int
	store    TokenStore

	mu           sync.Mutex
	players      []*playerData // fugitive always at index 0
	byColour     map[Colour]*playerData
	joined       int
	round        int
	turnIdx      int
	lastRevealed Location
	spectators   []Spectator
	outbox       []Move

	log zerolog.Logger
}

// New constructs a game for one fugitive plus the given number of
// pursuers. The board, reveal schedule and token store are fixed for the
// life of the game. Nothing happens until the roster fills and StartRound
// is called.
func New(id string, pursuers int, rounds []bool, board Board, store TokenStore) Game {
	return &gameState{
		id:       id,
		board:    board,
		rounds:   rounds,
		pursuers: pursuers,
		store:    store,
		byColour: map[Colour]*playerData{},
		log:      log.With().Str("game", id).Logger(),
	}
}

// Join adds a player to the roster. The fugitive goes to the front of the
// turn order no matter when he joins.
func (g *gameState) Join(p Player, colour Colour, location Location, tickets Tickets) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.joined > g.pursuers {
		return ErrGameFull
	}
	if _, taken := g.byColour[colour]; taken {
		return ErrColourTaken
	}

	pd := &playerData{
		colour:   colour,
		location: location,
		tickets:  tickets.clone(),
		handle:   p,
	}
	if colour.Fugitive() {
		g.players = append([]*playerData{pd}, g.players...)
	} else {
		g.players = append(g.players, pd)
	}
	g.byColour[colour] = pd
	g.joined++

	g.log.Info().Str("colour", string(colour)).Int("location", int(location)).Msg("player joined")
	return nil
}

// StartRound offers the current player their turn. It is a no-op while the
// roster is incomplete, and once the game is over.
func (g *gameState) StartRound() {
	g.mu.Lock()
	n := g.startRoundLocked()
	out, specs := g.takeOutboxLocked()
	g.mu.Unlock()

	g.deliver(out, specs, n)
}

// PlayMove accepts a move if and only if the token matches the live
// authorization for this game and the move is played as the colour the
// token was minted for. Anything else is dropped without comment: the
// submitter lost the turn race, is replaying an old offer, or is making
// moves up. A mismatched colour does not spend the token, so the real
// actor can still play.
func (g *gameState) PlayMove(move Move, token string) {
	g.mu.Lock()

	auth, ok := g.store.Get(g.id)
	if !ok || auth.Token != token {
		g.mu.Unlock()
		g.log.Debug().Msg("dropping move with dead token")
		return
	}
	if !playedBy(move, auth.Colour) {
		g.mu.Unlock()
		g.log.Debug().Msg("dropping move with wrong colour")
		return
	}
	g.store.Remove(g.id)

	g.applyLocked(move)
	g.turnIdx = (g.turnIdx + 1) % len(g.players)

	if g.gameOverLocked() {
		g.log.Info().Interface("winners", g.winnersLocked()).Msg("game over")
	}

	n := g.startRoundLocked()
	out, specs := g.takeOutboxLocked()
	g.mu.Unlock()

	g.deliver(out, specs, n)
}

// turnNotice is a turn offer computed under the lock and delivered after
// it is released, so a handle may call straight back into PlayMove.
type turnNotice struct {
	handle Player
	loc    Location
	moves  []Move
	token  string
}

func (g *gameState) startRoundLocked() *turnNotice {
	if !g.readyLocked() || g.gameOverLocked() {
		return nil
	}

	// an already-due reveal covers the fugitive's starting location when
	// the schedule flags round zero
	if g.round < len(g.rounds) && g.rounds[g.round] {
		g.lastRevealed = g.fugitiveLocked().location
	}

	pd := g.players[g.turnIdx]
	token := uuid.NewV4().String()
	g.store.Put(g.id, Authorization{Token: token, Colour: pd.colour, Issued: time.Now()})

	return &turnNotice{
		handle: pd.handle,
		loc:    pd.location,
		moves:  g.validMovesLocked(pd.colour),
		token:  token,
	}
}

func (g *gameState) deliver(out []Move, specs []Spectator, n *turnNotice) {
	for _, move := range out {
		for _, s := range specs {
			s.Notify(move)
		}
	}
	if n != nil {
		n.handle.Notify(n.loc, n.moves, n.token, g)
	}
}

func (g *gameState) applyLocked(move Move) {
	switch m := move.(type) {
	case TicketMove:
		pd := g.byColour[m.Colour]
		pd.location = m.Target
		pd.tickets.take(m.Ticket)
		if m.Colour.Fugitive() {
			// the spent ticket leaves circulation
			g.round++
			if g.round < len(g.rounds) && g.rounds[g.round] {
				g.lastRevealed = pd.location
			}
		} else {
			// a pursuer's ticket goes back to the fugitive's pool
			g.fugitiveLocked().tickets.give(m.Ticket)
		}
		g.broadcastLocked(move)
	case DoubleMove:
		g.byColour[m.Colour].tickets.take(TicketDouble)
		g.broadcastLocked(move)
		g.applyLocked(m.First)
		g.applyLocked(m.Second)
	case PassMove:
		g.broadcastLocked(move)
	}
}

// broadcastLocked queues a move for the spectators, hiding the fugitive's
// real targets behind his last revealed location.
func (g *gameState) broadcastLocked(move Move) {
	if Mover(move).Fugitive() {
		move = redact(move, g.lastRevealed)
	}
	g.outbox = append(g.outbox, move)
}

func (g *gameState) takeOutboxLocked() ([]Move, []Spectator) {
	out := g.outbox
	g.outbox = nil
	specs := make([]Spectator, len(g.spectators))
	copy(specs, g.spectators)
	return out, specs
}

func (g *gameState) validMovesLocked(colour Colour) []Move {
	pd := g.byColour[colour]
	if pd == nil {
		return nil
	}

	// every pursuer's square is out of bounds, for everyone
	forbidden := map[Location]bool{}
	for _, p := range g.players {
		if !p.colour.Fugitive() {
			forbidden[p.location] = true
		}
	}

	return generateAll(g.board, colour, pd.tickets, pd.location, forbidden)
}

func (g *gameState) fugitiveLocked() *playerData {
	return g.byColour[ColourBlack]
}

func (g *gameState) readyLocked() bool {
	if g.joined != g.pursuers+1 {
		return false
	}
	return len(g.players) > 0 && g.players[0].colour.Fugitive()
}

func (g *gameState) caughtLocked() bool {
	fug := g.fugitiveLocked()
	for _, pd := range g.players {
		if !pd.colour.Fugitive() && pd.location == fug.location {
			return true
		}
	}
	return false
}

func (g *gameState) gameOverLocked() bool {
	if !g.readyLocked() {
		return false
	}
	if len(g.players) < 2 {
		return true
	}
	if g.caughtLocked() {
		return true
	}
	// the fugitive's turn again with no move slots left
	if g.players[g.turnIdx].colour.Fugitive() && g.round >= len(g.rounds)-1 {
		return true
	}
	aPursuerCanMove := false
	for _, pd := range g.players {
		if pd.colour.Fugitive() {
			continue
		}
		moves := g.validMovesLocked(pd.colour)
		if _, pass := moves[0].(PassMove); !pass {
			aPursuerCanMove = true
			break
		}
	}
	if !aPursuerCanMove {
		return true
	}
	return len(g.validMovesLocked(ColourBlack)) == 0
}

func (g *gameState) winnersLocked() []Colour {
	if !g.gameOverLocked() {
		return nil
	}
	if g.caughtLocked() || len(g.validMovesLocked(ColourBlack)) == 0 {
		var out []Colour
		for _, pd := range g.players {
			if !pd.colour.Fugitive() {
				out = append(out, pd.colour)
			}
		}
		return out
	}
	return []Colour{ColourBlack}
}

func (g *gameState) Spectate(s Spectator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spectators = append(g.spectators, s)
}

func (g *gameState) UnregisterSpectator(s Spectator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, x := range g.spectators {
		if x == s {
			g.spectators = append(g.spectators[:i], g.spectators[i+1:]...)
			return
		}
	}
}

// Colours lists the joined players in play order, fugitive first.
func (g *gameState) Colours() []Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Colour
	for _, pd := range g.players {
		out = append(out, pd.colour)
	}
	return out
}

func (g *gameState) HasJoined(colour Colour) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.byColour[colour]
	return ok
}

func (g *gameState) IsReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.readyLocked()
}

func (g *gameState) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOverLocked()
}

// Winners is only meaningful once the game is over; before that it is nil.
func (g *gameState) Winners() []Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winnersLocked()
}

func (g *gameState) CurrentPlayer() Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.players) == 0 {
		return ""
	}
	return g.players[g.turnIdx].colour
}

// Round is the number of single legs the fugitive has completed. A double
// move counts twice.
func (g *gameState) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

func (g *gameState) Rounds() []bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]bool, len(g.rounds))
	copy(out, g.rounds)
	return out
}

// LastRevealed is where the fugitive last showed himself, or 0 if he never
// has.
func (g *gameState) LastRevealed() Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastRevealed
}

// PlayerLocation is a player's publicly visible location: the true one for
// a pursuer, the last revealed one for the fugitive.
func (g *gameState) PlayerLocation(colour Colour) Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	if colour.Fugitive() {
		return g.lastRevealed
	}
	pd := g.byColour[colour]
	if pd == nil {
		return 0
	}
	return pd.location
}

func (g *gameState) PlayerTickets(colour Colour, ticket Ticket) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	pd := g.byColour[colour]
	if pd == nil {
		return 0
	}
	return pd.tickets.Count(ticket)
}

// ValidMoves is the full legal-move set for a colour right now.
func (g *gameState) ValidMoves(colour Colour) []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.validMovesLocked(colour)
}
