package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/quayside/manhunt/comms"
	"github.com/quayside/manhunt/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Server hosts any number of games behind one web gateway.
type Server interface {
	Run(ctx context.Context) error
}

// NewServer loads the board and sets up an empty server.
func NewServer(cfg Config) (Server, error) {
	board, err := game.LoadBoard(cfg.BoardFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load board: %w", err)
	}

	return &server{
		cfg:    cfg,
		board:  board,
		store:  game.NewMemoryTokenStore(),
		games:  map[string]*oneGame{},
		coreCh: make(chan interface{}, 100),
	}, nil
}

type oneGame struct {
	name     string
	game     game.Game
	pursuers int
	// connected sockets, keyed by colour or watcher id
	clients map[string]*clientBundle
	// start locations already handed out
	used map[game.Location]bool
	log  zerolog.Logger
}

// attach records a client connection, closing out any previous one using
// the same key so its writer pump does not leak.
func (g *oneGame) attach(key string, c clientBundle) {
	if old, ok := g.clients[key]; ok {
		close(old.downCh)
	}
	g.clients[key] = &c
}

type server struct {
	cfg    Config
	board  *game.GraphBoard
	store  game.TokenStore
	games  map[string]*oneGame
	coreCh chan interface{}
}

func (s *server) Run(ctx context.Context) error {
	log.Info().Msg("server running")
	defer log.Info().Msg("server stopping")

	if err := runWebGateway(ctx, s, s.cfg.Addr); err != nil {
		return err
	}

	// this is the server's main loop; all game access happens here
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-s.coreCh:
			s.processMessage(in)
		}
	}
}

func (s *server) processMessage(in interface{}) {
	switch msg := in.(type) {
	case listGamesMsg:
		list := []string{}
		for gameId := range s.games {
			list = append(list, gameId)
		}
		msg.Rep <- list
	case createGameMsg:
		msg.Rep <- s.createGame(msg.Name, msg.Pursuers)
	case queryGameMsg:
		g, exists := s.games[msg.Name]
		if !exists {
			msg.Rep <- nil
			return
		}
		msg.Rep <- describeGame(g)
	case deleteGameMsg:
		g, exists := s.games[msg.Name]
		if !exists {
			msg.Rep <- errors.New("game not found")
			return
		}
		out, err := comms.Encode("deleted", nil)
		if err == nil {
			s.broadcast(g, out)
		}
		for _, c := range g.clients {
			close(c.downCh)
		}
		g.clients = map[string]*clientBundle{}
		delete(s.games, msg.Name)
		g.log.Info().Msg("deleted")
		msg.Rep <- nil
	case connectMsg:
		msg.Rep <- s.connect(msg)
	case disconnectMsg:
		g, ok := s.games[msg.Game]
		if !ok {
			return
		}
		c, ok := g.clients[msg.Key]
		if !ok {
			return
		}
		g.log.Info().Msgf("client gone: %s", msg.Key)
		delete(g.clients, msg.Key)
		// all sends happen on this goroutine, so closing here is safe and
		// lets the socket's writer pump finish
		close(c.downCh)
	case textFromUser:
		g, ok := s.games[msg.Game]
		if !ok {
			return
		}
		out, err := comms.Encode("text", comms.TextMessage{Who: msg.Who, Text: msg.Text})
		if err != nil {
			g.log.Error().Err(err).Msg("failed to encode text")
			return
		}
		s.broadcast(g, out)
	case playFromUser:
		s.play(msg)
	default:
		log.Warn().Msgf("nonsense in core: %#v", in)
	}
}

func (s *server) createGame(name string, pursuers int) error {
	log := log.With().Str("game", name).Logger()

	if _, exists := s.games[name]; exists {
		return errors.New("name conflict")
	}
	if pursuers < 1 || pursuers > len(game.PursuerColours) {
		return fmt.Errorf("pursuers must be 1 to %d", len(game.PursuerColours))
	}

	g := &oneGame{
		name:     name,
		pursuers: pursuers,
		clients:  map[string]*clientBundle{},
		used:     map[game.Location]bool{},
		log:      log,
	}
	g.game = game.New(name, pursuers, game.StandardRounds(), s.board, s.store)
	g.game.Spectate(&gameRelay{server: s, g: g})

	s.games[name] = g

	log.Info().Int("pursuers", pursuers).Msg("created")
	return nil
}

func (s *server) connect(msg connectMsg) error {
	g, ok := s.games[msg.Game]
	if !ok {
		return errors.New("game not found")
	}

	if msg.Colour == "" {
		// just watching
		g.attach(msg.Key, msg.Client)
		return nil
	}

	colour, err := parseColour(msg.Colour)
	if err != nil {
		return err
	}

	if g.game.HasJoined(colour) {
		// assume this is the same player coming back
		g.attach(msg.Key, msg.Client)
		if g.game.IsReady() && !g.game.IsGameOver() && g.game.CurrentPlayer() == colour {
			// re-offer the turn; the fresh token kills the old offer
			g.game.StartRound()
		}
		return nil
	}

	start, err := s.pickStart(g)
	if err != nil {
		return err
	}

	tickets := game.DefaultPursuerTickets()
	if colour.Fugitive() {
		tickets = game.DefaultFugitiveTickets(g.pursuers)
	}

	err = g.game.Join(&wsPlayer{g: g, colour: colour}, colour, start, tickets)
	if err != nil {
		return err
	}
	g.used[start] = true
	g.attach(msg.Key, msg.Client)

	if g.game.IsReady() {
		g.log.Info().Msg("roster full, starting")
		g.game.StartRound()
	}
	return nil
}

func (s *server) play(msg playFromUser) {
	g, ok := s.games[msg.Game]
	if !ok {
		return
	}

	move, err := comms.DecodeMove(msg.Move)
	if err != nil {
		g.log.Info().Err(err).Msgf("bad move from %s", msg.Who)
		return
	}

	g.game.PlayMove(move, msg.Token)

	if g.game.IsGameOver() {
		winners := []string{}
		for _, c := range g.game.Winners() {
			winners = append(winners, string(c))
		}
		out, err := comms.Encode("over", comms.GameOver{Winners: winners})
		if err != nil {
			g.log.Error().Err(err).Msg("failed to encode game over")
			return
		}
		s.broadcast(g, out)
	}
}

// pickStart finds a random free location for a joining player.
func (s *server) pickStart(g *oneGame) (game.Location, error) {
	locations := s.board.Locations()
	if len(g.used) >= len(locations) {
		return 0, errors.New("board is full")
	}
	for {
		l := locations[rand.Intn(len(locations))]
		if !g.used[l] {
			return l, nil
		}
	}
}

func (s *server) broadcast(g *oneGame, msg comms.Message) {
	for key, c := range g.clients {
		select {
		case c.downCh <- msg:
		default:
			// client lagging
			g.log.Info().Msgf("client lagging: %s", key)
		}
	}
}

func describeGame(g *oneGame) *GameInfo {
	players := []string{}
	locations := map[string]int{}
	for _, c := range g.game.Colours() {
		players = append(players, string(c))
		locations[string(c)] = int(g.game.PlayerLocation(c))
	}
	info := &GameInfo{
		Name:      g.name,
		Players:   players,
		Ready:     g.game.IsReady(),
		Over:      g.game.IsGameOver(),
		Round:     g.game.Round(),
		Playing:   string(g.game.CurrentPlayer()),
		Locations: locations,
	}
	if info.Over {
		for _, c := range g.game.Winners() {
			info.Winners = append(info.Winners, string(c))
		}
	}
	return info
}

func parseColour(s string) (game.Colour, error) {
	c := game.Colour(s)
	if c == game.ColourBlack {
		return c, nil
	}
	for _, p := range game.PursuerColours {
		if c == p {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown colour: %s", s)
}

// Connect attaches a websocket client to a game, joining it as a player
// when a colour is given.
func (s *server) Connect(gameId, colour, key string, client clientBundle) error {
	resCh := make(chan error)
	s.coreCh <- connectMsg{gameId, colour, key, client, resCh}
	return <-resCh
}

func (s *server) ListGames() []string {
	resCh := make(chan []string)
	s.coreCh <- listGamesMsg{resCh}
	return <-resCh
}

func (s *server) CreateGame(name string, pursuers int) error {
	resCh := make(chan error)
	s.coreCh <- createGameMsg{name, pursuers, resCh}
	return <-resCh
}

func (s *server) QueryGame(name string) *GameInfo {
	resCh := make(chan *GameInfo)
	s.coreCh <- queryGameMsg{name, resCh}
	return <-resCh
}

func (s *server) DeleteGame(name string) error {
	resCh := make(chan error)
	s.coreCh <- deleteGameMsg{name, resCh}
	return <-resCh
}
