package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quayside/manhunt/game"

	rl "github.com/chzyer/readline"
)

// demoBoard is a small map for hot-seat play: a taxi ring with bus
// shortcuts, two underground lines and a ferry crossing out to the island.
const demoBoard = `{
	"nodes": {
		"1":  {"links": ["t:2", "t:8", "b:3", "u:5"]},
		"2":  {"links": ["t:3", "t:9"]},
		"3":  {"links": ["t:4", "b:5", "u:7"]},
		"4":  {"links": ["t:5", "t:10"]},
		"5":  {"links": ["t:6", "b:7"]},
		"6":  {"links": ["t:7", "t:11"]},
		"7":  {"links": ["t:8", "b:1"]},
		"8":  {"links": ["t:12"]},
		"9":  {"links": ["f:13"]},
		"10": {"links": ["t:13"]},
		"11": {"links": ["t:12"]},
		"12": {"links": []},
		"13": {"links": []}
	}
}`

// offer is a queued turn, waiting for whoever holds the keyboard.
type offer struct {
	colour game.Colour
	loc    game.Location
	moves  []game.Move
	token  string
	sink   game.MoveSink
}

// replPlayer feeds turn offers to the shared prompt loop.
type replPlayer struct {
	colour game.Colour
	offers chan offer
}

func (p *replPlayer) Notify(location game.Location, moves []game.Move, token string, sink game.MoveSink) {
	p.offers <- offer{p.colour, location, moves, token, sink}
}

// consoleSpectator prints what everyone else is allowed to see.
type consoleSpectator struct{}

func (consoleSpectator) Notify(move game.Move) {
	fmt.Printf("* %s\n", fmtMove(move))
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, err := game.ParseBoard([]byte(demoBoard))
	if err != nil {
		panic(err)
	}

	store := game.NewMemoryTokenStore()
	g := game.New("local", 2, game.StandardRounds(), board, store)
	g.Spectate(consoleSpectator{})

	offers := make(chan offer, 1)
	join := func(colour game.Colour, at game.Location, tickets game.Tickets) {
		err := g.Join(&replPlayer{colour, offers}, colour, at, tickets)
		if err != nil {
			panic(err)
		}
	}

	join(game.ColourBlue, 9, game.DefaultPursuerTickets())
	join(game.ColourBlack, 5, game.DefaultFugitiveTickets(2))
	join(game.ColourRed, 12, game.DefaultPursuerTickets())

	l, err := rl.NewEx(&rl.Config{
		Prompt:            "\033[31m»\033[0m ",
		HistoryFile:       "hist.txt",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	g.StartRound()
	gameRepl(l, g, offers)

	fmt.Printf("winners: %v\n", g.Winners())
}

func gameRepl(l *rl.Instance, g game.Game, offers chan offer) {
	rootCfg := *l.Config

	for !g.IsGameOver() {
		of := <-offers

		playerCfg := rootCfg
		playerCfg.Prompt = "\033[31m" + string(of.colour) + "»\033[0m "
		l.SetConfig(&playerCfg)

		printOffer(of)

		for {
			line, err := l.Readline()
			if err == rl.ErrInterrupt || err == io.EOF {
				return
			}

			switch line {
			case "moves":
				printOffer(of)
				continue
			case "state":
				printState(g)
				continue
			case "quit":
				return
			}

			n, err := strconv.Atoi(line)
			if err != nil || n < 0 || n >= len(of.moves) {
				fmt.Printf("pick a move number, or moves / state / quit\n")
				continue
			}

			of.sink.PlayMove(of.moves[n], of.token)
			break
		}
	}
}

func printOffer(of offer) {
	fmt.Printf("%s to move from %d:\n", of.colour, of.loc)
	for i, m := range of.moves {
		fmt.Printf("  %2d: %s\n", i, fmtMove(m))
	}
}

func printState(g game.Game) {
	fmt.Printf("round %d, last seen at %d\n", g.Round(), g.LastRevealed())
	for _, c := range g.Colours() {
		fmt.Printf("  %s at %d, tickets:", c, g.PlayerLocation(c))
		for _, t := range []game.Ticket{game.TicketTaxi, game.TicketBus, game.TicketUnderground, game.TicketSecret, game.TicketDouble} {
			if n := g.PlayerTickets(c, t); n > 0 {
				fmt.Printf(" %s=%d", t, n)
			}
		}
		fmt.Printf("\n")
	}
}

func fmtMove(move game.Move) string {
	switch m := move.(type) {
	case game.TicketMove:
		return fmt.Sprintf("%s goes by %s to %d", m.Colour, m.Ticket, m.Target)
	case game.DoubleMove:
		return fmt.Sprintf("%s doubles: by %s to %d, then by %s to %d",
			m.Colour, m.First.Ticket, m.First.Target, m.Second.Ticket, m.Second.Target)
	case game.PassMove:
		return fmt.Sprintf("%s stays put", m.Colour)
	default:
		return fmt.Sprintf("%v", move)
	}
}
