package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/quayside/manhunt/comms"

	rl "github.com/chzyer/readline"
	"nhooyr.io/websocket"
)

const (
	RED     = "[31m"
	GREEN   = "[32m"
	YELLOW  = "[33m"
	BLUE    = "[34m"
	MAGENTA = "[35m"
	WHITE   = "[37m"
)

func col(s string) string {
	switch s {
	case "red":
		return RED
	case "green":
		return GREEN
	case "yellow":
		return YELLOW
	case "blue":
		return BLUE
	case "white":
		return WHITE
	case "black":
		return MAGENTA
	default:
		return "[0m"
	}
}

type Client interface {
	Run(ctx context.Context) error
}

// NewClient makes a terminal client for one seat in one game. An empty
// colour connects as a watcher.
func NewClient(server, gameID, colour string) Client {
	return &client{
		server:   server,
		gameID:   gameID,
		colour:   colour,
		offers:   NewBox(),
		updateCh: make(chan string, 100),
	}
}

type client struct {
	server string
	gameID string
	colour string

	upCh   chan comms.Message
	downCh chan comms.Message

	offers   *Box
	updateCh chan string
}

func (c *client) Run(ctx context.Context) error {
	url := fmt.Sprintf("ws://%s/ws?game=%s&colour=%s", c.server, c.gameID, c.colour)

	socket, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		Subprotocols: []string{"comms"},
	})
	if err != nil {
		return err
	}
	defer socket.Close(websocket.StatusInternalError, "the sky is falling")

	msg, err := readMessage(ctx, socket)
	if err != nil {
		return err
	}
	res := comms.ConnectResponse{}
	err = comms.Decode(msg, &res)
	if err != nil {
		return err
	}
	if res.Err != nil {
		return res.Err
	}

	c.upCh = make(chan comms.Message, 1)
	defer close(c.upCh)
	c.downCh = make(chan comms.Message, 1)

	go func() {
		// read upCh, write to conn
		for msg := range c.upCh {
			err := sendMessage(ctx, socket, msg)
			if err != nil {
				fmt.Printf("send error: %v\n", err)
				break
			}
		}
	}()

	go func() {
		defer close(c.downCh)

		// read conn, write to downCh
		for {
			msg, err := readMessage(ctx, socket)
			if err != nil {
				if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
					break
				}
				fmt.Printf("read error: %v\n", err)
				break
			}
			c.downCh <- msg
		}
	}()

	stopUI, err := c.startUI()
	if err != nil {
		return err
	}
	defer stopUI()

	// this is the client's main loop
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case msg, ok := <-c.downCh:
			if !ok {
				fmt.Printf("down channel closed\n")
				break loop
			}

			f := msg.Head.Fields()
			switch f[0] {
			case "turn":
				offer := comms.TurnOffer{}
				err := comms.Decode(msg, &offer)
				if err != nil {
					fmt.Printf("bad turn message: %v\n", err)
					continue
				}
				c.offers.Put(&offer)
				c.pushUpdate("your turn")
			case "move":
				move := comms.WireMove{}
				err := comms.Decode(msg, &move)
				if err != nil {
					continue
				}
				c.pushUpdate(fmtWireMove(move))
			case "text":
				text := comms.TextMessage{}
				err := comms.Decode(msg, &text)
				if err != nil {
					continue
				}
				c.pushUpdate(fmt.Sprintf("%s: %s", text.Who, text.Text))
			case "deleted":
				fmt.Printf("\ngame deleted by the server\n")
				break loop
			case "over":
				over := comms.GameOver{}
				err := comms.Decode(msg, &over)
				if err != nil {
					continue
				}
				fmt.Printf("\ngame over, winners: %v\n", over.Winners)
				break loop
			}
		}
	}

	return nil
}

func (c *client) pushUpdate(s string) {
	select {
	case c.updateCh <- s:
	default:
		// very chatty game
	}
}

func (c *client) printUpdates() {
	for {
		select {
		case m := <-c.updateCh:
			fmt.Println(">", m)
		default:
			return
		}
	}
}

func (c *client) followUpdates() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for {
		select {
		case m := <-c.updateCh:
			fmt.Println(">", m)
		case <-ctx.Done():
			return
		}
	}
}

func (c *client) startUI() (func() error, error) {
	completer := rl.NewPrefixCompleter(
		rl.PcItem("moves"),
		rl.PcItem("send"),
		rl.PcItem("follow"),
		rl.PcItem("quit"),
	)

	l, err := rl.NewEx(&rl.Config{
		Prompt:            "» ",
		HistoryFile:       "hist.txt",
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}

	go func() {
		defer l.Close()
		c.gameRepl(l)
	}()

	return l.Close, nil
}

func (c *client) gameRepl(l *rl.Instance) {
	for {
		offer, _ := c.offers.Get().(*comms.TurnOffer)
		if offer != nil {
			prompt := fmt.Sprintf("\033%s%s !»\033[0m ", col(c.colour), c.colour)
			l.SetPrompt(prompt)
		} else {
			prompt := fmt.Sprintf("\033%s%s»\033[0m ", col(c.colour), c.colour)
			l.SetPrompt(prompt)
		}

		c.printUpdates()

		line, err := l.Readline()
		if err == rl.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		} else if err == io.EOF {
			return
		}

		parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
		cmd := parts[0]
		rest := ""
		if len(parts) == 2 {
			rest = parts[1]
		}

		switch cmd {
		case "moves":
			if offer == nil {
				fmt.Printf("not your turn\n")
				continue
			}
			printOffer(offer)
		case "send":
			msg, err := comms.Encode("text", rest)
			if err != nil {
				continue
			}
			c.upCh <- msg
		case "follow":
			c.printUpdates()
			c.followUpdates()
		case "quit":
			return
		case "":
			if offer != nil {
				printOffer(offer)
			}
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil {
				fmt.Printf("pick a move number, or moves / send / follow / quit\n")
				continue
			}
			if offer == nil {
				fmt.Printf("not your turn\n")
				continue
			}
			if n < 0 || n >= len(offer.Moves) {
				fmt.Printf("no move %d\n", n)
				continue
			}

			sub := comms.Submission{Move: offer.Moves[n], Token: offer.Token}
			msg, err := comms.Encode("play", sub)
			if err != nil {
				fmt.Printf("encode error: %v\n", err)
				continue
			}
			c.upCh <- msg
			c.offers.Put(nil)
		}
	}
}

func printOffer(offer *comms.TurnOffer) {
	fmt.Printf("your move from %d:\n", offer.Location)
	for i, m := range offer.Moves {
		fmt.Printf("  %2d: %s\n", i, fmtWireMove(m))
	}
}

func fmtWireMove(w comms.WireMove) string {
	switch w.Type {
	case "ticket":
		return fmt.Sprintf("%s goes by %s to %d", w.Colour, w.Ticket, w.Target)
	case "double":
		if w.First == nil || w.Second == nil {
			return fmt.Sprintf("%s doubles", w.Colour)
		}
		return fmt.Sprintf("%s doubles: by %s to %d, then by %s to %d",
			w.Colour, w.First.Ticket, w.First.Target, w.Second.Ticket, w.Second.Target)
	case "pass":
		return fmt.Sprintf("%s stays put", w.Colour)
	default:
		return fmt.Sprintf("%v", w)
	}
}
