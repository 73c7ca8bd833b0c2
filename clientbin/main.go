package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/quayside/manhunt/client"
)

func main() {
	server := flag.String("server", "localhost:1235", "server host:port")
	gameID := flag.String("game", "", "game id to join")
	colour := flag.String("colour", "", "colour to play, empty to watch")
	flag.Parse()

	if *gameID == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -game <id> [-colour <colour>] [-server <host:port>]\n", os.Args[0])
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.NewClient(*server, *gameID, *colour)
	err := c.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
