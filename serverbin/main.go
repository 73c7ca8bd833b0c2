package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/quayside/manhunt/server"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rand.Seed(time.Now().Unix())

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("bad config")
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("cannot make server")
		os.Exit(1)
	}

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return srv.Run(gctx)
	})

	err = grp.Wait()
	log.Info().Err(err).Msg("server return")
	if err != nil && err != context.Canceled {
		os.Exit(1)
	}
}
