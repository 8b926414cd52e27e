package main

import (
	"context"
	"log"
	"os"

	"github.com/Joo200/piston/internal/commands"
	"github.com/Joo200/piston/internal/config"
	"github.com/Joo200/piston/internal/console"
	"github.com/Joo200/piston/internal/logging"
	"github.com/Joo200/piston/internal/storage"
	"github.com/Joo200/piston/pkg/cmd"
	"github.com/Joo200/piston/pkg/cooldown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	logger := logging.New(cfg.LogPath)

	manager := cmd.NewManager()
	manager.Subscribe(&logging.CommandLog{Log: logger})
	manager.Subscribe(&storage.Recorder{Store: store})

	deps := commands.Deps{
		Manager: manager,
		Store:   store,
		Gate:    cooldown.New(cfg.CommandsPerMinute, cfg.CommandBurst),
	}
	if err := commands.Register(deps); err != nil {
		log.Fatal(err)
	}

	c := &console.Console{Manager: manager, In: os.Stdin, Out: os.Stdout}
	if err := c.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
