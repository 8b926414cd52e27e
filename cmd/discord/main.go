package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Joo200/piston/internal/commands"
	"github.com/Joo200/piston/internal/config"
	"github.com/Joo200/piston/internal/discord"
	"github.com/Joo200/piston/internal/logging"
	"github.com/Joo200/piston/internal/storage"
	"github.com/Joo200/piston/pkg/cmd"
	"github.com/Joo200/piston/pkg/cooldown"
)

func main() {
	log.Println("[INFO] Starting piston bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
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

	bot := discord.NewBot(cfg, manager, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
