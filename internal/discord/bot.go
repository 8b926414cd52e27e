// Package discord hosts the command engine on a Discord session: guild and
// direct messages starting with the configured prefix are tokenized and
// dispatched, and all command output is sent back as replies.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/Joo200/piston/internal/commands"
	"github.com/Joo200/piston/internal/config"
	"github.com/Joo200/piston/internal/tokenize"
	"github.com/Joo200/piston/pkg/cmd"
)

// Bot is the Discord host.
type Bot struct {
	cfg     *config.Config
	manager *cmd.Manager
	log     zerolog.Logger
	dg      *discordgo.Session
}

// NewBot wires a manager to a Discord account. Run must be called to connect.
func NewBot(cfg *config.Config, manager *cmd.Manager, log zerolog.Logger) *Bot {
	return &Bot{cfg: cfg, manager: manager, log: log}
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Str("prefix", b.cfg.Prefix).
		Msg("discord bot is running")
}

// onMessageCreate dispatches prefixed messages as commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	line, ok := strings.CutPrefix(m.Content, b.cfg.Prefix)
	if !ok {
		return
	}
	tokens := tokenize.Split(line)
	if len(tokens) == 0 {
		return
	}

	reply := func(text string) {
		if _, err := s.ChannelMessageSend(m.ChannelID, text); err != nil {
			b.log.Error().Err(err).Str("channel", m.ChannelID).Msg("failed to send reply")
		}
	}
	ctx := commands.WithPrinter(context.Background(), reply)

	_, err := b.manager.Dispatch(ctx, tokens)
	if err == nil {
		return
	}

	var usage *cmd.UsageError
	var cond *cmd.ConditionError
	var stop *cmd.StopError
	switch {
	case errors.As(err, &usage):
		if usage.Cmd != nil {
			reply(fmt.Sprintf("%s\nusage: %s%s", usage.Message, b.cfg.Prefix, usage.Cmd.Usage()))
		} else {
			reply(usage.Message)
		}
	case errors.As(err, &cond):
		reply(fmt.Sprintf("%s is not available right now", cond.Cmd.Name()))
	case errors.As(err, &stop):
		reply(stop.Message)
	default:
		b.log.Error().Err(err).Str("command", tokens[0]).Msg("command error")
		reply(fmt.Sprintf("error: %v", err))
	}
}
