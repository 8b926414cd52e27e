// Package logging sets up the host logger and provides the listener that
// writes one structured line per command invocation.
package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Joo200/piston/pkg/cmd"
)

// New builds the host logger: human-readable console output plus a
// size-rotated JSON file.
func New(path string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return zerolog.New(zerolog.MultiLevelWriter(console, file)).With().Timestamp().Logger()
}

// CommandLog is a cmd.Listener logging every invocation outcome.
type CommandLog struct {
	Log zerolog.Logger
}

func (l *CommandLog) BeforeCall(ctx context.Context, p *cmd.Parameters) {
	l.Log.Debug().
		Str("command", p.Command().Name()).
		Msg("command started")
}

func (l *CommandLog) AfterCall(ctx context.Context, p *cmd.Parameters, status int) {
	l.Log.Info().
		Str("command", p.Command().Name()).
		Int("status", status).
		Msg("command finished")
}

func (l *CommandLog) AfterThrow(ctx context.Context, p *cmd.Parameters, err error) {
	l.Log.Warn().
		Str("command", p.Command().Name()).
		Err(err).
		Msg("command failed")
}
