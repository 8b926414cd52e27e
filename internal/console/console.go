package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Joo200/piston/internal/commands"
	"github.com/Joo200/piston/internal/tokenize"
	"github.com/Joo200/piston/pkg/cmd"
)

// Console reads command lines from In and dispatches them against Manager,
// writing all output to Out. It is the interactive host used by cmd/console.
type Console struct {
	Manager *cmd.Manager
	In      io.Reader
	Out     io.Writer
	Prompt  string
}

// Run loops until In is exhausted, ctx is cancelled, or the user types
// "exit" or "quit". A line ending in "?" asks for completions instead of
// dispatching.
func (c *Console) Run(ctx context.Context) error {
	prompt := c.Prompt
	if prompt == "" {
		prompt = "> "
	}

	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(c.Out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if rest, ok := strings.CutSuffix(line, "?"); ok {
			c.complete(rest)
			continue
		}

		c.dispatch(ctx, line)
	}
}

func (c *Console) complete(rest string) {
	tokens := tokenize.Split(rest)
	// A trailing space means the user is starting a fresh token.
	if strings.HasSuffix(rest, " ") || len(tokens) == 0 {
		tokens = append(tokens, "")
	}

	suggestions := c.Manager.Suggest(tokens)
	if len(suggestions) == 0 {
		fmt.Fprintln(c.Out, "no suggestions")
		return
	}
	fmt.Fprintln(c.Out, strings.Join(suggestions, "  "))
}

func (c *Console) dispatch(ctx context.Context, line string) {
	ctx = commands.WithPrinter(ctx, func(s string) {
		fmt.Fprintln(c.Out, s)
	})

	_, err := c.Manager.Dispatch(ctx, tokenize.Split(line))
	if err == nil {
		return
	}

	var usage *cmd.UsageError
	var cond *cmd.ConditionError
	var stop *cmd.StopError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintln(c.Out, usage.Message)
		if usage.Cmd != nil {
			fmt.Fprintln(c.Out, "usage:", usage.Cmd.Usage())
		}
	case errors.As(err, &cond):
		fmt.Fprintf(c.Out, "%s is not available right now\n", cond.Cmd.Name())
	case errors.As(err, &stop):
		fmt.Fprintln(c.Out, stop.Message)
	default:
		fmt.Fprintf(c.Out, "error: %v\n", err)
	}
}
