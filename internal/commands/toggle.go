package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Joo200/piston/pkg/cmd"
)

func newToggleCommand(d Deps) (*cmd.Command, error) {
	name := cmd.NewArgument("command", "The command to enable or disable",
		cmd.StringConverter("a command name").WithSuggestions(func(partial string) []string {
			return d.Manager.Suggest([]string{partial})
		}))
	state := cmd.NewArgument("state", "on or off",
		cmd.NewSingleConverter("on|off", func(token string) (bool, error) {
			switch token {
			case "on":
				return true, nil
			case "off":
				return false, nil
			}
			return false, fmt.Errorf("%q is neither on nor off", token)
		}).WithSuggestions(func(partial string) []string {
			var out []string
			for _, s := range []string{"off", "on"} {
				if strings.HasPrefix(s, partial) {
					out = append(out, s)
				}
			}
			return out
		}))

	return cmd.New(cmd.Spec{
		Aliases:     []string{"commands", "cmds"},
		Description: "Enable or disable a command",
		Footer:      "Disabled commands are rejected before they run.",
		Parts:       []cmd.Part{name, state},
		Action: func(ctx context.Context, p *cmd.Parameters) (int, error) {
			if d.Store == nil {
				return 0, &cmd.StopError{Message: "command toggling is not available"}
			}
			target, err := name.Value(p)
			if err != nil {
				return 0, err
			}
			enable, err := state.Value(p)
			if err != nil {
				return 0, err
			}

			c, ok := d.Manager.Get(target)
			if !ok {
				return 0, &cmd.StopError{Message: fmt.Sprintf("no such command %q", target)}
			}
			canonical := c.Name()
			if canonical == "commands" || canonical == "help" {
				return 0, &cmd.StopError{Message: fmt.Sprintf("%q cannot be disabled", canonical)}
			}

			if enable {
				err = d.Store.EnableCommand(canonical)
			} else {
				err = d.Store.DisableCommand(canonical)
			}
			if err != nil {
				return 0, fmt.Errorf("failed to update command state: %w", err)
			}

			if enable {
				printer(ctx)(fmt.Sprintf("command %q enabled", canonical))
			} else {
				printer(ctx)(fmt.Sprintf("command %q disabled", canonical))
			}
			return 0, nil
		},
	})
}
