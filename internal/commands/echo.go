package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/Joo200/piston/pkg/cmd"
)

func newEchoCommand(d Deps) (*cmd.Command, error) {
	words := cmd.NewVariadicArgument("text", "Words to print back", cmd.StringConverter("any text"))
	upper := cmd.NewFlag('u', "Uppercase the output")
	sep := cmd.NewValueFlag('s', "Join words with this separator", "sep", cmd.StringConverter("any text"))

	return cmd.New(cmd.Spec{
		Aliases:     []string{"echo", "say"},
		Description: "Print the given words back",
		Parts:       []cmd.Part{upper, sep, words},
		Condition:   gate(d),
		Action: func(ctx context.Context, p *cmd.Parameters) (int, error) {
			values, err := words.Values(p)
			if err != nil {
				return 0, err
			}
			if len(values) == 0 {
				return 0, &cmd.StopError{Message: "nothing to say"}
			}

			joiner := " "
			switch s, err := sep.Value(p); {
			case err == nil:
				joiner = s
			case !errors.Is(err, cmd.ErrUnset):
				return 0, err
			}

			line := strings.Join(values, joiner)
			if upper.In(p) {
				line = strings.ToUpper(line)
			}
			printer(ctx)(line)
			return len(values), nil
		},
	})
}
