package commands

import (
	"context"
	"fmt"

	"github.com/Joo200/piston/pkg/cmd"
)

func newHelpCommand(d Deps) (*cmd.Command, error) {
	topic := cmd.NewOptionalArgument("command", "Show help for this command only",
		cmd.StringConverter("a command name").WithSuggestions(func(partial string) []string {
			return d.Manager.Suggest([]string{partial})
		}))

	return cmd.New(cmd.Spec{
		Aliases:     []string{"help", "h"},
		Description: "List commands, or show one command's usage",
		Parts:       []cmd.Part{topic},
		Action: func(ctx context.Context, p *cmd.Parameters) (int, error) {
			out := printer(ctx)
			if !topic.In(p) {
				for _, c := range d.Manager.All() {
					out(fmt.Sprintf("%-40s %s", c.Usage(), c.Description()))
				}
				return 0, nil
			}
			name, err := topic.Value(p)
			if err != nil {
				return 0, err
			}
			c, ok := d.Manager.Get(name)
			if !ok {
				return 0, &cmd.StopError{Message: fmt.Sprintf("no such command %q", name)}
			}
			out(FullHelp(c))
			return 0, nil
		},
	})
}
