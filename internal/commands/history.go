package commands

import (
	"context"
	"fmt"

	"github.com/Joo200/piston/pkg/cmd"
)

func newHistoryCommand(d Deps) (*cmd.Command, error) {
	count := cmd.NewOptionalArgument("count", "How many entries to show", cmd.IntConverter()).
		WithDefault("10")

	return cmd.New(cmd.Spec{
		Aliases:     []string{"history", "hist"},
		Description: "Show recently dispatched commands",
		Parts:       []cmd.Part{count},
		Action: func(ctx context.Context, p *cmd.Parameters) (int, error) {
			if d.Store == nil {
				return 0, &cmd.StopError{Message: "history is not available"}
			}
			limit, err := count.Value(p)
			if err != nil {
				return 0, err
			}
			records, err := d.Store.History()
			if err != nil {
				return 0, fmt.Errorf("failed to read history: %w", err)
			}
			if len(records) == 0 {
				return 0, &cmd.StopError{Message: "no commands dispatched yet"}
			}
			if limit > 0 && len(records) > limit {
				records = records[len(records)-limit:]
			}

			out := printer(ctx)
			for _, rec := range records {
				line := fmt.Sprintf("%s %-12s status=%d",
					rec.Datetime.Format("15:04:05"), rec.Command, rec.Status)
				if rec.Error != "" {
					line += " error=" + rec.Error
				}
				out(line)
			}
			return len(records), nil
		},
	})
}
