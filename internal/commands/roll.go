package commands

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Joo200/piston/pkg/cmd"
)

func newRollCommand(d Deps) (*cmd.Command, error) {
	sides := cmd.NewVariadicArgument("sides", "One die per listed side count", cmd.IntConverter())
	total := cmd.NewFlag('t', "Also print the total")

	return cmd.New(cmd.Spec{
		Aliases:     []string{"roll", "r"},
		Description: "Roll dice; defaults to a single d6",
		Parts:       []cmd.Part{total, sides},
		Condition:   gate(d),
		Action: func(ctx context.Context, p *cmd.Parameters) (int, error) {
			counts, err := sides.Values(p)
			if err != nil {
				return 0, err
			}
			if len(counts) == 0 {
				counts = []int{6}
			}

			sum := 0
			rolls := make([]string, 0, len(counts))
			for _, n := range counts {
				if n < 1 {
					return 0, &cmd.StopError{Message: fmt.Sprintf("cannot roll a d%d", n)}
				}
				v := rand.Intn(n) + 1
				sum += v
				rolls = append(rolls, strconv.Itoa(v))
			}

			out := printer(ctx)
			out("rolled " + strings.Join(rolls, " "))
			if total.In(p) {
				out("total " + strconv.Itoa(sum))
			}
			return sum, nil
		},
	})
}
