// Package commands registers the builtin command set shared by the hosts.
package commands

import (
	"context"

	"github.com/Joo200/piston/internal/storage"
	"github.com/Joo200/piston/pkg/cmd"
	"github.com/Joo200/piston/pkg/cooldown"
)

// Deps carries what the builtin commands need. Store and Gate may be nil;
// the affected commands then skip persistence or rate limiting.
type Deps struct {
	Manager *cmd.Manager
	Store   *storage.Storage
	Gate    *cooldown.Gate
}

// Register builds the builtin commands and adds them to the manager.
func Register(d Deps) error {
	builders := []func(Deps) (*cmd.Command, error){
		newHelpCommand,
		newEchoCommand,
		newRollCommand,
		newHistoryCommand,
		newToggleCommand,
	}
	for _, build := range builders {
		c, err := build(d)
		if err != nil {
			return err
		}
		if err := d.Manager.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// gate is the shared condition: the command must be enabled and within its
// cooldown budget.
func gate(d Deps) cmd.Condition {
	return func(ctx context.Context, p *cmd.Parameters) bool {
		name := p.Command().Name()
		if d.Store != nil && d.Store.IsCommandDisabled(name) {
			return false
		}
		if d.Gate != nil && !d.Gate.Allow(name) {
			return false
		}
		return true
	}
}
