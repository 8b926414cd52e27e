package commands

import (
	"context"
	"fmt"
)

type printerKey struct{}

// WithPrinter returns a context whose dispatches print through fn. Each host
// installs its own printer: the console writes to stdout, the Discord host
// replies to the triggering channel.
func WithPrinter(ctx context.Context, fn func(string)) context.Context {
	return context.WithValue(ctx, printerKey{}, fn)
}

// printer extracts the host printer, defaulting to stdout.
func printer(ctx context.Context) func(string) {
	if fn, ok := ctx.Value(printerKey{}).(func(string)); ok {
		return fn
	}
	return func(s string) { fmt.Println(s) }
}
