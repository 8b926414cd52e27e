package cmd

import "context"

// Listener observes invocations. Listeners are trusted infrastructure, not
// user input: the engine does not recover their panics, and an AfterThrow
// listener observes the action's error without being able to replace it.
type Listener interface {
	// BeforeCall runs after the condition passed and before the action.
	BeforeCall(ctx context.Context, p *Parameters)
	// AfterCall runs after the action returned its status code.
	AfterCall(ctx context.Context, p *Parameters, status int)
	// AfterThrow runs after the action failed, before the error propagates.
	AfterThrow(ctx context.Context, p *Parameters, err error)
}

// ListenerFuncs adapts plain closures to Listener; nil fields are skipped.
type ListenerFuncs struct {
	Before func(ctx context.Context, p *Parameters)
	After  func(ctx context.Context, p *Parameters, status int)
	Throw  func(ctx context.Context, p *Parameters, err error)
}

func (l ListenerFuncs) BeforeCall(ctx context.Context, p *Parameters) {
	if l.Before != nil {
		l.Before(ctx, p)
	}
}

func (l ListenerFuncs) AfterCall(ctx context.Context, p *Parameters, status int) {
	if l.After != nil {
		l.After(ctx, p, status)
	}
}

func (l ListenerFuncs) AfterThrow(ctx context.Context, p *Parameters, err error) {
	if l.Throw != nil {
		l.Throw(ctx, p, err)
	}
}

// Execute runs the command bound into p: condition check, before listeners,
// the action, then after or after-throw listeners. A false condition yields
// a *ConditionError and skips listeners and action entirely. Action failures
// propagate unchanged after every after-throw listener observed them.
func Execute(ctx context.Context, p *Parameters, listeners []Listener) (int, error) {
	c := p.cmd
	if c.condition != nil && !c.condition(ctx, p) {
		return 0, &ConditionError{Cmd: c}
	}
	for _, l := range listeners {
		l.BeforeCall(ctx, p)
	}
	status, err := c.action(ctx, p)
	if err != nil {
		for _, l := range listeners {
			l.AfterThrow(ctx, p, err)
		}
		return 0, err
	}
	for _, l := range listeners {
		l.AfterCall(ctx, p, status)
	}
	return status, nil
}
