package cmd

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// trace records envelope events so tests can assert their exact order.
type trace struct {
	events []string
}

func (tr *trace) listener(name string) Listener {
	return ListenerFuncs{
		Before: func(ctx context.Context, p *Parameters) {
			tr.events = append(tr.events, name+".before")
		},
		After: func(ctx context.Context, p *Parameters, status int) {
			tr.events = append(tr.events, name+".after")
		},
		Throw: func(ctx context.Context, p *Parameters, err error) {
			tr.events = append(tr.events, name+".afterThrow")
		},
	}
}

func TestExecute_ListenerOrderOnSuccess(t *testing.T) {
	tr := &trace{}
	c := MustNew(Spec{
		Aliases: []string{"ok"},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			tr.events = append(tr.events, "action")
			return 7, nil
		},
	})
	p, err := Bind(c, nil)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	status, err := Execute(context.Background(), p, []Listener{tr.listener("L1"), tr.listener("L2")})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if status != 7 {
		t.Errorf("status = %d; want 7", status)
	}
	want := []string{"L1.before", "L2.before", "action", "L1.after", "L2.after"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("events = %q; want %q", tr.events, want)
	}
}

func TestExecute_ListenerOrderOnFailure(t *testing.T) {
	tr := &trace{}
	boom := errors.New("boom")
	c := MustNew(Spec{
		Aliases: []string{"bad"},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			tr.events = append(tr.events, "action")
			return 0, boom
		},
	})
	p, err := Bind(c, nil)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	_, err = Execute(context.Background(), p, []Listener{tr.listener("L1"), tr.listener("L2")})
	if !errors.Is(err, boom) {
		t.Fatalf("Execute error = %v; want the original action error", err)
	}
	want := []string{"L1.before", "L2.before", "action", "L1.afterThrow", "L2.afterThrow"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("events = %q; want %q", tr.events, want)
	}
}

func TestExecute_ConditionShortCircuit(t *testing.T) {
	tr := &trace{}
	c := MustNew(Spec{
		Aliases: []string{"gated"},
		Condition: func(ctx context.Context, p *Parameters) bool {
			return false
		},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			tr.events = append(tr.events, "action")
			return 0, nil
		},
	})
	p, err := Bind(c, nil)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	_, err = Execute(context.Background(), p, []Listener{tr.listener("L1")})
	var condition *ConditionError
	if !errors.As(err, &condition) {
		t.Fatalf("expected *ConditionError, got %v", err)
	}
	if condition.Cmd != c {
		t.Error("condition error should reference the command")
	}
	if len(tr.events) != 0 {
		t.Errorf("no listener or action should run, got %q", tr.events)
	}
}

func TestExecute_ConditionTrueRuns(t *testing.T) {
	ran := false
	c := MustNew(Spec{
		Aliases:   []string{"gated"},
		Condition: func(ctx context.Context, p *Parameters) bool { return true },
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			ran = true
			return 0, nil
		},
	})
	p, _ := Bind(c, nil)
	if _, err := Execute(context.Background(), p, nil); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !ran {
		t.Error("action did not run")
	}
}

func TestExecute_StopErrorPropagates(t *testing.T) {
	c := MustNew(Spec{
		Aliases: []string{"idle"},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			return 0, &StopError{Message: "nothing to do"}
		},
	})
	p, _ := Bind(c, nil)

	_, err := Execute(context.Background(), p, nil)
	var stop *StopError
	if !errors.As(err, &stop) {
		t.Fatalf("expected *StopError, got %v", err)
	}
	if stop.Message != "nothing to do" {
		t.Errorf("message = %q", stop.Message)
	}
}

func TestExecute_ContextReachesAction(t *testing.T) {
	type key struct{}
	var got any
	c := MustNew(Spec{
		Aliases: []string{"ctx"},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			got = ctx.Value(key{})
			return 0, nil
		},
	})
	p, _ := Bind(c, nil)

	ctx := context.WithValue(context.Background(), key{}, "payload")
	if _, err := Execute(ctx, p, nil); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != "payload" {
		t.Errorf("ctx value = %v; want payload", got)
	}
}
