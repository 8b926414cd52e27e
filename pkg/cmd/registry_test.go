package cmd

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestManager_RegisterAndGet(t *testing.T) {
	m := NewManager()
	c := MustNew(Spec{Aliases: []string{"cut", "x"}, Action: nopAction})
	if err := m.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for _, name := range []string{"cut", "x"} {
		got, ok := m.Get(name)
		if !ok || got != c {
			t.Errorf("Get(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := m.Get("paste"); ok {
		t.Error("Get(paste) should miss")
	}
}

func TestManager_DuplicateAlias(t *testing.T) {
	m := NewManager()
	if err := m.Register(MustNew(Spec{Aliases: []string{"cut"}, Action: nopAction})); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	err := m.Register(MustNew(Spec{Aliases: []string{"copy", "cut"}, Action: nopAction}))
	var contract *ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected *ContractError, got %v", err)
	}
}

func TestManager_AllSortedAndDeduplicated(t *testing.T) {
	m := NewManager()
	for _, aliases := range [][]string{{"cut", "x"}, {"copy"}, {"about"}} {
		if err := m.Register(MustNew(Spec{Aliases: aliases, Action: nopAction})); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	var names []string
	for _, c := range m.All() {
		names = append(names, c.Name())
	}
	want := []string{"about", "copy", "cut"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("All = %q; want %q", names, want)
	}
}

func TestManager_DispatchUnknownCommand(t *testing.T) {
	m := NewManager()

	_, err := m.Dispatch(context.Background(), []string{"nope"})
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected *UsageError, got %v", err)
	}

	_, err = m.Dispatch(context.Background(), nil)
	if !errors.As(err, &usage) {
		t.Fatalf("expected *UsageError for empty input, got %v", err)
	}
}

func TestManager_DispatchEndToEnd(t *testing.T) {
	m := NewManager()
	word := NewArgument("word", "", StringConverter(""))
	var got string
	c := MustNew(Spec{
		Aliases: []string{"echo"},
		Parts:   []Part{word},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			v, err := word.Value(p)
			if err != nil {
				return 0, err
			}
			got = v
			return len(v), nil
		},
	})
	if err := m.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	status, err := m.Dispatch(context.Background(), []string{"echo", "hello"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if got != "hello" || status != 5 {
		t.Errorf("got %q with status %d", got, status)
	}
}

func TestManager_SubscribedListenersObserveDispatch(t *testing.T) {
	m := NewManager()
	tr := &trace{}
	m.Subscribe(tr.listener("L1"))
	m.Subscribe(tr.listener("L2"))

	c := MustNew(Spec{
		Aliases: []string{"ok"},
		Action: func(ctx context.Context, p *Parameters) (int, error) {
			tr.events = append(tr.events, "action")
			return 0, nil
		},
	})
	if err := m.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := m.Dispatch(context.Background(), []string{"ok"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	want := []string{"L1.before", "L2.before", "action", "L1.after", "L2.after"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("events = %q; want %q", tr.events, want)
	}
}

func TestManager_ConverterSideTable(t *testing.T) {
	m := NewManager()
	if err := RegisterConverter(m, "int", IntConverter()); err != nil {
		t.Fatalf("RegisterConverter failed: %v", err)
	}

	conv, ok := ConverterFor[int](m, "int")
	if !ok {
		t.Fatal("ConverterFor[int] missed")
	}
	got, err := conv.Convert("5")
	if err != nil || len(got) != 1 || got[0] != 5 {
		t.Errorf("Convert(5) = %v, %v", got, err)
	}

	if _, ok := ConverterFor[string](m, "int"); ok {
		t.Error("lookup with the wrong value type should miss")
	}
	if _, ok := ConverterFor[int](m, "duration"); ok {
		t.Error("lookup with an unknown key should miss")
	}
	if err := RegisterConverter(m, "int", IntConverter()); err == nil {
		t.Error("duplicate converter key should fail")
	}
}

func suggestTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()

	masks := StringConverter("mask").WithSuggestions(func(partial string) []string {
		var out []string
		for _, s := range []string{"dirt", "stone"} {
			if strings.HasPrefix(s, partial) {
				out = append(out, s)
			}
		}
		return out
	})
	patterns := StringConverter("pattern").WithSuggestions(func(partial string) []string {
		if strings.HasPrefix("air", partial) {
			return []string{"air"}
		}
		return nil
	})

	cut := MustNew(Spec{
		Aliases: []string{"cut"},
		Parts: []Part{
			NewFlag('e', "entities"),
			NewValueFlag('m', "mask", "mask", masks),
			NewOptionalArgument("leaveId", "leave pattern", patterns).WithDefault("air"),
		},
		Action: nopAction,
	})
	copyCmd := MustNew(Spec{Aliases: []string{"copy"}, Action: nopAction})
	for _, c := range []*Command{cut, copyCmd} {
		if err := m.Register(c); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
	return m
}

func TestManager_Suggest(t *testing.T) {
	m := suggestTestManager(t)

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"no input lists aliases", nil, []string{"copy", "cut"}},
		{"alias prefix", []string{"c"}, []string{"copy", "cut"}},
		{"alias prefix narrows", []string{"cu"}, []string{"cut"}},
		{"unknown command", []string{"nope", "x"}, nil},
		{"value flag value", []string{"cut", "-m", "st"}, []string{"stone"}},
		{"value flag value empty", []string{"cut", "-m", ""}, []string{"dirt", "stone"}},
		{"dash lists flags", []string{"cut", "-"}, []string{"-e", "-m"}},
		{"positional argument", []string{"cut", "a"}, []string{"air"}},
		{"positional after flag pair", []string{"cut", "-m", "stone", "a"}, []string{"air"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Suggest(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %q; want %q", tt.tokens, got, tt.want)
			}
		})
	}
}
