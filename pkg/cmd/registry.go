// Package cmd provides a transport-agnostic command engine: declarative
// command definitions made of arguments and flags, a deterministic binder
// from raw tokens to typed values, and an execution envelope with condition
// gating and listener hooks. How tokens are produced and how outcomes are
// rendered (console, Discord, HTTP) is defined by hosts that wrap this.
package cmd

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Manager is the lookup surface tying the engine together: command aliases
// to definitions, type keys to shared converters, plus the listeners every
// dispatch notifies. Populate it during startup; once serving begins it is
// safe for any number of concurrent readers.
type Manager struct {
	mu         sync.RWMutex
	commands   map[string]*Command
	converters map[string]any
	listeners  []Listener
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		commands:   make(map[string]*Command),
		converters: make(map[string]any),
	}
}

// Register adds a command under all of its aliases. An alias collision is a
// registration-phase programmer error.
func (m *Manager) Register(c *Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, alias := range c.aliases {
		if _, taken := m.commands[alias]; taken {
			return contractf("command alias %q is already registered", alias)
		}
	}
	for _, alias := range c.aliases {
		m.commands[alias] = c
	}
	return nil
}

// Get returns the command registered under name or any of its aliases.
func (m *Manager) Get(name string) (*Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.commands[name]
	return c, ok
}

// All returns every registered command once, sorted by canonical name.
func (m *Manager) All() []*Command {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[*Command]bool, len(m.commands))
	list := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		if seen[c] {
			continue
		}
		seen[c] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Subscribe attaches a listener to every future dispatch. Listeners are
// notified in subscription order.
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// listenerSnapshot fixes the listener list for one invocation.
func (m *Manager) listenerSnapshot() []Listener {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Listener(nil), m.listeners...)
}

// Dispatch resolves tokens[0] to a command, binds the remaining tokens and
// executes the result. Every user-facing failure comes back as an error
// value; see UsageError, ConditionError and StopError.
func (m *Manager) Dispatch(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, &UsageError{Message: "no command given"}
	}
	c, ok := m.Get(tokens[0])
	if !ok {
		return 0, &UsageError{Message: fmt.Sprintf("unknown command %q", tokens[0])}
	}
	p, err := Bind(c, tokens[1:])
	if err != nil {
		return 0, err
	}
	return Execute(ctx, p, m.listenerSnapshot())
}

// RegisterConverter stores a shared converter under a type key such as
// "int" or "duration", for hosts that assemble parts dynamically.
func RegisterConverter[T any](m *Manager, key string, conv Converter[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.converters[key]; taken {
		return contractf("converter key %q is already registered", key)
	}
	m.converters[key] = conv
	return nil
}

// ConverterFor looks up a shared converter by its type key. The type
// parameter must match the value type the converter was registered with.
func ConverterFor[T any](m *Manager, key string) (Converter[T], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.converters[key].(Converter[T])
	return c, ok
}
