package cmd

import (
	"sort"
	"strings"
)

// Suggest offers completion candidates for a partially typed command line.
// The last token is treated as the one under the cursor: with at most one
// token it completes command aliases, afterwards it asks the converter of
// the part the token would bind to. Best effort: unknown input yields no
// suggestions rather than an error.
func (m *Manager) Suggest(tokens []string) []string {
	if len(tokens) == 0 {
		return m.aliasSuggestions("")
	}
	if len(tokens) == 1 {
		return m.aliasSuggestions(tokens[0])
	}
	c, ok := m.Get(tokens[0])
	if !ok {
		return nil
	}
	return suggestParts(c, tokens[1:])
}

func (m *Manager) aliasSuggestions(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for alias := range m.commands {
		if strings.HasPrefix(alias, prefix) {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// suggestParts replays the binder's scan over all but the last token to work
// out which part the last token belongs to.
func suggestParts(c *Command, tokens []string) []string {
	last := tokens[len(tokens)-1]
	rest := tokens[:len(tokens)-1]

	var pending flag // value flag whose value comes next
	positionals := 0
	for _, tok := range rest {
		if pending != nil {
			pending = nil
			continue
		}
		marker, ok := flagMarker(tok)
		if !ok {
			positionals++
			continue
		}
		if f, declared := c.flags[marker]; declared && f.takesValue() {
			pending = f
		}
	}

	if pending != nil {
		return pending.suggestValues(last)
	}
	if last == "-" {
		var out []string
		for r := range c.flags {
			out = append(out, "-"+string(r))
		}
		sort.Strings(out)
		return out
	}
	if _, ok := flagMarker(last); ok {
		return nil
	}

	// The last token is positional: walk the arguments to the one that
	// would consume it.
	idx := positionals
	for _, a := range c.args {
		switch a.arity() {
		case Single, Optional:
			if idx == 0 {
				return a.suggestValues(last)
			}
			idx--
		case Variadic:
			return a.suggestValues(last)
		}
	}
	return nil
}
