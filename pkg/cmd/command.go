package cmd

import (
	"context"
	"strings"
)

// Action is the function a command runs once its tokens are bound. The
// returned int is the command's status code; zero or greater means a normal,
// command-specific result. The engine passes it through uninterpreted.
type Action func(ctx context.Context, p *Parameters) (int, error)

// Condition gates execution. When it reports false the invocation stops with
// a *ConditionError before any listener fires.
type Condition func(ctx context.Context, p *Parameters) bool

// Spec declares a command. Pass it to New, which validates it once and
// returns an immutable Command.
type Spec struct {
	// Aliases are the names the command answers to; the first is canonical.
	Aliases     []string
	Description string
	// Footer is optional trailing help text.
	Footer string
	// Parts lists the command's arguments and flags. Positional arguments
	// bind in the order they appear here.
	Parts  []Part
	Action Action
	// Condition, when non-nil, is checked before every invocation.
	Condition Condition
}

// Command is an immutable command definition. Once built it is safe to share
// across concurrent invocations.
type Command struct {
	aliases     []string
	description string
	footer      string
	parts       []Part
	args        []argument
	flags       map[rune]flag
	declared    map[Part]bool
	action      Action
	condition   Condition
}

// New validates spec and builds a Command. Violations of the part invariants
// (no alias, missing action, duplicate flag characters, a variadic argument
// that is not last, a required argument after an optional one) are
// programmer errors and come back as *ContractError.
func New(spec Spec) (*Command, error) {
	if len(spec.Aliases) == 0 {
		return nil, contractf("command needs at least one alias")
	}
	for _, alias := range spec.Aliases {
		if alias == "" {
			return nil, contractf("command alias must not be empty")
		}
	}
	if spec.Action == nil {
		return nil, contractf("command %q needs an action", spec.Aliases[0])
	}

	c := &Command{
		aliases:     append([]string(nil), spec.Aliases...),
		description: spec.Description,
		footer:      spec.Footer,
		parts:       append([]Part(nil), spec.Parts...),
		flags:       make(map[rune]flag),
		declared:    make(map[Part]bool, len(spec.Parts)),
		action:      spec.Action,
		condition:   spec.Condition,
	}

	sawOptional := false
	for _, part := range c.parts {
		if part == nil {
			return nil, contractf("command %q: nil part", c.Name())
		}
		if c.declared[part] {
			return nil, contractf("command %q: part %s declared twice", c.Name(), part.Name())
		}
		c.declared[part] = true

		switch p := part.(type) {
		case argument:
			if n := len(c.args); n > 0 && c.args[n-1].arity() == Variadic {
				return nil, contractf("command %q: variadic argument %s must be last", c.Name(), c.args[n-1].Name())
			}
			switch p.arity() {
			case Single:
				if sawOptional {
					return nil, contractf("command %q: required argument %s follows an optional one", c.Name(), p.Name())
				}
			case Optional:
				sawOptional = true
			}
			c.args = append(c.args, p)
		case flag:
			if _, dup := c.flags[p.char()]; dup {
				return nil, contractf("command %q: duplicate flag -%c", c.Name(), p.char())
			}
			c.flags[p.char()] = p
		default:
			return nil, contractf("command %q: unsupported part type %T", c.Name(), part)
		}
	}
	return c, nil
}

// MustNew is New for registration-phase code; it panics on an invalid spec.
func MustNew(spec Spec) *Command {
	c, err := New(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the canonical alias.
func (c *Command) Name() string { return c.aliases[0] }

// Aliases returns every name the command answers to, canonical first.
func (c *Command) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

func (c *Command) Description() string { return c.description }

func (c *Command) Footer() string { return c.footer }

// Parts returns the declared parts in declaration order.
func (c *Command) Parts() []Part {
	return append([]Part(nil), c.parts...)
}

// Usage renders a one-line synopsis, e.g. "cut [-e] [-m <mask>] [<leaveId>]".
func (c *Command) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name())
	for _, p := range c.parts {
		b.WriteString(" ")
		b.WriteString(p.synopsis())
	}
	return b.String()
}
