package cmd

// Arity describes how many positional tokens an Argument consumes.
type Arity int

const (
	// Single consumes exactly one token; binding fails when none remain.
	Single Arity = iota
	// Optional consumes one token when available, otherwise falls back to
	// the argument's defaults, or stays unset when it has none.
	Optional
	// Variadic consumes every remaining positional token, zero included. A
	// variadic argument must be the last positional part of a command.
	Variadic
)

// Part is one declared piece of a command line: a positional Argument, a
// presence Flag, or a value-carrying ValueFlag. The set of implementations
// is closed to this package; the binder matches over it exhaustively.
type Part interface {
	Name() string
	Description() string

	// synopsis renders the part for a one-line usage string. Being
	// unexported it also keeps the union closed.
	synopsis() string
}

// Synopsis renders a part the way it appears in a usage line, for example
// "<count>" or "[-m <mask>]".
func Synopsis(p Part) string { return p.synopsis() }

// argument is the binder's type-erased view of Argument[T].
type argument interface {
	Part
	arity() Arity
	defaultTokens() ([]string, bool)
	describeValues() string
	suggestValues(partial string) []string
}

// flag is the binder's type-erased view of Flag and ValueFlag[T].
type flag interface {
	Part
	char() rune
	takesValue() bool
	describeValues() string
	suggestValues(partial string) []string
}

// Argument is a positional command part producing values of type T. The
// constructed value doubles as the typed handle that reads the bound result
// back out of a Parameters, so keep a reference to it alongside the command.
type Argument[T any] struct {
	name    string
	desc    string
	ar      Arity
	defs    []string
	hasDefs bool
	conv    Converter[T]
}

// NewArgument declares a required positional argument.
func NewArgument[T any](name, desc string, conv Converter[T]) *Argument[T] {
	return &Argument[T]{name: name, desc: desc, ar: Single, conv: conv}
}

// NewOptionalArgument declares a zero-or-one positional argument. Without a
// token and without defaults the argument stays unset.
func NewOptionalArgument[T any](name, desc string, conv Converter[T]) *Argument[T] {
	return &Argument[T]{name: name, desc: desc, ar: Optional, conv: conv}
}

// NewVariadicArgument declares a zero-or-more positional argument.
func NewVariadicArgument[T any](name, desc string, conv Converter[T]) *Argument[T] {
	return &Argument[T]{name: name, desc: desc, ar: Variadic, conv: conv}
}

// WithDefault returns a copy of the argument that resolves to the given raw
// tokens when absent from the input. Meaningful for Optional arguments only.
func (a *Argument[T]) WithDefault(tokens ...string) *Argument[T] {
	dup := *a
	dup.defs = append([]string(nil), tokens...)
	dup.hasDefs = true
	return &dup
}

func (a *Argument[T]) Name() string        { return a.name }
func (a *Argument[T]) Description() string { return a.desc }

func (a *Argument[T]) synopsis() string {
	switch a.ar {
	case Optional:
		return "[<" + a.name + ">]"
	case Variadic:
		return "[<" + a.name + ">...]"
	default:
		return "<" + a.name + ">"
	}
}

func (a *Argument[T]) arity() Arity { return a.ar }

func (a *Argument[T]) defaultTokens() ([]string, bool) { return a.defs, a.hasDefs }

func (a *Argument[T]) describeValues() string { return a.conv.Describe() }

func (a *Argument[T]) suggestValues(partial string) []string { return a.conv.Suggest(partial) }

// In reports whether the argument was bound, from input or from defaults.
func (a *Argument[T]) In(p *Parameters) bool { return p.bound(a) }

// Values resolves the argument's bound tokens through its converter,
// preserving token order. It returns ErrUnset when the argument was absent
// and had no default.
func (a *Argument[T]) Values(p *Parameters) ([]T, error) { return convertAll(p, a, a.conv) }

// Value resolves the argument to exactly one value.
func (a *Argument[T]) Value(p *Parameters) (T, error) { return one(p, a, a.conv) }

// Flag is a presence flag: "-e" in the input resolves it to true, absence to
// false.
type Flag struct {
	c    rune
	desc string
}

// NewFlag declares a presence flag for the given character.
func NewFlag(c rune, desc string) *Flag {
	return &Flag{c: c, desc: desc}
}

func (f *Flag) Name() string        { return "-" + string(f.c) }
func (f *Flag) Description() string { return f.desc }

func (f *Flag) synopsis() string { return "[-" + string(f.c) + "]" }

func (f *Flag) char() rune { return f.c }

func (f *Flag) takesValue() bool { return false }

func (f *Flag) describeValues() string { return "" }

func (f *Flag) suggestValues(string) []string { return nil }

// In reports whether the flag appeared in the input.
func (f *Flag) In(p *Parameters) bool {
	p.mustDeclare(f)
	return p.present[f.c]
}

// ValueFlag is a flag that consumes the token immediately following its
// marker, e.g. "-m stone". Repeating the flag accumulates values in input
// order.
type ValueFlag[T any] struct {
	c         rune
	desc      string
	valueName string
	conv      Converter[T]
}

// NewValueFlag declares a value flag. valueName labels the consumed token in
// usage lines and defaults to "value".
func NewValueFlag[T any](c rune, desc, valueName string, conv Converter[T]) *ValueFlag[T] {
	if valueName == "" {
		valueName = "value"
	}
	return &ValueFlag[T]{c: c, desc: desc, valueName: valueName, conv: conv}
}

func (f *ValueFlag[T]) Name() string        { return "-" + string(f.c) }
func (f *ValueFlag[T]) Description() string { return f.desc }

func (f *ValueFlag[T]) synopsis() string {
	return "[-" + string(f.c) + " <" + f.valueName + ">]"
}

func (f *ValueFlag[T]) char() rune { return f.c }

func (f *ValueFlag[T]) takesValue() bool { return true }

func (f *ValueFlag[T]) describeValues() string { return f.conv.Describe() }

func (f *ValueFlag[T]) suggestValues(partial string) []string { return f.conv.Suggest(partial) }

// In reports whether the flag appeared in the input.
func (f *ValueFlag[T]) In(p *Parameters) bool {
	p.mustDeclare(f)
	return p.present[f.c]
}

// Values converts every value the flag consumed, in input order. It returns
// ErrUnset when the flag never appeared.
func (f *ValueFlag[T]) Values(p *Parameters) ([]T, error) { return convertAll(p, f, f.conv) }

// Value resolves the flag to exactly one value.
func (f *ValueFlag[T]) Value(p *Parameters) (T, error) { return one(p, f, f.conv) }
