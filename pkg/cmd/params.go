package cmd

// Parameters is the read-only result of binding a token sequence against a
// Command. It stores the raw token group matched by every part; typed values
// are produced on demand through each part's converter. A Parameters belongs
// to one invocation and is never mutated after Bind returns.
type Parameters struct {
	cmd     *Command
	raw     map[Part][]string
	present map[rune]bool
}

// Command returns the definition this Parameters was bound against.
func (p *Parameters) Command() *Command { return p.cmd }

// Raw returns the raw, pre-conversion tokens matched by part in input order,
// or nil when the part matched nothing.
func (p *Parameters) Raw(part Part) []string {
	p.mustDeclare(part)
	tokens := p.raw[part]
	if tokens == nil {
		return nil
	}
	return append([]string(nil), tokens...)
}

// bound reports whether part matched input or resolved to defaults.
func (p *Parameters) bound(part Part) bool {
	p.mustDeclare(part)
	_, ok := p.raw[part]
	return ok
}

// mustDeclare panics with a *ContractError when part is not declared on the
// bound command: the caller queried with the wrong part handle, which is a
// bug to fix, not a runtime condition to handle.
func (p *Parameters) mustDeclare(part Part) {
	if !p.cmd.declared[part] {
		panic(contractf("part %s is not declared on command %q", part.Name(), p.cmd.Name()))
	}
}

// convertAll applies conv to every raw token bound to part, concatenating
// the results in token order.
func convertAll[T any](p *Parameters, part Part, conv Converter[T]) ([]T, error) {
	p.mustDeclare(part)
	tokens, ok := p.raw[part]
	if !ok {
		return nil, ErrUnset
	}
	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		values, err := conv.Convert(tok)
		if err != nil || len(values) == 0 {
			return nil, usagef(p.cmd, "invalid value %q for %s, acceptable values are %s",
				tok, part.Name(), conv.Describe())
		}
		out = append(out, values...)
	}
	return out, nil
}

// one is convertAll restricted to exactly one resulting value.
func one[T any](p *Parameters, part Part, conv Converter[T]) (T, error) {
	var zero T
	values, err := convertAll(p, part, conv)
	if err != nil {
		return zero, err
	}
	if len(values) != 1 {
		return zero, usagef(p.cmd, "expected one value for %s, got %d", part.Name(), len(values))
	}
	return values[0], nil
}
