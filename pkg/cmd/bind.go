package cmd

import "unicode/utf8"

// Bind matches tokens against the command's declared parts and returns the
// resolved Parameters. Flags may appear anywhere between positional tokens;
// a value flag consumes the token immediately following its marker, whatever
// it looks like. Binding is deterministic, never mutates the command, and
// reports every failure as a *UsageError rather than panicking.
func Bind(c *Command, tokens []string) (*Parameters, error) {
	p := &Parameters{
		cmd:     c,
		raw:     make(map[Part][]string),
		present: make(map[rune]bool),
	}

	var positional []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		marker, ok := flagMarker(tok)
		if !ok {
			positional = append(positional, tok)
			continue
		}
		f, declared := c.flags[marker]
		if !declared {
			return nil, usagef(c, "unknown flag -%c", marker)
		}
		p.present[marker] = true
		if !f.takesValue() {
			continue
		}
		if i+1 >= len(tokens) {
			return nil, usagef(c, "flag %s requires a value, acceptable values are %s",
				f.Name(), f.describeValues())
		}
		i++
		p.raw[f] = append(p.raw[f], tokens[i])
	}

	next := 0
	for _, a := range c.args {
		switch a.arity() {
		case Single:
			if next >= len(positional) {
				return nil, usagef(c, "missing argument <%s>, acceptable values are %s",
					a.Name(), a.describeValues())
			}
			p.raw[a] = positional[next : next+1]
			next++
		case Optional:
			if next < len(positional) {
				p.raw[a] = positional[next : next+1]
				next++
			} else if defs, ok := a.defaultTokens(); ok {
				p.raw[a] = defs
			}
		case Variadic:
			p.raw[a] = positional[next:]
			next = len(positional)
		}
	}
	if next < len(positional) {
		return nil, usagef(c, "too many arguments, %q was not matched by any part", positional[next])
	}
	return p, nil
}

// flagMarker reports whether tok is a flag token: a dash followed by exactly
// one character. Anything longer, like "-10" or "--x", binds positionally.
func flagMarker(tok string) (rune, bool) {
	if len(tok) < 2 || tok[0] != '-' {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(tok[1:])
	if r == utf8.RuneError || size != len(tok)-1 {
		return 0, false
	}
	return r, true
}
