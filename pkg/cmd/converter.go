package cmd

import (
	"strconv"
	"strings"
)

// Converter turns one raw input token into one or more typed values.
//
// Implementations must be stateless: converting the same token twice yields
// equal results, and one Converter may serve concurrent invocations. Both a
// returned error and an empty result mark the token as invalid; the engine
// reports either as a usage failure.
type Converter[T any] interface {
	// Convert parses a single token. It must produce at least one value or
	// fail; a nil-error empty result is still treated as an invalid token.
	Convert(token string) ([]T, error)

	// Describe returns a short, user-facing description of the values this
	// converter accepts (e.g. "any integer"). Usage failures quote it.
	Describe() string

	// Suggest returns completion candidates for a partially typed token.
	Suggest(partial string) []string
}

// SimpleConverter implements Converter around plain functions. Build one
// with NewConverter or NewSingleConverter; the zero value is not usable.
type SimpleConverter[T any] struct {
	convert  func(string) ([]T, error)
	describe string
	suggest  func(string) []string
}

// NewConverter builds a converter from a function that may produce several
// values per token.
func NewConverter[T any](describe string, convert func(token string) ([]T, error)) *SimpleConverter[T] {
	return &SimpleConverter[T]{convert: convert, describe: describe}
}

// NewSingleConverter builds a converter from a function producing exactly
// one value per token.
func NewSingleConverter[T any](describe string, convert func(token string) (T, error)) *SimpleConverter[T] {
	return NewConverter(describe, func(token string) ([]T, error) {
		v, err := convert(token)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	})
}

// WithSuggestions returns a copy of the converter that offers the given
// completion candidates.
func (c *SimpleConverter[T]) WithSuggestions(suggest func(partial string) []string) *SimpleConverter[T] {
	dup := *c
	dup.suggest = suggest
	return &dup
}

func (c *SimpleConverter[T]) Convert(token string) ([]T, error) { return c.convert(token) }

func (c *SimpleConverter[T]) Describe() string { return c.describe }

func (c *SimpleConverter[T]) Suggest(partial string) []string {
	if c.suggest == nil {
		return nil
	}
	return c.suggest(partial)
}

// StringConverter accepts any token as-is.
func StringConverter(describe string) *SimpleConverter[string] {
	if describe == "" {
		describe = "any text"
	}
	return NewSingleConverter(describe, func(token string) (string, error) {
		return token, nil
	})
}

// IntConverter accepts base-10 integers.
func IntConverter() *SimpleConverter[int] {
	return NewSingleConverter("any integer", func(token string) (int, error) {
		return strconv.Atoi(token)
	})
}

// BoolConverter accepts the usual spellings of true and false.
func BoolConverter() *SimpleConverter[bool] {
	return NewSingleConverter("true|false", func(token string) (bool, error) {
		return strconv.ParseBool(token)
	}).WithSuggestions(func(partial string) []string {
		var out []string
		for _, s := range []string{"false", "true"} {
			if strings.HasPrefix(s, partial) {
				out = append(out, s)
			}
		}
		return out
	})
}
