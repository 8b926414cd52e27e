package cmd

import (
	"errors"
	"fmt"
)

// ErrUnset reports a read of a declared part that matched no input: an
// optional argument without a default, or a value flag that never appeared.
// It is distinct from a variadic argument bound to zero tokens, which yields
// an empty slice and no error.
var ErrUnset = errors.New("part has no bound value")

// UsageError reports malformed or missing user input: a bad token, an unmet
// arity, an unknown flag. The caller may re-issue corrected input. Cmd, when
// non-nil, is the definition whose usage text should be shown.
type UsageError struct {
	Cmd     *Command
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usagef(c *Command, format string, args ...any) *UsageError {
	return &UsageError{Cmd: c, Message: fmt.Sprintf(format, args...)}
}

// ConditionError reports that a command's gating condition rejected the
// invocation. It does not describe an input problem; no listener fires and
// the action does not run.
type ConditionError struct {
	Cmd *Command
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("condition not met for command %q", e.Cmd.Name())
}

// StopError is an action-initiated short circuit: not an input mistake, just
// a user-facing reason to stop (for example "nothing to do").
type StopError struct {
	Message string
}

func (e *StopError) Error() string { return e.Message }

// ContractError reports a programmer error: an invalid command spec, a
// duplicate registration, or a query against a part the bound command never
// declared. Build-time violations are returned as ordinary errors;
// query-time violations panic.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string { return e.Message }

func contractf(format string, args ...any) *ContractError {
	return &ContractError{Message: fmt.Sprintf(format, args...)}
}
