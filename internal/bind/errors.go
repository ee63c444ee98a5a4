package bind

import (
	"errors"
	"fmt"

	"github.com/bindflow/bindflow/internal/bind/token"
)

// Errors returned by stream parsing.
var (
	// ErrMissingOptionValue indicates an option keyword with no
	// following value.
	ErrMissingOptionValue = errors.New("missing value for option")

	// ErrMissingDefinition indicates a binding key with no following
	// definition.
	ErrMissingDefinition = errors.New("missing definition for key")

	// ErrUnexpectedToken indicates a leftover token that starts
	// neither a valid group nor a separator.
	ErrUnexpectedToken = errors.New("unexpected token in argument stream")

	// ErrNoPositionalParser indicates that no parser in the chain
	// accepted a group's positional arguments. Only reported in
	// strict mode; lenient parsing lets the group proceed with no
	// positional options.
	ErrNoPositionalParser = errors.New("no positional parser matched")
)

// ParseError reports a failure at a specific point in a declaration
// stream. The whole parse aborts; there is never a partial result.
type ParseError struct {
	// Index is the token index where the failure occurred.
	Index int

	// Tok is the offending token, if one exists at Index.
	Tok token.Token

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: at token %d near %s", e.Err, e.Index, e.Tok)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
