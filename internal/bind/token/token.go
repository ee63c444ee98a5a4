package token

import "fmt"

// Kind classifies a token in a binding declaration stream.
type Kind uint8

const (
	// KindValue is a plain data value (string, symbol, list, number...).
	KindValue Kind = iota

	// KindKeyword is a named option marker such as ":prefix".
	KindKeyword

	// KindSep is the plain group separator ":". It ends a group's
	// binding section; the group's effective options carry forward as
	// defaults for the next group.
	KindSep

	// KindReset is the reset separator "::". It ends a group and
	// discards all carried-forward defaults.
	KindReset

	// KindExt is the extended-binding marker ":ext".
	KindExt
)

// Symbol is a bare identifier value, as distinct from a quoted string.
type Symbol string

// List is a parenthesized sequence of values.
type List []any

// Vector is a bracketed sequence of values. Vectors conventionally hold
// raw key descriptors, so the classifier never treats them as positional.
type Vector []any

// Token is one element of a binding declaration stream.
type Token struct {
	// Kind classifies the token.
	Kind Kind

	// Name is the option name for KindKeyword tokens.
	Name string

	// Value is the payload for KindValue tokens.
	Value any
}

// Value creates a plain value token.
func Value(v any) Token {
	return Token{Kind: KindValue, Value: v}
}

// Keyword creates an option-name token.
func Keyword(name string) Token {
	return Token{Kind: KindKeyword, Name: name}
}

// Sep creates a plain group separator token.
func Sep() Token {
	return Token{Kind: KindSep}
}

// Reset creates a reset separator token.
func Reset() Token {
	return Token{Kind: KindReset}
}

// Ext creates an extended-binding marker token.
func Ext() Token {
	return Token{Kind: KindExt}
}

// String renders the token in surface syntax for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return ":" + t.Name
	case KindSep:
		return ":"
	case KindReset:
		return "::"
	case KindExt:
		return ":ext"
	default:
		if s, ok := t.Value.(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%v", t.Value)
	}
}

// Positional reports whether tok can serve as a positional argument.
//
// A token is positional when it carries a value and that value is not a
// dwim-excluded shape. With dwim off, any value token qualifies; callers
// are expected to end the positional section with an explicit ":"
// separator. With dwim on, only symbols and lists qualify, so the scan
// stops at the first string or vector, which is assumed to begin the
// key/binding section.
func Positional(tok Token, dwim bool) bool {
	if tok.Kind != KindValue || tok.Value == nil {
		return false
	}
	if !dwim {
		return true
	}
	switch tok.Value.(type) {
	case Symbol, List:
		return true
	default:
		return false
	}
}

// Bool extracts a boolean payload from a value token.
func Bool(tok Token) (value, ok bool) {
	if tok.Kind != KindValue {
		return false, false
	}
	b, ok := tok.Value.(bool)
	return b, ok
}
