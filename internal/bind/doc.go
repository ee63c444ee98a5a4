// Package bind normalizes flexible binding declaration streams into
// ordered (options, bindings) groups for a key-binding installer.
//
// A declaration stream mixes positional arguments, ":name"/value option
// pairs and key/definition bindings, with ":" and "::" separating
// groups. One Parser call rewrites the whole stream into the exact
// sequence of Install calls it describes.
//
// # Groups and Defaults
//
// Each group yields one Install call. Options set in a group become
// defaults for the groups after it when separated by ":"; the "::"
// separator clears inherited defaults instead. A group's own options
// always win over inherited ones. A group with options but no bindings
// is never installed, but its options still propagate, which is how an
// options-only prefix seeds defaults for everything that follows.
//
// # Positional Arguments
//
// Leading positional values are handed to an ordered chain of
// PositionalParser functions; the first one that accepts the run
// produces the group's initial options. The default chain maps a single
// positional value to the "keymaps" option. Callers prepend their own
// parsers to interpret richer shapes. When no parser accepts the run
// the group simply gets no positional options; Strict mode turns that
// into a hard error.
//
// # Extended Bindings
//
// The ":ext" marker introduces a binding expressed as one combined
// descriptor instead of a key/definition pair. Followed by true or
// false it instead toggles extended mode for the rest of the group:
//
//	:ext true "f f" "f r" :ext false "x" delete.char
//
// emits two extended bindings and then an ordinary pair.
//
// # Errors
//
// Malformed input (a dangling option keyword, a key with no definition,
// or leftover tokens) aborts the whole parse with a *ParseError naming
// the token index; no partial group list is ever returned, and Emit
// installs nothing.
//
// # Usage
//
//	p := bind.New().WithDWIM(true)
//	toks, _ := token.Lex(`leader-map : "g d" goto.definition`)
//	groups, err := p.ParseAll(toks)
//
// Parse-time state is local to each call; the chain and flags on a
// Parser must not be modified while a parse is in flight.
package bind
