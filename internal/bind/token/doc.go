// Package token defines the token model for binding declaration streams.
//
// A declaration stream is a flat sequence of tokens: plain values,
// ":name" option keywords, the ":" and "::" group separators and the
// ":ext" extended-binding marker. The stream is what the bind package
// parses; this package also provides Lex, which produces a stream from
// the surface text syntax used by the config, CLI and Lua frontends.
//
// # Value Shapes
//
// Values carry ordinary Go data. Two named shapes matter to the
// classifier:
//
//	Symbol  - a bare identifier such as leader-map or goto.definition
//	List    - a parenthesized sequence such as ("f f" file.find)
//	Vector  - a bracketed sequence, conventionally a raw key descriptor
//
// With dwim classification enabled, symbols and lists at the front of a
// group are positional arguments; the first string or vector ends the
// positional section.
package token
