package bind

import (
	"github.com/bindflow/bindflow/internal/bind/token"
)

// Parser turns a binding declaration stream into an ordered list of
// groups. The zero value is not usable; construct with New.
//
// A Parser is cheap and carries no per-parse state; the chain and the
// flags must not be changed while a parse is in flight.
type Parser struct {
	// DWIM enables positional-argument inference: leading symbols and
	// lists are taken as positional without an explicit ":" delimiter.
	DWIM bool

	// Strict makes a positional run that no chain parser accepts a
	// hard error instead of silently contributing no options.
	Strict bool

	chain []PositionalParser
}

// New creates a parser with the default positional parser registered.
func New() *Parser {
	return &Parser{chain: []PositionalParser{ParseSingleKeymap}}
}

// WithDWIM sets positional inference and returns the parser.
func (p *Parser) WithDWIM(on bool) *Parser {
	p.DWIM = on
	return p
}

// WithStrict sets strict positional matching and returns the parser.
func (p *Parser) WithStrict(on bool) *Parser {
	p.Strict = on
	return p
}

// Prepend registers positional parsers ahead of those already in the
// chain. The chain is tried in order; the first parser that accepts a
// group's positional run wins. Setup-time only.
func (p *Parser) Prepend(parsers ...PositionalParser) *Parser {
	p.chain = append(append([]PositionalParser{}, parsers...), p.chain...)
	return p
}

// ParseAll parses the whole stream into groups.
//
// Between groups a ":" separator carries the previous group's effective
// options forward as defaults, and a "::" separator discards them. A
// group's own options always win over inherited defaults. Groups with
// no bindings are not emitted, but their options still propagate.
func (p *Parser) ParseAll(toks []token.Token) ([]Group, error) {
	var groups []Group
	var carried OptionMap

	i := 0
	for {
		opts, bindings, next, err := p.parseGroup(toks, i)
		if err != nil {
			return nil, err
		}

		effective := Merge(opts, carried)
		carried = effective
		if len(bindings) > 0 {
			groups = append(groups, Group{Options: effective, Bindings: bindings})
		}

		i = next
		if i >= len(toks) {
			return groups, nil
		}
		switch toks[i].Kind {
		case token.KindSep:
			i++
		case token.KindReset:
			carried = OptionMap{}
			i++
		default:
			return nil, &ParseError{Index: i, Tok: toks[i], Err: ErrUnexpectedToken}
		}
	}
}

// parseGroup consumes one group starting at start and returns its
// options, its bindings and the index of the first unconsumed token.
func (p *Parser) parseGroup(toks []token.Token, start int) (OptionMap, []Binding, int, error) {
	i := start

	// Positional section. With dwim on, the run of symbols and lists
	// ends at the first string or vector. With dwim off there is no
	// shape inference: a run of values is positional only when an
	// explicit marker (a separator or an option keyword) terminates
	// it; a run ending at the stream end is the binding section.
	end := i
	for end < len(toks) && token.Positional(toks[end], p.DWIM) {
		end++
	}
	if !p.DWIM && end == len(toks) {
		end = i
	}

	var positional []any
	for ; i < end; i++ {
		positional = append(positional, toks[i].Value)
	}

	var opts OptionMap
	if len(positional) > 0 {
		matched := false
		for _, parse := range p.chain {
			if m, ok := parse(positional); ok {
				opts = m
				matched = true
				break
			}
		}
		if !matched && p.Strict {
			return OptionMap{}, nil, 0, &ParseError{Index: start, Tok: toks[start], Err: ErrNoPositionalParser}
		}
	}

	// A ":" directly after the positional section is a pure delimiter.
	if i < len(toks) && toks[i].Kind == token.KindSep {
		i++
	}

	// Option section: keyword/value pairs. Within a group a later
	// keyword overwrites an earlier one, unlike Merge.
	for i < len(toks) && toks[i].Kind == token.KindKeyword {
		if i+1 >= len(toks) || toks[i+1].Kind != token.KindValue {
			return OptionMap{}, nil, 0, &ParseError{Index: i, Tok: toks[i], Err: ErrMissingOptionValue}
		}
		opts.Set(toks[i].Name, toks[i+1].Value)
		i += 2
	}

	// Binding section. Runs until a separator or option keyword; the
	// ":ext" marker stays in-section.
	var bindings []Binding
	allExtended := false

	for i < len(toks) {
		switch toks[i].Kind {
		case token.KindExt:
			if i+1 >= len(toks) || toks[i+1].Kind != token.KindValue {
				// Marker with no value toggles extended mode on.
				allExtended = true
				i++
				continue
			}
			if v, ok := token.Bool(toks[i+1]); ok {
				allExtended = v
				i += 2
				continue
			}
			bindings = append(bindings, Binding{Key: toks[i+1].Value, Extended: true})
			i += 2
		case token.KindValue:
			if allExtended {
				bindings = append(bindings, Binding{Key: toks[i].Value, Extended: true})
				i++
				continue
			}
			if i+1 >= len(toks) || toks[i+1].Kind != token.KindValue {
				return OptionMap{}, nil, 0, &ParseError{Index: i, Tok: toks[i], Err: ErrMissingDefinition}
			}
			bindings = append(bindings, Binding{Key: toks[i].Value, Definition: toks[i+1].Value})
			i += 2
		default:
			return opts, bindings, i, nil
		}
	}

	return opts, bindings, i, nil
}
