package bind

import (
	"github.com/bindflow/bindflow/internal/bind/token"
)

// Definer is a parse entry point with a fixed prefix of default options
// baked in. On each call the defaults run through the pipeline as if
// the caller had written them first, separated from the caller's own
// tokens by a plain ":" separator, so explicit options still win over
// the baked-in defaults.
type Definer func(toks ...token.Token) ([]Group, error)

// Definer returns an entry point that prepends defaults to every
// stream it parses. The defaults form an options-only group: nothing is
// emitted for it, but its options carry forward.
func (p *Parser) Definer(defaults ...token.Token) Definer {
	prefix := make([]token.Token, 0, len(defaults)+1)
	prefix = append(prefix, defaults...)
	prefix = append(prefix, token.Sep())

	return func(toks ...token.Token) ([]Group, error) {
		stream := make([]token.Token, 0, len(prefix)+len(toks))
		stream = append(stream, prefix...)
		stream = append(stream, toks...)
		return p.ParseAll(stream)
	}
}

// Emit parses with the baked-in defaults and installs every group.
func (d Definer) Emit(inst Installer, toks ...token.Token) error {
	groups, err := d(toks...)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if err := inst.Install(g.Options, g.Bindings); err != nil {
			return err
		}
	}
	return nil
}
