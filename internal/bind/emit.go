package bind

import (
	"github.com/bindflow/bindflow/internal/bind/token"
)

// Installer is the external key-binding primitive. Install is called
// once per emitted group, in stream order.
type Installer interface {
	Install(options OptionMap, bindings []Binding) error
}

// Emit parses the stream and installs every resulting group. The parse
// completes before any installation starts, so malformed input never
// results in a partial install. Installer errors abort the remainder.
func (p *Parser) Emit(inst Installer, toks []token.Token) error {
	groups, err := p.ParseAll(toks)
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
