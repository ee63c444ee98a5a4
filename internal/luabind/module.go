package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/bindflow/bindflow/internal/bind"
	"github.com/bindflow/bindflow/internal/bind/token"
	"github.com/bindflow/bindflow/internal/keymap"
)

// Module exposes the binding pipeline to Lua configuration scripts.
type Module struct {
	parser   *bind.Parser
	registry *keymap.Registry
}

// New creates a module emitting into registry.
func New(parser *bind.Parser, registry *keymap.Registry) *Module {
	return &Module{parser: parser, registry: registry}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "bind"
}

// Register installs the module into the Lua state as the global
// "bind" table.
func (m *Module) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "keys", L.NewFunction(m.keys))
	L.SetField(mod, "definer", L.NewFunction(m.definer))
	L.SetField(mod, "list", L.NewFunction(m.list))

	L.SetGlobal("bind", mod)
	return nil
}

// keys(stream) -> nil
// Parses a declaration stream and installs every group. Raises on
// malformed input; nothing is installed when the raise fires.
func (m *Module) keys(L *lua.LState) int {
	src := L.CheckString(1)

	toks, err := token.Lex(src)
	if err != nil {
		L.RaiseError("keys: %v", err)
		return 0
	}
	if err := m.parser.Emit(m.registry, toks); err != nil {
		L.RaiseError("keys: %v", err)
		return 0
	}
	return 0
}

// definer(defaults) -> function(stream)
// Returns an entry point with the default options in the defaults
// stream baked in. Explicit options in later calls still win.
func (m *Module) definer(L *lua.LState) int {
	src := L.CheckString(1)

	defaults, err := token.Lex(src)
	if err != nil {
		L.RaiseError("definer: %v", err)
		return 0
	}
	def := m.parser.Definer(defaults...)

	L.Push(L.NewFunction(func(L *lua.LState) int {
		toks, err := token.Lex(L.CheckString(1))
		if err != nil {
			L.RaiseError("definer: %v", err)
			return 0
		}
		if err := def.Emit(m.registry, toks...); err != nil {
			L.RaiseError("definer: %v", err)
			return 0
		}
		return 0
	}))
	return 1
}

// list() -> table
// Returns the installed keymap names in first-installation order.
func (m *Module) list(L *lua.LState) int {
	names := m.registry.Keymaps()

	tbl := L.CreateTable(len(names), 0)
	for _, name := range names {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}
