package bind

// OptionKeymaps is the option name assigned by the default positional
// parser: the keymap or keymaps a group's bindings are installed into.
const OptionKeymaps = "keymaps"

// PositionalParser converts the accumulated positional arguments of one
// group into an option map. It returns ok=false to decline, letting the
// next parser in the chain try. Parsers must not mutate args.
type PositionalParser func(args []any) (OptionMap, bool)

// ParseSingleKeymap is the default positional parser: exactly one
// positional argument names the target keymaps.
func ParseSingleKeymap(args []any) (OptionMap, bool) {
	if len(args) != 1 {
		return OptionMap{}, false
	}
	var m OptionMap
	m.Set(OptionKeymaps, args[0])
	return m, true
}
