package bind

// OptionMap is an ordered mapping from option name to value.
//
// Names are unique. Set overwrites an existing entry in place, keeping
// its original position; Merge never overwrites. The zero value is an
// empty, usable map.
type OptionMap struct {
	names  []string
	values map[string]any
}

// Set assigns a value to name, overwriting any existing entry.
func (m *OptionMap) Set(name string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value for name.
func (m OptionMap) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is present.
func (m OptionMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of entries.
func (m OptionMap) Len() int {
	return len(m.names)
}

// Names returns the option names in insertion order.
func (m OptionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Merge combines two option maps. The result contains every entry of
// primary plus each entry of secondary whose name primary lacks;
// primary always wins ties. Neither input is mutated.
func Merge(primary, secondary OptionMap) OptionMap {
	var out OptionMap
	for _, name := range primary.names {
		out.Set(name, primary.values[name])
	}
	for _, name := range secondary.names {
		if !out.Has(name) {
			out.Set(name, secondary.values[name])
		}
	}
	return out
}
