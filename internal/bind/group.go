package bind

// Binding is one key-to-definition mapping within a group.
type Binding struct {
	// Key is the key descriptor. For extended bindings it is the
	// combined descriptor standing in for both key and definition.
	Key any

	// Definition is the bound definition. Nil for extended bindings.
	Definition any

	// Extended marks a binding expressed as a single combined value.
	Extended bool
}

// Group is one resolved (options, bindings) unit, destined for a single
// Install call. Bindings keep their input encounter order; installation
// order may matter for conflicting keys.
type Group struct {
	Options  OptionMap
	Bindings []Binding
}
