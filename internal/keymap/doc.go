// Package keymap provides the in-memory key-binding installer the bind
// pipeline emits into.
//
// The Registry records each installed (options, bindings) group under
// the keymap or keymaps named by the group's "keymaps" option,
// preserving installation order so that later installs shadow earlier
// ones during any downstream dispatch. Each installation gets a unique
// ID for later removal.
package keymap
