package keymap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bindflow/bindflow/internal/bind"
	"github.com/bindflow/bindflow/internal/bind/token"
)

// DefaultKeymap receives groups whose options name no keymap.
const DefaultKeymap = "global"

// Errors returned by registry operations.
var (
	// ErrBadKeymapName indicates a keymaps option value that names no
	// keymap (wrong shape, or an empty name).
	ErrBadKeymapName = errors.New("invalid keymap name")
)

// Entry records one installed group under a single keymap.
type Entry struct {
	// ID uniquely identifies this installation for Unregister.
	ID string

	// Options are the group's effective options at install time.
	Options bind.OptionMap

	// Bindings are the group's bindings in input order.
	Bindings []bind.Binding
}

// Registry is an in-memory key-binding installer. It records each
// installed group per keymap, preserving installation order, and
// implements bind.Installer.
type Registry struct {
	mu sync.RWMutex

	// order holds keymap names in first-installation order.
	order []string

	// entries holds installed groups by keymap name.
	entries map[string][]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string][]Entry),
	}
}

// Install records one group under every keymap its options name. The
// "keymaps" option may be a single name or a list of names; absent, the
// group lands in DefaultKeymap. Implements bind.Installer.
func (r *Registry) Install(options bind.OptionMap, bindings []bind.Binding) error {
	names, err := keymapNames(options)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if _, ok := r.entries[name]; !ok {
			r.order = append(r.order, name)
		}
		r.entries[name] = append(r.entries[name], Entry{
			ID:       uuid.New().String(),
			Options:  options,
			Bindings: bindings,
		})
	}
	return nil
}

// Keymaps returns all keymap names in first-installation order.
func (r *Registry) Keymaps() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns the installed groups for a keymap in installation
// order.
func (r *Registry) Entries(name string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries[name]))
	copy(out, r.entries[name])
	return out
}

// Bindings returns every binding installed into a keymap, flattened in
// installation order.
func (r *Registry) Bindings(name string) []bind.Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []bind.Binding
	for _, e := range r.entries[name] {
		out = append(out, e.Bindings...)
	}
	return out
}

// Unregister removes an installation by ID. It reports whether an
// entry was removed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, entries := range r.entries {
		for i, e := range entries {
			if e.ID == id {
				r.entries[name] = append(entries[:i:i], entries[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Len returns the total number of installed entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, entries := range r.entries {
		n += len(entries)
	}
	return n
}

// keymapNames resolves the keymaps option into target keymap names.
func keymapNames(options bind.OptionMap) ([]string, error) {
	v, ok := options.Get(bind.OptionKeymaps)
	if !ok {
		return []string{DefaultKeymap}, nil
	}

	switch val := v.(type) {
	case string:
		return oneName(val)
	case token.Symbol:
		return oneName(string(val))
	case token.List:
		return nameSeq(val)
	case token.Vector:
		return nameSeq(val)
	default:
		return nil, fmt.Errorf("%w: %v (%T)", ErrBadKeymapName, v, v)
	}
}

func oneName(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrBadKeymapName)
	}
	return []string{name}, nil
}

func nameSeq(vals []any) ([]string, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: empty keymap list", ErrBadKeymapName)
	}
	names := make([]string, 0, len(vals))
	for _, v := range vals {
		switch val := v.(type) {
		case string:
			names = append(names, val)
		case token.Symbol:
			names = append(names, string(val))
		default:
			return nil, fmt.Errorf("%w: %v (%T)", ErrBadKeymapName, v, v)
		}
	}
	return names, nil
}
