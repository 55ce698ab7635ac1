package entity

import (
	"fmt"
	"sync"
)

// The registry maps canonical type identifiers to type descriptors.
// Registration normally happens in package init (see package entities);
// lookups dominate afterwards, hence the RWMutex.
var (
	registryMu sync.RWMutex
	registry   = map[string]*Type{}
)

// Register adds a type descriptor to the registry. It fails when the
// descriptor is incomplete or the identifier is already taken.
func Register(t *Type) error {
	if t == nil || t.Name == "" || t.Tag == "" || t.New == nil {
		return fmt.Errorf("entity: incomplete type descriptor")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[t.Name]; exists {
		return fmt.Errorf("entity: type %q already registered", t.Name)
	}
	registry[t.Name] = t
	return nil
}

// MustRegister is Register for init-time use.
func MustRegister(t *Type) {
	if err := Register(t); err != nil {
		panic(err)
	}
}

// Resolve looks up a type descriptor by canonical identifier.
func Resolve(name string) (*Type, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	return t, ok
}
