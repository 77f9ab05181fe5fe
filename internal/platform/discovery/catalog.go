package discovery

import (
	"sync"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

// Catalog holds the types compiled into the binary that discovery may load
// by their package-qualified name (reflect.Type.String(), for example
// "trip.LocalStrategy"). A name found in a source unit but missing from the
// catalog cannot be loaded and is skipped.
//
// Two packages with the same name declaring the same type name collide;
// the type added last wins.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]registry.TypeRef
}

// NewCatalog creates a catalog holding refs.
func NewCatalog(refs ...registry.TypeRef) *Catalog {
	c := &Catalog{types: make(map[string]registry.TypeRef, len(refs))}
	c.Add(refs...)
	return c
}

// Add makes refs loadable. Zero references are ignored.
func (c *Catalog) Add(refs ...registry.TypeRef) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ref := range refs {
		if ref.IsZero() {
			continue
		}
		c.types[ref.String()] = ref
	}
}

// Lookup loads the type with the given package-qualified name.
func (c *Catalog) Lookup(name string) (registry.TypeRef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ref, ok := c.types[name]
	return ref, ok
}

// Len returns the number of loadable types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.types)
}
