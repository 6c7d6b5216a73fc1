package conventions

import (
	"slices"
	"sync"

	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Registry is a concurrency-safe catalog of convention definitions, keyed
// redundantly by UUID, schema URL, and specification URL so a convention can
// be discovered through any of its identifier forms.
//
// Entries are added once, at process startup, and live for the process
// lifetime; the registry never removes entries. Readers take a shared lock
// and the sole writer takes an exclusive lock, so registration calls racing
// from independent initialization paths serialize deterministically: the
// first writer wins a key, and a later writer for the same key observes a
// duplicate failure.
type Registry struct {
	mu      sync.RWMutex
	entries map[ID]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[ID]Definition),
	}
}

// Register inserts the definition under all three identifier keys. The
// definition must be fully populated.
//
// If any key is already present the call fails with a duplicate identifier
// error naming the colliding identifier, without rolling back insertions
// already made for the other keys in the same call. Callers must treat a
// registration failure as fatal to process startup; the catalog is not
// guaranteed consistent after a failed call.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range def.IDs() {
		if _, exists := r.entries[id]; exists {
			return pkgerrors.NewDuplicateIdentifierError(id.Kind().String(), id.Value())
		}
		r.entries[id] = def
	}
	return nil
}

// RegisterCodec registers the definition of convention type T.
func RegisterCodec[T Codec](r *Registry) error {
	return r.Register(DefinitionOf[T]())
}

// Contains reports whether a definition is registered under the given
// identifier.
func (r *Registry) Contains(id ID) bool {
	r.mu.RLock()
	_, ok := r.entries[id]
	r.mu.RUnlock()
	return ok
}

// Get returns the definition registered under the given identifier and
// whether it exists.
func (r *Registry) Get(id ID) (Definition, bool) {
	r.mu.RLock()
	def, ok := r.entries[id]
	r.mu.RUnlock()
	return def, ok
}

// Len returns the number of distinct registered conventions.
func (r *Registry) Len() int {
	return len(r.Definitions())
}

// Definitions returns all registered definitions, each distinct convention
// appearing once, ordered by the definitions' total order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	out := make([]Definition, 0, len(r.entries))
	for id, def := range r.entries {
		// Each definition is stored under three keys; take the UUID entry
		// as the canonical one.
		if id.Kind() == IDKindUUID {
			out = append(out, def)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, Definition.Compare)
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry instance, built once on first
// use. Conventions shipped with this module are not registered implicitly;
// call builtin.RegisterDefault at process start.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
