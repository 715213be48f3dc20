package path

import (
	"log"
	"sort"
)

// Factory creates a path generator from a partial parameter mapping. The
// factory merges the mapping over the type's default params.
type Factory func(params map[string]float64) Generator

type registryEntry struct {
	factory Factory
	config  func() Config
}

// Registry maps path type ids to generator factories. New path families are
// added by registering a factory; nothing else in the engine changes.
type Registry struct {
	entries map[string]registryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds (or replaces) a path type.
func (r *Registry) Register(id string, factory Factory, config func() Config) {
	r.entries[id] = registryEntry{factory: factory, config: config}
}

// Unregister removes a path type. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	delete(r.entries, id)
}

// Has reports whether a path type is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Create instantiates a generator for the given type id. An unknown id
// yields nil and a logged diagnostic, not a hard failure; callers fall back
// to a default motion state.
func (r *Registry) Create(id string, params map[string]float64) Generator {
	entry, ok := r.entries[id]
	if !ok {
		log.Printf("[!] Unknown path type %q, falling back to default motion state", id)
		return nil
	}
	return entry.factory(params)
}

// GetConfig returns the static metadata for a registered type, or false for
// an unknown id.
func (r *Registry) GetConfig(id string) (Config, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return Config{}, false
	}
	return entry.config(), true
}

// GetTypes returns the registered type ids, sorted for stable output.
func (r *Registry) GetTypes() []string {
	types := make([]string, 0, len(r.entries))
	for id := range r.entries {
		types = append(types, id)
	}
	sort.Strings(types)
	return types
}

// GetAllConfigs returns the metadata of every registered type, ordered by id.
func (r *Registry) GetAllConfigs() []Config {
	types := r.GetTypes()
	configs := make([]Config, 0, len(types))
	for _, id := range types {
		configs = append(configs, r.entries[id].config())
	}
	return configs
}

// Default is the process-wide registry with the built-in path families.
// Callers needing isolation (tests, multiple independent hosts) build their
// own Registry and register types explicitly.
var Default = NewRegistry()

func init() {
	RegisterBuiltins(Default)
}

// RegisterBuiltins registers the five built-in path families on a registry.
func RegisterBuiltins(r *Registry) {
	r.Register(TypeLinear, func(params map[string]float64) Generator {
		return NewLinearPath(params)
	}, LinearConfig)
	r.Register(TypeCircular, func(params map[string]float64) Generator {
		return NewCircularPath(params)
	}, CircularConfig)
	r.Register(TypeLissajous, func(params map[string]float64) Generator {
		return NewLissajousPath(params)
	}, LissajousConfig)
	r.Register(TypeSpline, func(params map[string]float64) Generator {
		return NewSplinePath(nil, params)
	}, SplineConfig)
	r.Register(TypeLorenz, func(params map[string]float64) Generator {
		return NewLorenzPath(params)
	}, LorenzConfig)
}
