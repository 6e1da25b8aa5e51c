package registry

import (
	"reflect"
	"sync"

	"github.com/arthur-debert/linktime/pkg/errors"
)

// DefaultCapacity bounds the number of entries in each global family.
const DefaultCapacity = 1024

// FamilyInfo is a snapshot of one family, for diagnostics and output.
// Family is the short, package-qualified name used for display; Path
// qualifies it with the full import path and tells apart families whose
// short names collide.
type FamilyInfo struct {
	Family  string       `json:"family" yaml:"family" toml:"family"`
	Path    string       `json:"path" yaml:"path" toml:"path"`
	Plugins []PluginInfo `json:"plugins" yaml:"plugins" toml:"plugins"`
}

// PluginInfo describes one registered plug-in.
type PluginInfo struct {
	Type        string `json:"type" yaml:"type" toml:"type"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity limits the number of entries a registry accepts. Zero means
// unlimited.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// Registry is the ordered list of registrars of one family.
type Registry[B any] struct {
	mu       sync.RWMutex
	entries  []Registrar[B]
	seen     map[reflect.Type]struct{}
	capacity int
}

// New creates an empty, standalone registry for family B. The global
// registries used by Register and Plugins are created the same way.
func New[B any](opts ...Option) *Registry[B] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[B]{
		seen:     make(map[reflect.Type]struct{}),
		capacity: o.capacity,
	}
}

// Add appends a registrar. It rejects nil registrars, a second registrar
// for a concrete type already present, and any registrar beyond capacity.
func (r *Registry[B]) Add(reg Registrar[B]) error {
	if reg == nil {
		return errors.New(errors.ErrInvalidInput, "registrar cannot be nil")
	}
	typ := reg.Type()
	if typ == nil {
		return errors.New(errors.ErrInvalidInput, "registrar has no concrete type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seen[typ]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s is already registered in %s", typ, familyName[B]()).
			WithDetail("family", familyName[B]()).
			WithDetail("type", typ.String())
	}

	if r.capacity > 0 && len(r.entries) >= r.capacity {
		return errors.Newf(errors.ErrStorageExhausted, "%s is full (%d entries)", familyName[B](), r.capacity).
			WithDetail("family", familyName[B]()).
			WithDetail("type", typ.String())
	}

	r.entries = append(r.entries, reg)
	r.seen[typ] = struct{}{}
	return nil
}

// Plugins returns the instance held by every registrar, in registration
// order. The result is never nil.
func (r *Registry[B]) Plugins() []B {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]B, len(r.entries))
	for i, reg := range r.entries {
		plugins[i] = reg.Plugin()
	}
	return plugins
}

// Registrars returns a copy of the registrar list.
func (r *Registry[B]) Registrars() []Registrar[B] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registrar[B], len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registrars.
func (r *Registry[B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Info returns a snapshot of the family.
func (r *Registry[B]) Info() FamilyInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info := FamilyInfo{
		Family:  familyName[B](),
		Path:    familyPath[B](),
		Plugins: make([]PluginInfo, 0, len(r.entries)),
	}
	for _, reg := range r.entries {
		p := PluginInfo{Type: reg.Type().String()}
		if d, ok := any(reg.Plugin()).(Describer); ok {
			p.Name = d.Name()
			p.Description = d.Description()
		}
		info.Plugins = append(info.Plugins, p)
	}
	return info
}
